/*
Package robotstxt parses Robots Exclusion Protocol documents (RFC 9309)
and decides whether a given URL may be fetched by a given set of
user-agent identifiers.

Responsibilities:
  - Parse drives a zero-copy, single-pass scanner over a robots.txt body
    and delivers one Handler callback per directive.
  - Matcher is the decision-making Handler: it accumulates Allow/Disallow
    rules under global and specific-agent scopes and resolves conflicts by
    longest-match-wins, with Allow winning ties.
  - Reporter is a passive Handler for diagnostics: it does not decide
    anything, it only observes.

Non-goals: URL canonicalization, concurrent use of one Matcher, persisting
any state between calls.
*/
package robotstxt

import "github.com/rohmanhakim/robotguard/internal/directive"

// LineMeta carries the per-line diagnostic flags the scanner emits
// alongside every line, directive or not.
type LineMeta struct {
	IsEmpty                 bool
	HasComment              bool
	IsComment               bool
	HasDirective            bool
	IsAcceptableTypo        bool
	IsLineTooLong           bool
	IsMissingColonSeparator bool
}

// RequestRate is the parsed value of a Request-rate directive.
type RequestRate = directive.RequestRate

// ContentSignal is the parsed value of a Content-Signal directive.
type ContentSignal = directive.ContentSignal

// match tracks the best pattern match seen so far in one scope: its byte
// priority and the source line it came from. noMatchPriority (-1) is the
// sentinel so a 0-length pattern match still outranks "no match at all".
type match struct {
	priority int32
	line     uint32
}

const noMatchPriority int32 = -1

func newMatch() match {
	return match{priority: noMatchPriority, line: 0}
}

// set replaces the stored match only if candidate strictly exceeds it,
// preserving priority monotonicity and earlier-emission-wins on ties.
func (m *match) set(priority int32, line uint32) {
	if priority > m.priority {
		m.priority = priority
		m.line = line
	}
}

// hierarchy pairs the global and specific-scope matches for one of
// Allow/Disallow.
type hierarchy struct {
	global   match
	specific match
}

func newHierarchy() hierarchy {
	return hierarchy{global: newMatch(), specific: newMatch()}
}
