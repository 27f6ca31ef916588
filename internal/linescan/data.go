// Package linescan is the zero-copy, single-pass robots.txt line scanner.
// It strips a leading UTF-8 BOM, splits the body into logical lines on LF,
// CR, or CRLF, extracts key/value pairs, classifies the key, normalizes
// pattern values, and parses the three non-standard directive values, all
// before handing each line to a caller-supplied callback.
package linescan

import "github.com/rohmanhakim/robotguard/internal/directive"

// maxLineLen is 2083*8, the line-length cap inherited from the reference
// implementation's URL-length-derived buffer size.
const maxLineLen = 16664

// LineMeta carries the per-line diagnostic flags emitted alongside every
// line, directive or not.
type LineMeta struct {
	IsEmpty                 bool
	HasComment              bool
	IsComment               bool
	HasDirective            bool
	IsAcceptableTypo        bool
	IsLineTooLong           bool
	IsMissingColonSeparator bool
}

// Line is one scanned logical line. Key and Value are subslices of the
// caller's input buffer except when MaybeEscapePattern needed to rewrite
// Value's percent-encoding; Kind and value fields are only meaningful when
// Meta.HasDirective is true.
type Line struct {
	Num  uint32
	Meta LineMeta
	Kind directive.Kind

	// Key holds the raw key text, populated only when Kind is Unknown.
	Key []byte

	// Value holds the normalized pattern bytes for Allow, Disallow, and
	// Unknown directives.
	Value []byte

	CrawlDelay float64

	RequestRate    directive.RequestRate
	HasRequestRate bool

	ContentSignal directive.ContentSignal
}
