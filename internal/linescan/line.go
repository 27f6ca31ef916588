package linescan

import (
	"bytes"

	"github.com/rohmanhakim/robotguard/internal/directive"
)

// Parse drives Scan over body and delivers one fully-classified Line per
// logical line to onLine, in source order. HandleRobotsStart/End are the
// caller's responsibility around this call; Parse only covers the per-line
// scanning and classification work.
func Parse(body []byte, onLine func(Line)) {
	var num uint32
	Scan(body, func(content []byte, truncated bool) {
		num++
		onLine(processLine(num, content, truncated))
	})
}

func processLine(num uint32, raw []byte, truncated bool) Line {
	line := Line{Num: num}
	line.Meta.IsLineTooLong = truncated

	content := raw
	if idx := bytes.IndexByte(content, '#'); idx >= 0 {
		line.Meta.HasComment = true
		content = content[:idx]
	}
	content = trimSpace(content)

	if len(content) == 0 {
		if line.Meta.HasComment {
			line.Meta.IsComment = true
		} else {
			line.Meta.IsEmpty = true
		}
		return line
	}

	key, value, missingColon, ok := splitKeyValue(content)
	if !ok {
		return line
	}
	line.Meta.IsMissingColonSeparator = missingColon

	key = trimSpace(key)
	if len(key) == 0 {
		return line
	}
	value = trimLeadingSpace(value)

	kind, isTypo := directive.Classify(key)
	line.Kind = kind
	line.Meta.IsAcceptableTypo = isTypo
	line.Meta.HasDirective = true

	switch kind {
	case directive.Allow, directive.Disallow:
		line.Value = MaybeEscapePattern(value)
	case directive.Unknown:
		line.Key = key
		line.Value = MaybeEscapePattern(value)
	case directive.CrawlDelay:
		line.CrawlDelay = directive.ParseCrawlDelay(value)
	case directive.RequestRateKind:
		line.RequestRate, line.HasRequestRate = directive.ParseRequestRate(value)
	case directive.ContentSignalKind:
		line.ContentSignal = directive.ParseContentSignal(value)
	default: // UserAgent, Sitemap
		line.Value = value
	}

	return line
}

// splitKeyValue locates the key/value separator: the first colon, or (if
// none is present and the line is exactly two whitespace-separated tokens)
// a run of spaces/tabs. ok is false when neither rule yields a split, in
// which case the line has no directive.
func splitKeyValue(content []byte) (key, value []byte, missingColon, ok bool) {
	if idx := bytes.IndexByte(content, ':'); idx >= 0 {
		return content[:idx], content[idx+1:], false, true
	}

	fields := splitWhitespace(content)
	if len(fields) == 2 {
		return fields[0], fields[1], true, true
	}
	return nil, nil, false, false
}

// splitWhitespace splits content on runs of SP/HT, discarding empty
// fields, the way the "exactly two tokens" fallback rule needs.
func splitWhitespace(content []byte) [][]byte {
	var fields [][]byte
	i := 0
	for i < len(content) {
		for i < len(content) && isWhitespaceSeparator(content[i]) {
			i++
		}
		start := i
		for i < len(content) && !isWhitespaceSeparator(content[i]) {
			i++
		}
		if i > start {
			fields = append(fields, content[start:i])
		}
	}
	return fields
}

func isWhitespaceSeparator(c byte) bool {
	return c == ' ' || c == '\t'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func trimSpace(b []byte) []byte {
	start := 0
	for start < len(b) && isSpace(b[start]) {
		start++
	}
	end := len(b)
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

func trimLeadingSpace(b []byte) []byte {
	start := 0
	for start < len(b) && isSpace(b[start]) {
		start++
	}
	return b[start:]
}
