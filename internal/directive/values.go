package directive

import (
	"strconv"
	"strings"
)

// ParseCrawlDelay parses a Crawl-delay value as a signed decimal number. A
// value that fails to parse, or parses negative, becomes 0.0 rather than
// being dropped.
func ParseCrawlDelay(value []byte) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(value)), 64)
	if err != nil || f < 0 {
		return 0.0
	}
	return f
}

// ParseRequestRate parses a Request-rate value of the grammar
// `digits [ "/" digits ("s"|"S")? ]`. A missing slash implies seconds=1.
// Either number parsing to <= 0, or a malformed value, means the directive
// should be dropped entirely: ok is false.
func ParseRequestRate(value []byte) (rate RequestRate, ok bool) {
	s := strings.TrimSpace(string(value))
	if s == "" {
		return RequestRate{}, false
	}
	reqPart, secPart, hasSlash := strings.Cut(s, "/")
	requests, err := strconv.ParseUint(strings.TrimSpace(reqPart), 10, 32)
	if err != nil || requests == 0 {
		return RequestRate{}, false
	}
	seconds := uint64(1)
	if hasSlash {
		secPart = strings.TrimSpace(secPart)
		secPart = strings.TrimSuffix(strings.TrimSuffix(secPart, "s"), "S")
		seconds, err = strconv.ParseUint(secPart, 10, 32)
		if err != nil || seconds == 0 {
			return RequestRate{}, false
		}
	}
	return RequestRate{Requests: uint32(requests), Seconds: uint32(seconds)}, true
}

// ParseContentSignal parses a Content-Signal value: a comma-separated list
// of key=value pairs. Unknown keys are silently skipped; unrecognized
// values leave the corresponding field unset.
func ParseContentSignal(value []byte) ContentSignal {
	var cs ContentSignal
	for _, part := range strings.Split(string(value), ",") {
		key, val, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		b, ok := parseTriState(val)
		if !ok {
			continue
		}
		switch {
		case strings.EqualFold(key, "ai-train"):
			cs.AITrain = &b
		case strings.EqualFold(key, "ai-input"):
			cs.AIInput = &b
		case strings.EqualFold(key, "search"):
			cs.Search = &b
		}
	}
	return cs
}

func parseTriState(value string) (b bool, ok bool) {
	switch strings.ToLower(value) {
	case "yes", "true", "1":
		return true, true
	case "no", "false", "0":
		return false, true
	default:
		return false, false
	}
}
