// Package directive classifies robots.txt directive keys and parses the
// values of the three non-standard per-group directives (Crawl-delay,
// Request-rate, Content-Signal).
package directive

// Kind identifies which directive a key token names, independent of
// canonical spelling or typo.
type Kind int

const (
	UserAgent Kind = iota
	Allow
	Disallow
	Sitemap
	CrawlDelay
	RequestRateKind
	ContentSignalKind
	Unknown
)

func (k Kind) String() string {
	switch k {
	case UserAgent:
		return "UserAgent"
	case Allow:
		return "Allow"
	case Disallow:
		return "Disallow"
	case Sitemap:
		return "Sitemap"
	case CrawlDelay:
		return "CrawlDelay"
	case RequestRateKind:
		return "RequestRate"
	case ContentSignalKind:
		return "ContentSignal"
	default:
		return "Unknown"
	}
}

// RequestRate is the parsed value of a Request-rate directive: requests
// per seconds. Both fields are always >= 1; a value whose request count, or
// seconds count when present, is not a positive integer is dropped entirely
// rather than stored here.
type RequestRate struct {
	Requests uint32
	Seconds  uint32
}

// RequestsPerSecond returns the rate as requests/second.
func (r RequestRate) RequestsPerSecond() float64 {
	return float64(r.Requests) / float64(r.Seconds)
}

// DelaySeconds returns the minimum delay a crawler obeying this rate should
// leave between requests.
func (r RequestRate) DelaySeconds() float64 {
	return float64(r.Seconds) / float64(r.Requests)
}

// ContentSignal is the parsed value of a Content-Signal directive. Each
// field is a tri-state: nil means the key was absent or its value was
// unrecognized, not "false".
type ContentSignal struct {
	AITrain *bool
	AIInput *bool
	Search  *bool
}

// AllowsAITrain reports whether AI training is permitted, defaulting to
// true when the signal was not set.
func (c ContentSignal) AllowsAITrain() bool {
	return c.AITrain == nil || *c.AITrain
}

// AllowsAIInput reports whether AI input/retrieval use is permitted,
// defaulting to true when the signal was not set.
func (c ContentSignal) AllowsAIInput() bool {
	return c.AIInput == nil || *c.AIInput
}

// AllowsSearch reports whether search indexing is permitted, defaulting to
// true when the signal was not set.
func (c ContentSignal) AllowsSearch() bool {
	return c.Search == nil || *c.Search
}

// HasAnySignal reports whether at least one of the three fields was set by
// the directive's value.
func (c ContentSignal) HasAnySignal() bool {
	return c.AITrain != nil || c.AIInput != nil || c.Search != nil
}
