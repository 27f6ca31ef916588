package robotstxt

import "github.com/rohmanhakim/robotguard/pkg/hashutil"

/*
Reporter is a passive Handler for diagnostics: the decision-making logic
lives entirely in Matcher, and Reporter must never influence it. Reporter
only observes: it collects one LineMeta per line and, once Diagnostics is
called, a content fingerprint of the body it was handed.

Ordering of the collected LineMeta slice is source order, for
debuggability only; nothing in this package reads it back to make a
control-flow decision.
*/
type Reporter struct {
	BaseHandler

	lines []LineMeta
	body  []byte
}

// NewReporter constructs a Reporter that will fingerprint body when
// Diagnostics is called. Pass the same body given to Parse.
func NewReporter(body []byte) *Reporter {
	return &Reporter{body: body}
}

func (r *Reporter) ReportLineMetadata(line uint32, meta LineMeta) {
	r.lines = append(r.lines, meta)
}

// Diagnostics is a snapshot produced by Reporter: a per-line metadata
// trace plus a fingerprint of the parsed body, observational only.
type Diagnostics struct {
	Lines       []LineMeta
	Fingerprint string
}

// Diagnostics computes the Reporter's current snapshot. The fingerprint is
// computed fresh on every call and never cached or persisted by this
// package.
func (r *Reporter) Diagnostics() (Diagnostics, error) {
	fp, err := hashutil.HashBytes(r.body, hashutil.HashAlgoBLAKE3)
	if err != nil {
		return Diagnostics{}, err
	}
	return Diagnostics{Lines: r.lines, Fingerprint: fp}, nil
}
