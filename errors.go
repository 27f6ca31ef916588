package robotstxt

import "fmt"

// InvariantError is panicked for internal invariant violations. The one
// such check is a path that doesn't start with '/' after extraction, which
// is unreachable given a correct internal/urlpath implementation; there is
// no recoverable case to model, unlike a genuine fetch or I/O error.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("robotstxt: invariant violation: %s", e.Message)
}
