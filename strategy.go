package robotstxt

import "github.com/rohmanhakim/robotguard/internal/pathmatch"

// MatchStrategy computes a match priority between a path and a pattern, or
// pathmatch.NoMatch if the pattern does not match. Allow and Disallow are
// separate methods so a custom strategy can treat them asymmetrically;
// LongestMatchStrategy, the only strategy this package ships, treats them
// identically.
type MatchStrategy interface {
	MatchAllow(path, pattern []byte) int
	MatchDisallow(path, pattern []byte) int
}

// LongestMatchStrategy resolves Allow/Disallow conflicts by the number of
// pattern bytes consumed: the longer match wins.
type LongestMatchStrategy struct{}

func (LongestMatchStrategy) MatchAllow(path, pattern []byte) int {
	return pathmatch.Match(path, pattern)
}

func (LongestMatchStrategy) MatchDisallow(path, pattern []byte) int {
	return pathmatch.Match(path, pattern)
}
