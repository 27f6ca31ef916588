package robotstxt

// isAgentChar reports whether c is a legal byte inside a matchable
// user-agent token: [A-Za-z_-].
func isAgentChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '-'
}

// ExtractUserAgent returns the longest leading run of [A-Za-z_-] bytes in
// agent, the matchable prefix used both to compare a queried agent against
// a User-agent line and to validate an agent string a caller intends to
// obey.
func ExtractUserAgent(agent string) string {
	i := 0
	for i < len(agent) && isAgentChar(agent[i]) {
		i++
	}
	return agent[:i]
}

// IsValidUserAgentToObey reports whether agent is non-empty and composed
// entirely of [A-Za-z_-].
func IsValidUserAgentToObey(agent string) bool {
	if agent == "" {
		return false
	}
	return ExtractUserAgent(agent) == agent
}
