// Package urlpath extracts the path+query portion of a URL for use as a
// robots.txt matcher path, per the five-step fallback procedure: try a
// WHATWG-ish parse first, fall back to manual scheme/authority stripping
// when that fails, and finally re-encode any literal `*`/`$` so the
// extracted path never accidentally triggers the pattern grammar.
package urlpath

import (
	"net/url"
	"strings"
)

// Extract returns the path+query of rawURL, always starting with `/`.
func Extract(rawURL string) []byte {
	if rawURL == "" {
		return []byte("/")
	}

	path := extractPath(rawURL)
	return escapeLiterals(path)
}

func extractPath(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && (u.Scheme != "" || u.Host != "") {
		p := pathAndQuery(u)
		if p == "" {
			return "/"
		}
		if !strings.HasPrefix(p, "/") {
			return "/" + p
		}
		return p
	}

	s := rawURL
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	if strings.HasPrefix(s, "//") {
		return stripAuthority(s[2:])
	}
	if strings.HasPrefix(s, "/") {
		return s
	}
	if idx := strings.Index(s, "://"); idx >= 0 {
		return stripAuthority(s[idx+3:])
	}
	return "/"
}

func pathAndQuery(u *url.URL) string {
	p := u.EscapedPath()
	if u.RawQuery != "" {
		p += "?" + u.RawQuery
	}
	return p
}

// stripAuthority handles the "//host/path" protocol-relative form by
// dropping everything up to (not including) the first `/` that follows
// the authority.
func stripAuthority(s string) string {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[i:]
	}
	return "/"
}

// escapeLiterals re-encodes literal `*` and `$` bytes as `%2A`/`%24` so the
// extracted path can never be mistaken for pattern-grammar metacharacters.
func escapeLiterals(path string) []byte {
	hasLiteral := false
	for i := 0; i < len(path); i++ {
		if path[i] == '*' || path[i] == '$' {
			hasLiteral = true
			break
		}
	}
	if !hasLiteral {
		return []byte(path)
	}

	out := make([]byte, 0, len(path)+8)
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '*':
			out = append(out, '%', '2', 'A')
		case '$':
			out = append(out, '%', '2', '4')
		default:
			out = append(out, path[i])
		}
	}
	return out
}
