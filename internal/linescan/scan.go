package linescan

// bom is the UTF-8 byte-order mark. Only the matched leading prefix is
// skipped, so a corrupted BOM (e.g. EF 11 BF) loses just its first byte.
var bom = [3]byte{0xEF, 0xBB, 0xBF}

// Scan drives the scanner over body, calling onLine once per logical line
// in source order. The final line is always emitted, even when body is
// empty or ends exactly on a line terminator (in which case that final
// call represents a trailing empty line).
func Scan(body []byte, onLine func(content []byte, truncated bool)) {
	body = stripBOM(body)
	i, n := 0, len(body)
	for {
		start := i
		for i < n && body[i] != '\n' && body[i] != '\r' {
			i++
		}
		content := body[start:i]
		truncated := false
		if len(content) > maxLineLen {
			content = content[:maxLineLen]
			truncated = true
		}
		onLine(content, truncated)
		if i >= n {
			return
		}
		if body[i] == '\r' {
			i++
			if i < n && body[i] == '\n' {
				i++
			}
		} else {
			i++
		}
	}
}

func stripBOM(body []byte) []byte {
	n := 0
	for n < 3 && n < len(body) && body[n] == bom[n] {
		n++
	}
	return body[n:]
}
