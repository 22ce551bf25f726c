package worker

import "strings"

const maxEchoLen = 256

// sanitize strips control characters from a string that came in over the
// message channel before it is echoed back inside an error payload, and
// caps its length. Keeps injected newlines and escapes out of responses
// and logs.
func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	if len(s) > maxEchoLen {
		s = s[:maxEchoLen]
	}
	return s
}
