package proxy

import "strings"

// parseURI splits a request target into hostname, path and port. It never
// fails: a missing port defaults to 80 and a missing path to "/". Malformed
// targets (empty host, junk port) surface later when the origin dial fails.
func parseURI(target string) (host, path string, port int) {
	rest := target
	if len(rest) >= 7 && strings.EqualFold(rest[:7], "http://") {
		rest = rest[7:]
	}

	port = 80
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		host = rest[:i]
		port = leadingInt(rest[i+1:])
	} else if j := strings.IndexByte(rest, '/'); j >= 0 {
		host = rest[:j]
	} else {
		return rest, "/", 80
	}

	path = "/"
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		path = rest[j:]
	}
	return host, path, port
}

// leadingInt reads a decimal prefix, stopping at the first non-digit.
func leadingInt(s string) int {
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
