package proxy

import (
	"fmt"
	"io"
)

// clientError writes a minimal HTTP/1.0 error response with an HTML body
// naming the status and the cause.
func clientError(w io.Writer, cause, code, shortMsg, longMsg string) {
	fmt.Fprintf(w, "HTTP/1.0 %s %s\r\n", code, shortMsg)
	fmt.Fprintf(w, "Content-type: text/html\r\n\r\n")

	fmt.Fprintf(w, "<html><title>Proxy Error</title>")
	fmt.Fprintf(w, "<body bgcolor=\"ffffff\">\r\n")
	fmt.Fprintf(w, "%s: %s\r\n", code, shortMsg)
	fmt.Fprintf(w, "<p>%s: %s\r\n", longMsg, cause)
	fmt.Fprintf(w, "<hr><em>The proxy server</em>\r\n")
}
