package proxy

import (
	"bufio"
	"errors"
	"strings"
	"testing"
)

func headerReader(raw string) *bufio.Reader {
	return bufio.NewReaderSize(strings.NewReader(raw), MaxLine)
}

func TestBuildRequestReusesClientHost(t *testing.T) {
	raw := "Host: example.org\r\n" +
		"Accept: */*\r\n" +
		"User-Agent: curl/8.0\r\n" +
		"Connection: keep-alive\r\n" +
		"Proxy-Connection: keep-alive\r\n" +
		"X-Custom: 1\r\n" +
		"\r\n"

	got, err := buildRequest(headerReader(raw), "fallback.example", "/p")
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}

	want := "GET /p HTTP/1.0\r\n" +
		"Accept: */*\r\n" +
		"X-Custom: 1\r\n" +
		"Host: example.org\r\n" +
		"User-Agent: " + userAgent + "\r\n" +
		"Connection: close\r\n" +
		"Proxy-Connection: close\r\n\r\n"
	if got != want {
		t.Errorf("rewritten request:\n%q\nwant:\n%q", got, want)
	}
}

func TestBuildRequestSynthesizesHost(t *testing.T) {
	got, err := buildRequest(headerReader("\r\n"), "origin.example", "/index.html")
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}
	if !strings.Contains(got, "Host: origin.example\r\n") {
		t.Errorf("missing synthesized Host header in %q", got)
	}
	if !strings.HasPrefix(got, "GET /index.html HTTP/1.0\r\n") {
		t.Errorf("bad request line in %q", got)
	}
}

func TestBuildRequestDropsHopHeadersCaseInsensitively(t *testing.T) {
	raw := "USER-AGENT: x\r\nconnection: upgrade\r\nPROXY-connection: x\r\n\r\n"
	got, err := buildRequest(headerReader(raw), "h", "/")
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}
	if strings.Contains(got, "upgrade") || strings.Contains(got, "USER-AGENT: x") {
		t.Errorf("client hop-by-hop header leaked into %q", got)
	}
	if !strings.Contains(got, "Connection: close\r\n") ||
		!strings.Contains(got, "Proxy-Connection: close\r\n") {
		t.Errorf("fixed hop-by-hop headers missing from %q", got)
	}
}

func TestBuildRequestStopsAtEOF(t *testing.T) {
	// No blank line: header section ends with the stream.
	got, err := buildRequest(headerReader("Accept: */*\r\n"), "h", "/")
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}
	if !strings.Contains(got, "Accept: */*\r\n") {
		t.Errorf("header before EOF lost from %q", got)
	}
}

func TestBuildRequestRejectsOverlongHeaderLine(t *testing.T) {
	raw := "X-Big: " + strings.Repeat("a", MaxLine) + "\r\n\r\n"
	_, err := buildRequest(headerReader(raw), "h", "/")
	if !errors.Is(err, errLineTooLong) {
		t.Fatalf("err = %v, want errLineTooLong", err)
	}
}

func TestReadLineBounded(t *testing.T) {
	r := bufio.NewReaderSize(strings.NewReader(strings.Repeat("x", MaxLine+1)), MaxLine)
	if _, err := readLine(r); !errors.Is(err, errLineTooLong) {
		t.Fatalf("err = %v, want errLineTooLong", err)
	}

	r = headerReader("one\r\ntwo")
	line, err := readLine(r)
	if err != nil || line != "one\r\n" {
		t.Fatalf("readLine = %q, %v", line, err)
	}
	line, err = readLine(r)
	if err != nil || line != "two" {
		t.Fatalf("final unterminated line = %q, %v", line, err)
	}
}
