package requestid

import (
	"bufio"
	"fmt"
	"net"
	"net/http"

	"golang.org/x/net/http/httpguts"
)

// responseWriter appends the request ID header right before the wrapped
// handler commits its headers. net/http ignores header changes made after the
// first WriteHeader or Write.
type responseWriter struct {
	http.ResponseWriter
	name      string
	value     string
	committed bool
}

func (rw *responseWriter) commit() {
	if rw.committed {
		return
	}
	rw.committed = true
	if !httpguts.ValidHeaderFieldName(rw.name) || !httpguts.ValidHeaderFieldValue(rw.value) {
		panic(&HeaderError{Name: rw.name, Value: rw.value})
	}
	rw.ResponseWriter.Header().Add(rw.name, rw.value)
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.commit()
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(p []byte) (int, error) {
	rw.commit()
	return rw.ResponseWriter.Write(p)
}

func (rw *responseWriter) Flush() {
	rw.commit()
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("response does not implement http.Hijacker")
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
