// Package responsewriter wraps http.ResponseWriter to observe the status
// code and body size of a response after the handler has run. The logging
// and metrics middleware both read from it.
package responsewriter

import "net/http"

// ResponseWriter records what was written through it.
type ResponseWriter struct {
	http.ResponseWriter
	status      int
	size        int
	wroteHeader bool
}

// Wrap returns w wrapped for observation. The status defaults to 200
// because net/http sends 200 when a handler writes without WriteHeader.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the status code. Duplicate calls are dropped so the
// recorded status matches what actually went on the wire.
func (w *ResponseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.status = status
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

// Write forwards the body bytes and accumulates the written size.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// StatusCode returns the recorded status code.
func (w *ResponseWriter) StatusCode() int { return w.status }

// BytesWritten returns the accumulated body size.
func (w *ResponseWriter) BytesWritten() int { return w.size }

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
