package sse

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrClosed is returned when a frame could not be written because the peer
// has gone away.
var ErrClosed = errors.New("sse: stream closed")

// Writer sends Server-Sent Events to an http.ResponseWriter.
type Writer struct {
	w     http.ResponseWriter
	flush func() error
}

// NewWriter creates a new SSE writer, commits a 200 response with the
// event-stream headers and flushes them. Returns nil if the ResponseWriter
// doesn't support http.Flusher.
func NewWriter(w http.ResponseWriter) *Writer {
	if _, ok := w.(http.Flusher); !ok {
		return nil
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "close")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Accel-Buffering", "no") // nginx
	w.WriteHeader(http.StatusOK)

	s := &Writer{w: w, flush: flushFunc(w)}
	s.flush() // a dead peer shows up on the first frame
	return s
}

// SendData writes an unnamed SSE event (event type = "message") with JSON data.
func (s *Writer) SendData(data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal SSE data: %w", err)
	}
	return s.write(fmt.Sprintf("data: %s\n\n", jsonData))
}

func (s *Writer) write(frame string) error {
	if _, err := s.w.Write([]byte(frame)); err != nil {
		return fmt.Errorf("%w: %v", ErrClosed, err)
	}
	if err := s.flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrClosed, err)
	}
	return nil
}

// flushFunc picks a flush that reports failure. Instrumenting wrappers such
// as otelhttp's expose a Flush that drops the error, so the Unwrap chain is
// searched for the connection's FlushError before falling back to
// http.ResponseController.
func flushFunc(w http.ResponseWriter) func() error {
	for rw := w; rw != nil; {
		if f, ok := rw.(interface{ FlushError() error }); ok {
			return f.FlushError
		}
		u, ok := rw.(interface{ Unwrap() http.ResponseWriter })
		if !ok {
			break
		}
		rw = u.Unwrap()
	}
	return http.NewResponseController(w).Flush
}
