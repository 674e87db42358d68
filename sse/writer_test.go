package sse

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewWriter_Headers(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewWriter(rec)
	if w == nil {
		t.Fatal("NewWriter returned nil for a flushable recorder")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !rec.Flushed {
		t.Error("headers were not flushed")
	}

	want := map[string]string{
		"Content-Type":                "text/event-stream",
		"Cache-Control":               "no-cache",
		"Connection":                  "close",
		"Access-Control-Allow-Origin": "*",
	}
	for k, v := range want {
		if got := rec.Header().Get(k); got != v {
			t.Errorf("header %s: expected %q, got %q", k, v, got)
		}
	}
}

type noFlush struct{ http.ResponseWriter }

func TestNewWriter_RequiresFlusher(t *testing.T) {
	if NewWriter(noFlush{httptest.NewRecorder()}) != nil {
		t.Fatal("expected nil writer without http.Flusher")
	}
}

func TestWriter_Frames(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewWriter(rec)

	for _, v := range []any{map[string]string{"type": "RAW"}, map[string]int{"n": 1}} {
		if err := w.SendData(v); err != nil {
			t.Fatal(err)
		}
	}

	want := "data: {\"type\":\"RAW\"}\n\n" +
		"data: {\"n\":1}\n\n"
	if got := rec.Body.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWriter_MarshalError(t *testing.T) {
	w := NewWriter(httptest.NewRecorder())
	err := w.SendData(make(chan int))
	if err == nil {
		t.Fatal("expected marshal error")
	}
	if errors.Is(err, ErrClosed) {
		t.Fatal("marshal error reported as closed stream")
	}
}

// brokenWriter accepts headers but fails every body write, like a
// connection whose peer has hung up.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWriter_WriteFailure(t *testing.T) {
	w := NewWriter(brokenWriter{httptest.NewRecorder()})
	err := w.SendData("x")
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

// deadConn buffers writes but fails to flush them, like a connection whose
// peer hung up after the last successful flush.
type deadConn struct {
	*httptest.ResponseRecorder
}

func (deadConn) FlushError() error { return io.ErrClosedPipe }

// quietFlush hides flush errors behind a plain http.Flusher, the way
// instrumenting middleware wraps the connection.
type quietFlush struct {
	http.ResponseWriter
}

func (q quietFlush) Flush()                      { q.ResponseWriter.(http.Flusher).Flush() }
func (q quietFlush) Unwrap() http.ResponseWriter { return q.ResponseWriter }

func TestWriter_FlushFailure(t *testing.T) {
	tests := []struct {
		name string
		w    http.ResponseWriter
	}{
		{"direct", deadConn{httptest.NewRecorder()}},
		{"wrapped", quietFlush{deadConn{httptest.NewRecorder()}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(tt.w)
			if w == nil {
				t.Fatal("NewWriter returned nil")
			}
			if err := w.SendData("x"); !errors.Is(err, ErrClosed) {
				t.Fatalf("expected ErrClosed, got %v", err)
			}
		})
	}
}
