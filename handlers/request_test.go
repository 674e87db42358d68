package handlers

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestResolveRunRequest(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		scenario string
		delay    time.Duration
	}{
		{"empty body", ``, "simple_text", DefaultDelay},
		{"whitespace body", "  \n", "simple_text", DefaultDelay},
		{"empty object", `{}`, "simple_text", DefaultDelay},
		{"known scenario", `{"scenario":"with_state"}`, "with_state", DefaultDelay},
		{"unknown scenario", `{"scenario":"nope"}`, "simple_text", DefaultDelay},
		{"empty scenario", `{"scenario":""}`, "simple_text", DefaultDelay},
		{"non-string scenario", `{"scenario":42}`, "simple_text", DefaultDelay},
		{"null scenario", `{"scenario":null}`, "simple_text", DefaultDelay},
		{"zero delay", `{"scenario":"error","delay_ms":0}`, "error", 0},
		{"fractional delay", `{"delay_ms":2.5}`, "simple_text", 2500 * time.Microsecond},
		{"negative delay", `{"delay_ms":-10}`, "simple_text", -10 * time.Millisecond},
		{"null delay", `{"delay_ms":null}`, "simple_text", DefaultDelay},
		{"huge delay saturates", `{"delay_ms":1e300}`, "simple_text", time.Duration(math.MaxInt64)},
		{"extra fields ignored", `{"scenario":"all_events","threadId":"t1","messages":[]}`, "all_events", DefaultDelay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ResolveRunRequest([]byte(tt.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Scenario != tt.scenario {
				t.Errorf("expected scenario %q, got %q", tt.scenario, req.Scenario)
			}
			if req.Delay != tt.delay {
				t.Errorf("expected delay %v, got %v", tt.delay, req.Delay)
			}
		})
	}
}

func TestResolveRunRequest_Malformed(t *testing.T) {
	for _, body := range []string{
		`{`,
		`not json`,
		`[1,2]`,
		`"simple_text"`,
		`null`,
		`{"delay_ms":"fast"}`,
	} {
		t.Run(body, func(t *testing.T) {
			_, err := ResolveRunRequest([]byte(body))
			if !errors.Is(err, ErrMalformedRequest) {
				t.Fatalf("expected ErrMalformedRequest, got %v", err)
			}
		})
	}
}
