package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"agui_mock/scenarios"
)

// DefaultDelay is the pacing used when a run request omits delay_ms.
const DefaultDelay = 100 * time.Millisecond

// ErrMalformedRequest means the run request body is not a JSON object.
var ErrMalformedRequest = errors.New("malformed run request")

// RunRequest is a resolved POST /api/agent/run body.
type RunRequest struct {
	Scenario string
	Delay    time.Duration
}

// ResolveRunRequest parses a run request body. An empty body is treated as
// {}. Missing or unknown scenarios resolve to the default scenario; a missing
// delay_ms resolves to DefaultDelay. delay_ms is otherwise taken as given,
// including zero and negative values.
func ResolveRunRequest(body []byte) (RunRequest, error) {
	req := RunRequest{Scenario: scenarios.Default, Delay: DefaultDelay}

	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return req, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	// "null" decodes into a nil map without error.
	if fields == nil {
		return req, fmt.Errorf("%w: body must be a JSON object", ErrMalformedRequest)
	}

	if raw, ok := fields["scenario"]; ok {
		var name string
		if json.Unmarshal(raw, &name) == nil {
			req.Scenario = scenarios.Resolve(name).Name
		}
	}

	if raw, ok := fields["delay_ms"]; ok && !isNull(raw) {
		var ms float64
		if err := json.Unmarshal(raw, &ms); err != nil {
			return req, fmt.Errorf("%w: delay_ms must be a number", ErrMalformedRequest)
		}
		req.Delay = millis(ms)
	}

	return req, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// millis converts a millisecond count to a Duration, saturating instead of
// overflowing.
func millis(ms float64) time.Duration {
	ns := ms * float64(time.Millisecond)
	switch {
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}
