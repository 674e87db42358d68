// Package tracing exposes the OpenTelemetry instruments shared by the mock
// server. Nothing is exported unless the embedding process installs tracer,
// meter or logger providers; the defaults are no-ops.
package tracing

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const ScopeName = "agui_mock"

var (
	Tracer = otel.Tracer(ScopeName)
	Meter  = otel.Meter(ScopeName)
	Logger = otelslog.NewLogger(ScopeName)
)

// SessionMetrics counts streaming sessions and their outcomes.
type SessionMetrics struct {
	Started      metric.Int64Counter
	EventsSent   metric.Int64Counter
	Disconnected metric.Int64Counter
}

// NewSessionMetrics registers the session counters on Meter.
func NewSessionMetrics() (*SessionMetrics, error) {
	started, err := Meter.Int64Counter("agui_mock.sessions.started",
		metric.WithDescription("Streaming sessions opened"))
	if err != nil {
		return nil, err
	}
	sent, err := Meter.Int64Counter("agui_mock.events.sent",
		metric.WithDescription("Events written to streaming sessions"))
	if err != nil {
		return nil, err
	}
	disconnected, err := Meter.Int64Counter("agui_mock.sessions.disconnected",
		metric.WithDescription("Sessions cut short by the peer"))
	if err != nil {
		return nil, err
	}
	return &SessionMetrics{Started: started, EventsSent: sent, Disconnected: disconnected}, nil
}
