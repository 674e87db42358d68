// Package stream replays a scenario over an SSE connection.
package stream

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"agui_mock/events"
	"agui_mock/scenarios"
	"agui_mock/sse"
	"agui_mock/tracing"
)

// Result summarises a finished session.
type Result struct {
	Sent         int
	Total        int
	Disconnected bool
}

// Session is one in-progress delivery of a scenario. It is the only writer
// to its connection and must not be shared between goroutines.
type Session struct {
	ID       string
	Scenario string

	w       *sse.Writer
	seq     []events.Event
	delay   time.Duration
	metrics *tracing.SessionMetrics

	pos          int
	disconnected bool
}

// Option configures a Session.
type Option func(*Session)

// WithMetrics records session counters on m.
func WithMetrics(m *tracing.SessionMetrics) Option {
	return func(s *Session) { s.metrics = m }
}

// NewSession prepares delivery of sc over w, pausing delay between events.
// A delay of zero or less sends events back to back.
func NewSession(w *sse.Writer, sc scenarios.Scenario, delay time.Duration, opts ...Option) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Scenario: sc.Name,
		w:        w,
		seq:      sc.Events(),
		delay:    delay,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run sends the remaining events in order, flushing each one and waiting
// the pacing delay before the next. It stops early when a write fails or
// ctx is cancelled, which both mean the peer has gone away; that is a normal
// outcome and is reported through Result rather than as an error.
func (s *Session) Run(ctx context.Context) Result {
	ctx, span := tracing.Tracer.Start(ctx, "stream scenario", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("scenario.name", s.Scenario),
		attribute.Int64("scenario.delay_ms", s.delay.Milliseconds()),
		attribute.Int("scenario.events", len(s.seq)),
	))
	defer span.End()

	attrs := metric.WithAttributes(attribute.String("scenario", s.Scenario))
	if s.metrics != nil {
		s.metrics.Started.Add(ctx, 1, attrs)
	}

	for s.pos < len(s.seq) {
		if ctx.Err() != nil {
			s.disconnected = true
			break
		}

		if err := s.w.SendData(s.seq[s.pos]); err != nil {
			if errors.Is(err, sse.ErrClosed) {
				s.disconnected = true
			} else {
				span.RecordError(err)
				tracing.Logger.ErrorContext(ctx, "failed to encode event",
					"session", s.ID, "event", s.seq[s.pos].EventType(), "error", err)
			}
			break
		}
		s.pos++
		if s.metrics != nil {
			s.metrics.EventsSent.Add(ctx, 1, attrs)
		}

		if s.pos < len(s.seq) && !s.pause(ctx) {
			s.disconnected = true
			break
		}
	}

	if s.disconnected {
		if s.metrics != nil {
			s.metrics.Disconnected.Add(ctx, 1, attrs)
		}
		tracing.Logger.DebugContext(ctx, "peer disconnected",
			"session", s.ID, "scenario", s.Scenario, "sent", s.pos, "total", len(s.seq))
	}
	span.SetAttributes(
		attribute.Int("session.sent", s.pos),
		attribute.Bool("session.disconnected", s.disconnected),
	)

	return s.Result()
}

// Result reports the session's progress so far.
func (s *Session) Result() Result {
	return Result{Sent: s.pos, Total: len(s.seq), Disconnected: s.disconnected}
}

// pause waits for the pacing delay. It returns false if ctx ends first.
func (s *Session) pause(ctx context.Context) bool {
	if s.delay <= 0 {
		return true
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
