package scenarios

import (
	"bytes"
	"encoding/json"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"

	"agui_mock/events"
)

func typesOf(seq []events.Event) []events.EventType {
	out := make([]events.EventType, len(seq))
	for i, e := range seq {
		out[i] = e.EventType()
	}
	return out
}

func TestCatalogue_Names(t *testing.T) {
	want := []string{"simple_text", "with_thinking", "with_tool_call", "with_state", "error", "all_events"}
	if got := Names(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	desc := Descriptions()
	for _, name := range want {
		if desc[name] == "" {
			t.Errorf("scenario %q has no description", name)
		}
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) failed", name)
		}
	}
}

func TestCatalogue_Shapes(t *testing.T) {
	tests := []struct {
		name string
		want []events.EventType
	}{
		{"simple_text", []events.EventType{
			events.TypeRunStarted,
			events.TypeTextMessageStart, events.TypeTextMessageContent, events.TypeTextMessageContent, events.TypeTextMessageEnd,
			events.TypeRunFinished,
		}},
		{"with_thinking", []events.EventType{
			events.TypeRunStarted,
			events.TypeThinkingStart,
			events.TypeThinkingTextMessageStart, events.TypeThinkingTextMessageContent, events.TypeThinkingTextMessageEnd,
			events.TypeThinkingEnd,
			events.TypeTextMessageStart, events.TypeTextMessageContent, events.TypeTextMessageContent, events.TypeTextMessageEnd,
			events.TypeRunFinished,
		}},
		{"with_tool_call", []events.EventType{
			events.TypeRunStarted,
			events.TypeTextMessageStart, events.TypeTextMessageContent, events.TypeTextMessageEnd,
			events.TypeToolCallStart, events.TypeToolCallArgs, events.TypeToolCallArgs, events.TypeToolCallEnd, events.TypeToolCallResult,
			events.TypeTextMessageStart, events.TypeTextMessageContent, events.TypeTextMessageEnd,
			events.TypeRunFinished,
		}},
		{"with_state", []events.EventType{
			events.TypeRunStarted,
			events.TypeStateSnapshot,
			events.TypeTextMessageStart, events.TypeTextMessageContent, events.TypeTextMessageEnd,
			events.TypeStateDelta,
			events.TypeTextMessageStart, events.TypeTextMessageContent, events.TypeTextMessageEnd,
			events.TypeStateDelta,
			events.TypeRunFinished,
		}},
		{"error", []events.EventType{
			events.TypeRunStarted,
			events.TypeTextMessageStart, events.TypeTextMessageContent,
			events.TypeRunError,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("scenario %q missing", tt.name)
			}
			if got := typesOf(s.Events()); !slices.Equal(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCatalogue_RunBracket(t *testing.T) {
	for _, s := range catalogue {
		seq := s.Events()
		if seq[0].EventType() != events.TypeRunStarted {
			t.Errorf("%s: first event is %s", s.Name, seq[0].EventType())
		}
		last := seq[len(seq)-1].EventType()
		if last != events.TypeRunFinished && last != events.TypeRunError {
			t.Errorf("%s: last event is %s", s.Name, last)
		}
		for _, e := range seq[1 : len(seq)-1] {
			switch e.EventType() {
			case events.TypeRunStarted, events.TypeRunFinished, events.TypeRunError:
				t.Errorf("%s: run lifecycle event %s inside the run", s.Name, e.EventType())
			}
		}
	}
}

func TestErrorScenario_NoCompletion(t *testing.T) {
	s, _ := Lookup("error")
	seq := s.Events()
	for _, e := range seq {
		if e.EventType() == events.TypeRunFinished || e.EventType() == events.TypeTextMessageEnd {
			t.Fatalf("error scenario must not contain %s", e.EventType())
		}
	}
	if seq[len(seq)-1].EventType() != events.TypeRunError {
		t.Fatalf("expected trailing RUN_ERROR, got %s", seq[len(seq)-1].EventType())
	}
}

func TestAllEvents_CoversEveryKind(t *testing.T) {
	s, _ := Lookup("all_events")
	seen := map[events.EventType]bool{}
	for _, e := range s.Events() {
		seen[e.EventType()] = true
	}
	for _, typ := range events.AllTypes() {
		if typ == events.TypeRunError {
			continue
		}
		if !seen[typ] {
			t.Errorf("all_events does not exercise %s", typ)
		}
	}

	seq := s.Events()
	finished, ok := seq[len(seq)-1].(events.RunFinished)
	if !ok {
		t.Fatalf("expected RunFinished last, got %T", seq[len(seq)-1])
	}
	if finished.Result["events_count"] != s.Len() {
		t.Errorf("events_count %v does not match length %d", finished.Result["events_count"], s.Len())
	}
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	want := Resolve(Default)
	for _, name := range []string{"", "nope", "SIMPLE_TEXT", " simple_text"} {
		got := Resolve(name)
		if got.Name != Default {
			t.Errorf("Resolve(%q) = %q, expected %q", name, got.Name, Default)
		}
		if !slices.Equal(typesOf(got.Events()), typesOf(want.Events())) {
			t.Errorf("Resolve(%q) sequence differs from default", name)
		}
	}
	if got := Resolve("error"); got.Name != "error" {
		t.Errorf("Resolve(error) = %q", got.Name)
	}
}

func TestScenario_Deterministic(t *testing.T) {
	for _, name := range Names() {
		a, _ := json.Marshal(Resolve(name).Events())
		b, _ := json.Marshal(Resolve(name).Events())
		if !bytes.Equal(a, b) {
			t.Errorf("%s: replay differs", name)
		}
	}
}

func TestScenario_EventsIsCopy(t *testing.T) {
	s := Resolve(Default)
	seq := s.Events()
	seq[0] = events.NewRaw("tampered")
	if Resolve(Default).Events()[0].EventType() != events.TypeRunStarted {
		t.Fatal("mutating Events() result changed the catalogue")
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf); err != nil {
		t.Fatal(err)
	}

	var doc listing
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if doc.Default != Default {
		t.Errorf("expected default %q, got %q", Default, doc.Default)
	}
	if len(doc.Scenarios) != len(Names()) {
		t.Fatalf("expected %d scenarios, got %d", len(Names()), len(doc.Scenarios))
	}
	first := doc.Scenarios[0]
	if first.Name != "simple_text" || first.Events[0] != "RUN_STARTED" {
		t.Errorf("unexpected first entry: %+v", first)
	}
}
