// Package scenarios holds the fixed catalogue of canned AG-UI event traces.
//
// The catalogue is built once at package initialisation and never mutated,
// so it is safe to share across concurrent streaming sessions.
package scenarios

import (
	"slices"

	"agui_mock/events"
)

// Default is the scenario used for missing or unknown names.
const Default = "simple_text"

// Scenario is a named, ordered, immutable sequence of events.
type Scenario struct {
	Name        string
	Description string
	seq         []events.Event
}

// Events returns the sequence in replay order. The slice is a copy; the
// events themselves must be treated as read-only.
func (s Scenario) Events() []events.Event {
	return slices.Clone(s.seq)
}

// Len returns the number of events in the sequence.
func (s Scenario) Len() int {
	return len(s.seq)
}

var (
	catalogue = buildCatalogue()
	byName    = indexCatalogue(catalogue)
)

func indexCatalogue(list []Scenario) map[string]Scenario {
	m := make(map[string]Scenario, len(list))
	for _, s := range list {
		m[s.Name] = s
	}
	return m
}

// Names returns every scenario name in catalogue order.
func Names() []string {
	names := make([]string, len(catalogue))
	for i, s := range catalogue {
		names[i] = s.Name
	}
	return names
}

// Descriptions maps each scenario name to its human-readable description.
func Descriptions() map[string]string {
	m := make(map[string]string, len(catalogue))
	for _, s := range catalogue {
		m[s.Name] = s.Description
	}
	return m
}

// Lookup returns the scenario registered under name.
func Lookup(name string) (Scenario, bool) {
	s, ok := byName[name]
	return s, ok
}

// Resolve returns the scenario registered under name, or the default
// scenario when name is not recognised. It never fails.
func Resolve(name string) Scenario {
	if s, ok := byName[name]; ok {
		return s
	}
	return byName[Default]
}
