package scenarios

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type listing struct {
	Default   string         `yaml:"default"`
	Scenarios []listingEntry `yaml:"scenarios"`
}

type listingEntry struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Events      []string `yaml:"events"`
}

// WriteYAML renders the catalogue (names, descriptions and the event type
// sequence of each scenario) as a YAML document.
func WriteYAML(w io.Writer) error {
	doc := listing{Default: Default}
	for _, s := range catalogue {
		entry := listingEntry{Name: s.Name, Description: s.Description}
		for _, e := range s.seq {
			entry.Events = append(entry.Events, string(e.EventType()))
		}
		doc.Scenarios = append(doc.Scenarios, entry)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode scenario listing: %w", err)
	}
	return enc.Close()
}
