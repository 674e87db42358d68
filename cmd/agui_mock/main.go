package main

import (
	"encoding/json"
	"log"
	"os"

	aguimock "agui_mock"
	"agui_mock/events"
	"agui_mock/scenarios"
)

func main() {
	cfg := aguimock.LoadAppConfig()

	switch {
	case cfg.ListScenarios:
		if err := scenarios.WriteYAML(os.Stdout); err != nil {
			log.Fatalf("list scenarios: %v", err)
		}
		return
	case cfg.Schema:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(events.Schemas()); err != nil {
			log.Fatalf("encode schemas: %v", err)
		}
		return
	}

	s := aguimock.New(
		aguimock.WithHost(cfg.Host),
		aguimock.WithPort(cfg.Port),
	)
	if err := s.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
