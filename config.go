package aguimock

import (
	"flag"
	"os"
)

// AppConfig holds server-level runtime configuration loaded from CLI flags.
type AppConfig struct {
	Host string
	Port int

	// ListScenarios and Schema make the binary print the scenario catalogue
	// or the event schemas and exit instead of serving.
	ListScenarios bool
	Schema        bool
}

// LoadAppConfig reads configuration from the process command line. Invalid
// flags exit the process (flag.ExitOnError).
func LoadAppConfig() *AppConfig {
	cfg, _ := ParseAppConfig(flag.CommandLine, os.Args[1:])
	return cfg
}

// ParseAppConfig registers the server flags on fs and parses args.
func ParseAppConfig(fs *flag.FlagSet, args []string) (*AppConfig, error) {
	cfg := &AppConfig{}
	fs.StringVar(&cfg.Host, "host", "0.0.0.0", "Listen host (default: all interfaces)")
	fs.IntVar(&cfg.Port, "port", 8080, "Listen port")
	fs.BoolVar(&cfg.ListScenarios, "list-scenarios", false, "Print the scenario catalogue as YAML and exit")
	fs.BoolVar(&cfg.Schema, "schema", false, "Print the JSON Schema of every event type and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
