package waiver

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of a .svtext-waivers.yaml file: a trigger
// word and an optional list of rule names. Rules is parsed but nothing in
// this package checks directives against it; a directive naming a rule
// that is not listed is accepted.
// Grounded on the teacher's cli/cmd/config.go Config/LoadConfig pattern.
type Config struct {
	Trigger string   `yaml:"trigger"`
	Rules   []string `yaml:"rules"`
}

// DefaultTrigger is used when a loaded Config has no trigger set.
const DefaultTrigger = "svtext-lint"

// LoadConfig reads and parses a waiver config file at path. A missing
// file is not an error: it returns a Config with DefaultTrigger.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{Trigger: DefaultTrigger}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Trigger == "" {
		cfg.Trigger = DefaultTrigger
	}
	return cfg, nil
}
