package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	kiterrors "github.com/alexisbeaulieu97/bookingkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kiterrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates an in-memory document. path is only used in errors.
func Parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, kiterrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load returns the parsed file at path, or Default when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return ParseConfig(path)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
