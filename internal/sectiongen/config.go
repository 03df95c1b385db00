package sectiongeninternal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the optional configuration file looked up in the
// working directory.
const ConfigFile = "sectiongen.yaml"

// Config holds the settings of the command-line tool. Flags given on the
// command line override the values from [ConfigFile].
//
//	# sectiongen.yaml
//	output: sections_gen.go
//	tags: [integration]
//	tests: false
//	color: never
type Config struct {
	Output string   `yaml:"output"`
	Tags   []string `yaml:"tags"`
	Tests  bool     `yaml:"tests"`
	Color  string   `yaml:"color"`
}

// DefaultConfig returns the configuration used without [ConfigFile].
func DefaultConfig() Config {
	return Config{
		Output: "sectiongen_gen.go",
		Color:  "auto",
	}
}

// LoadConfig reads [ConfigFile] in dir over [DefaultConfig]. A missing file is
// not an error.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%s: %w", ConfigFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", ConfigFile, err)
	}
	return cfg, nil
}

// Validate checks the values of the configuration.
func (cfg Config) Validate() error {
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q: must be auto, always, or never", cfg.Color)
	}

	if cfg.Output == "" || filepath.Base(cfg.Output) != cfg.Output || filepath.Ext(cfg.Output) != ".go" {
		return fmt.Errorf("invalid output %q: must be a .go file name without directory", cfg.Output)
	}
	if strings.HasSuffix(cfg.Output, "_test.go") {
		return fmt.Errorf("invalid output %q: must not be a test file", cfg.Output)
	}

	for _, tag := range cfg.Tags {
		if tag == "" || strings.ContainsAny(tag, ", ") {
			return fmt.Errorf("invalid build tag %q", tag)
		}
	}
	return nil
}

// BuildTags joins the build tags for [Main].
func (cfg Config) BuildTags() string {
	return strings.Join(cfg.Tags, ",")
}
