package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log      LogConfig      `yaml:"log"`
	Output   OutputConfig   `yaml:"output"`
	SelfTest SelfTestConfig `yaml:"selftest"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	// Frame prints the rebuilt "$...*HH" sentence instead of the bare checksum.
	Frame bool `yaml:"frame"`
}

type SelfTestConfig struct {
	Verbose *bool `yaml:"verbose"`
}

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"auto", "console", "json"}
	outputFormats = []string{"text", "json"}
)

// Default returns the configuration used when no file is given.
func Default() Config {
	verbose := true
	return Config{
		Log:      LogConfig{Level: "info", Format: "auto"},
		Output:   OutputConfig{Format: "text"},
		SelfTest: SelfTestConfig{Verbose: &verbose},
	}
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, unknownFieldsError(err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalizes values and rejects unsupported ones. It is called again
// after command-line overrides are applied.
func (c *Config) Validate() error {
	return c.applyDefaults()
}

func (c *Config) applyDefaults() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if !oneOf(c.Log.Level, logLevels) {
		return fmt.Errorf("log.level must be one of %s", strings.Join(logLevels, ", "))
	}

	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format == "" {
		c.Log.Format = "auto"
	}
	if !oneOf(c.Log.Format, logFormats) {
		return fmt.Errorf("log.format must be one of %s", strings.Join(logFormats, ", "))
	}

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if !oneOf(c.Output.Format, outputFormats) {
		return fmt.Errorf("output.format must be one of %s", strings.Join(outputFormats, ", "))
	}

	// Mismatch details are printed unless explicitly disabled.
	if c.SelfTest.Verbose == nil {
		v := true
		c.SelfTest.Verbose = &v
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// unknownFieldsError rewrites yaml's strict-mode error without line prefixes.
func unknownFieldsError(err error) error {
	var te *yaml.TypeError
	if !errors.As(err, &te) {
		return err
	}
	msgs := make([]string, 0, len(te.Errors))
	for _, m := range te.Errors {
		if !strings.Contains(m, " not found in type ") {
			return err
		}
		if strings.HasPrefix(m, "line ") {
			if _, rest, ok := strings.Cut(m, ": "); ok {
				m = rest
			}
		}
		msgs = append(msgs, m)
	}
	return fmt.Errorf("config contains unknown fields: %s", strings.Join(msgs, "; "))
}
