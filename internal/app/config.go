package app

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"twosum/internal/output"
)

// ErrConfig marks configuration problems.
var ErrConfig = errors.New("invalid configuration")

// Config holds runtime wiring options for building the app.
type Config struct {
	Input  string `yaml:"input"`  // case file; empty reads stdin
	Out    string `yaml:"out"`    // optional JSON results file
	Format string `yaml:"format"` // text or json
	Trace  bool   `yaml:"trace"`  // debug-log cursor steps to stderr
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{Format: string(output.FormatText)}
}

// LoadConfig reads a YAML config file over DefaultConfig. An empty path
// returns the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Mark(errors.Wrapf(err, "parsing config %s", path), ErrConfig)
	}
	return cfg, cfg.Validate()
}

// Validate reports settings no component can honour.
func (c Config) Validate() error {
	if _, err := output.ParseFormat(c.Format); err != nil {
		return errors.Mark(errors.Wrap(err, "format"), ErrConfig)
	}
	return nil
}
