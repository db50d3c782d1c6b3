// Package config loads the Parser and Connection tunables and the logging
// settings from an optional YAML file with an environment-variable overlay,
// the way packetd's confengine (file load) and common.Options (cast-based env
// coercion) do for its decoders — scaled down to this repo's four numeric
// knobs plus two logging strings rather than a nested plugin tree. The
// Dumper has no tunables and so no section here.
package config

import (
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/coreframe/httpcodec/httpcore"
)

// Config is the full set of tunables a running httpcodec process needs.
type Config struct {
	Parser struct {
		MaxStartLineSize int `yaml:"maxStartLineSize"`
		MaxHeaderSize    int `yaml:"maxHeaderSize"`
		MaxBodySize      int `yaml:"maxBodySize"`
	} `yaml:"parser"`

	Connection struct {
		MinReadBufferSize int `yaml:"minReadBufferSize"`
	} `yaml:"connection"`

	Logging struct {
		Level    string `yaml:"level"`
		Filename string `yaml:"filename"`
	} `yaml:"logging"`
}

// Default returns a Config with the reference decoder's defaults.
func Default() *Config {
	c := &Config{}
	defaults := httpcore.DefaultParserOptions()
	c.Parser.MaxStartLineSize = defaults.MaxStartLineSize
	c.Parser.MaxHeaderSize = defaults.MaxHeaderSize
	c.Parser.MaxBodySize = defaults.MaxBodySize
	c.Connection.MinReadBufferSize = httpcore.DefaultMinReadBufferSize
	c.Logging.Level = "info"
	return c
}

// Load reads path (if non-empty and it exists) as YAML over the defaults,
// then overlays recognized HTTPCODEC_* environment variables.
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := yaml.Unmarshal(data, c); err != nil {
			return nil, err
		}
	}

	if err := overlayEnv(c); err != nil {
		return nil, err
	}
	return c, nil
}

func overlayEnv(c *Config) error {
	overlays := []struct {
		env string
		dst *int
	}{
		{"HTTPCODEC_MAX_START_LINE_SIZE", &c.Parser.MaxStartLineSize},
		{"HTTPCODEC_MAX_HEADER_SIZE", &c.Parser.MaxHeaderSize},
		{"HTTPCODEC_MAX_BODY_SIZE", &c.Parser.MaxBodySize},
		{"HTTPCODEC_MIN_READ_BUFFER_SIZE", &c.Connection.MinReadBufferSize},
	}
	for _, o := range overlays {
		raw, ok := os.LookupEnv(o.env)
		if !ok {
			continue
		}
		v, err := cast.ToIntE(raw)
		if err != nil {
			return err
		}
		*o.dst = v
	}
	if level, ok := os.LookupEnv("HTTPCODEC_LOG_LEVEL"); ok {
		c.Logging.Level = level
	}
	if filename, ok := os.LookupEnv("HTTPCODEC_LOG_FILE"); ok {
		c.Logging.Filename = filename
	}
	return nil
}

// ParserOptions converts the loaded config into httpcore.ParserOptions.
func (c *Config) ParserOptions() httpcore.ParserOptions {
	return httpcore.ParserOptions{
		MaxStartLineSize: c.Parser.MaxStartLineSize,
		MaxHeaderSize:    c.Parser.MaxHeaderSize,
		MaxBodySize:      c.Parser.MaxBodySize,
	}
}
