// Package config loads quill.yml.
//
// Values can be overridden with QUILL_-prefixed environment variables,
// e.g. QUILL_INDENTATION=4 or QUILL_OUTPUT_DIR=build/api.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/simonhull/firebird-suite/quill/textfmt"
)

// FileName is the config file base name searched for in the project dir.
const FileName = "quill"

// Config holds the settings shared by the quill helpers.
type Config struct {
	Indentation  int      // spaces per indentation level
	Color        bool     // wrap console output in ANSI colors
	DisableFlags []string // extra lint flags for typed-source outputs
	OutputDir    string   // default output directory
}

// Default returns the settings used when no config file is present.
func Default() *Config {
	return &Config{
		Indentation: textfmt.DefaultIndentation,
		Color:       true,
		OutputDir:   "generated",
	}
}

// Load reads quill.yml from dir, or the file at path when path is set.
// A missing config file is not an error; defaults apply.
func Load(dir, path string) (*Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("indentation", def.Indentation)
	v.SetDefault("color", def.Color)
	v.SetDefault("lint.disable", []string{})
	v.SetDefault("output.dir", def.OutputDir)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("QUILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Indentation:  v.GetInt("indentation"),
		Color:        v.GetBool("color"),
		DisableFlags: v.GetStringSlice("lint.disable"),
		OutputDir:    v.GetString("output.dir"),
	}

	if cfg.Indentation < 0 {
		return nil, fmt.Errorf("indentation must not be negative, got %d", cfg.Indentation)
	}

	return cfg, nil
}

// Formatter returns a text formatter using the configured indentation.
func (c *Config) Formatter() *textfmt.Formatter {
	return textfmt.New(c.Indentation)
}
