// Package config loads the orchestration settings for the CLI and scheduler:
// which form to export, where to persist artifacts, which formats to produce,
// and the optional cron schedule.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "FORMSCRIBE"

type (
	// Config is the explicit configuration struct handed to the
	// orchestration entry points.
	Config struct {
		Source   Source
		Sink     Sink
		Formats  []string
		Schedule string
		Export   Export
	}

	// Source identifies which form to export.
	Source struct {
		ID string `mapstructure:"id"`
	}

	// Sink identifies where artifacts are persisted.
	Sink struct {
		Location string `mapstructure:"location"`
	}

	// Export carries the per-run rendering knobs.
	Export struct {
		SanitizeHTML   bool   `mapstructure:"sanitize_html"`
		HeaderTemplate string `mapstructure:"header_template"`
	}
)

// Load reads configuration from an optional YAML file plus FORMSCRIBE_*
// environment variables, applying defaults for everything left unset.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("source.id", "")
	v.SetDefault("sink.location", "exports")
	v.SetDefault("formats", []string{"json", "markdown"})
	v.SetDefault("schedule", "")
	v.SetDefault("export.sanitize_html", false)
	v.SetDefault("export.header_template", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Source.ID = v.GetString("source.id")
	cfg.Sink.Location = v.GetString("sink.location")
	cfg.Formats = v.GetStringSlice("formats")
	cfg.Schedule = v.GetString("schedule")
	cfg.Export.SanitizeHTML = v.GetBool("export.sanitize_html")
	cfg.Export.HeaderTemplate = v.GetString("export.header_template")

	return cfg, nil
}

// Validate checks the fields every run needs.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source.ID) == "" {
		return fmt.Errorf("config: source.id is required")
	}
	if strings.TrimSpace(c.Sink.Location) == "" {
		return fmt.Errorf("config: sink.location is required")
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("config: at least one format is required")
	}
	return nil
}
