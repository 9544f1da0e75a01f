package main

import (
	"fmt"

	"github.com/kbukum/decodekit/batch"
	"github.com/kbukum/decodekit/config"
	"github.com/kbukum/decodekit/decoder/pocketsphinx"
	"github.com/kbukum/decodekit/decoder/sphinxd"
	"github.com/kbukum/decodekit/validation"
)

// appConfig is the full decodebatch configuration file layout.
type appConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Batch     batch.Config    `yaml:"batch" mapstructure:"batch"`
	Engine    engineConfig    `yaml:"engine" mapstructure:"engine"`
	Telemetry telemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// engineConfig selects and configures the decoding backend.
type engineConfig struct {
	// Kind is the engine to use: "sphinxd" or "pocketsphinx".
	Kind string `yaml:"kind" mapstructure:"kind"`

	Sphinxd      sphinxd.Config      `yaml:"sphinxd" mapstructure:"sphinxd"`
	Pocketsphinx pocketsphinx.Config `yaml:"pocketsphinx" mapstructure:"pocketsphinx"`
}

// options flattens the selected engine's typed config into the generic
// map consumed by its registry factory.
func (c engineConfig) options() map[string]any {
	switch c.Kind {
	case sphinxd.EngineName:
		return map[string]any{
			"url":     c.Sphinxd.URL,
			"model":   c.Sphinxd.Model,
			"timeout": c.Sphinxd.Timeout,
		}
	case pocketsphinx.EngineName:
		return map[string]any{
			"binary":     c.Pocketsphinx.Binary,
			"model_dir":  c.Pocketsphinx.ModelDir,
			"extra_args": c.Pocketsphinx.ExtraArgs,
			"timeout":    c.Pocketsphinx.Timeout,
		}
	default:
		return nil
	}
}

type telemetryConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
}

// ApplyDefaults fills in zero values across all sections.
func (c *appConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "decodebatch"
	}
	c.ServiceConfig.ApplyDefaults()
	c.Batch.ApplyDefaults()
	if c.Engine.Kind == "" {
		c.Engine.Kind = sphinxd.EngineName
	}
}

// Validate checks all sections.
func (c *appConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Batch.Validate(); err != nil {
		return fmt.Errorf("config.batch: %w", err)
	}
	v := validation.New()
	v.OneOf("engine.kind", c.Engine.Kind, []string{sphinxd.EngineName, pocketsphinx.EngineName})
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
