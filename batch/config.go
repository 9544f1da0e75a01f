package batch

import (
	"github.com/kbukum/decodekit/decoder"
	"github.com/kbukum/decodekit/validation"
)

// Missing-input policies. Halt stops the run at the first record whose
// input cannot be opened; Skip logs it and moves on.
const (
	MissingInputHalt = "halt"
	MissingInputSkip = "skip"
)

// Config controls which slice of a manifest a run decodes and how.
type Config struct {
	// ManifestPath is the manifest file to read. Usually supplied on the
	// command line rather than in the config file.
	ManifestPath string `yaml:"manifest_path,omitempty" json:"manifest_path" mapstructure:"manifest_path"`

	// Skip is the sampling stride: decode every Skip-th record, starting
	// with the first. Values below 2 decode every record.
	Skip int `yaml:"skip,omitempty" json:"skip" mapstructure:"skip"`

	// WhichShard selects this run's shard, starting at 0.
	WhichShard int `yaml:"which_shard,omitempty" json:"which_shard" mapstructure:"which_shard"`

	// TotalShards is the number of shards the manifest is split across.
	TotalShards int `yaml:"total_shards,omitempty" json:"total_shards" mapstructure:"total_shards"`

	// InputKind declares what the manifest inputs contain: "audio" or
	// "cepstrum". Empty means audio.
	InputKind string `yaml:"input_kind,omitempty" json:"input_kind" mapstructure:"input_kind"`

	// OnMissingInput is the policy for records whose input cannot be
	// opened: "halt" (default) or "skip".
	OnMissingInput string `yaml:"on_missing_input,omitempty" json:"on_missing_input" mapstructure:"on_missing_input" validate:"oneof=halt skip"`
}

// ApplyDefaults fills in zero values.
func (c *Config) ApplyDefaults() {
	if c.TotalShards == 0 {
		c.TotalShards = 1
	}
	if c.InputKind == "" {
		c.InputKind = string(decoder.InputAudio)
	}
	if c.OnMissingInput == "" {
		c.OnMissingInput = MissingInputHalt
	}
}

// Validate checks the configuration. Struct tags cover the enumerated
// fields; InputKind is checked through the decoder parser, which also
// accepts case and whitespace variants. Shard and stride values outside
// their useful range are clamped at run time rather than rejected here,
// matching how misconfigured shard runs are expected to degrade.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if _, err := decoder.ParseInputKind(c.InputKind); err != nil {
		v := validation.New()
		v.AddError("input_kind", "must be one of: audio, cepstrum")
		return v.Validate()
	}
	return nil
}
