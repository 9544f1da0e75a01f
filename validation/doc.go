// Package validation provides input validation utilities for decodekit
// configuration structs.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// recommended for configuration types.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Manifest    string `validate:"required"`
//	    TotalShards int    `validate:"min=1"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("manifest", cfg.Manifest)
//	v.Min("total_shards", cfg.TotalShards, 1)
//	err := v.Validate()
package validation
