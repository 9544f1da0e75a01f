// Package config provides configuration loading and validation for
// decodekit applications.
//
// It uses Viper to load configuration from files and environment
// variables. A run is configured once at startup; the resulting structs
// are passed by reference into the components that need them and are
// immutable afterwards; there is no ambient configuration lookup.
//
// # Usage
//
//	type appConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Batch batch.Config `yaml:"batch" mapstructure:"batch"`
//	}
//
//	var cfg appConfig
//	err := config.LoadConfig("decodebatch", &cfg, config.WithConfigFile(path))
package config
