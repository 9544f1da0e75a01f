// Package logger provides structured logging for decodekit
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("batch")
//	log.Info("input decoded", logger.Fields(logger.FieldInput, "a.wav"))
package logger
