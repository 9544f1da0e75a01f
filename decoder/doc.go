// Package decoder defines the engine interface and common types for
// interacting with speech decoding backends.
//
// It follows the provider pattern with a pluggable registry for
// runtime-selectable backends. An engine exposes two strongly typed
// decode entry points, one per input kind: raw audio signal streams and
// pre-extracted cepstral feature streams. The input kind is fixed for a
// whole run and selects which entry point the batch dispatcher uses.
//
// # Backends
//
//   - decoder/sphinxd: HTTP decode sidecar
//   - decoder/pocketsphinx: local decoder binary driven as a subprocess
//
// # Usage
//
//	reg := decoder.NewRegistry()
//	reg.RegisterFactory(sphinxd.EngineName, sphinxd.Factory())
//	engine, err := reg.Create(sphinxd.EngineName, cfg)
//	result, err := engine.DecodeAudio(ctx, stream, decoder.NewRef("HELLO WORLD"))
package decoder
