// Package config holds the small set of tunable defaults this module
// needs outside of per-call parameters: ring-buffer capacity and initial
// polyphony. Grounded on the pack's habit of a small dedicated config
// struct alongside the component it configures (e.g. the pipeline config
// in other_examples/.../tphakala-birdnet-go__internal-audiocore-processing_pipeline.go.go).
package config

// DefaultRingBufferSize is the default capacity of each direction of a
// control-thread <-> audio-thread ring buffer. The concurrency design
// calls 256 "a starting point" for peak MIDI/parameter burst sizes;
// callers with denser control traffic should size their own
// proxy.NewSource call explicitly instead of relying on this default.
const DefaultRingBufferSize = 256

// DefaultVoiceCount is the starting polyphony a sound loader should give a
// Sampler absent an explicit voice count ("a sensible default is 64").
const DefaultVoiceCount = 64

// DefaultMaxBufferSize is a conservative real-time callback size (frames)
// to pass to Reset when the host has not yet reported its own.
const DefaultMaxBufferSize = 512
