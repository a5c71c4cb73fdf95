// Package sampler implements the polyphonic sampler/synthesis processor:
// voice allocation and stealing, MIDI-driven note lifecycle with
// sustain-pedal semantics, and the additive render/mixdown pipeline.
package sampler

import (
	"github.com/soakyaudio/go-sampler-core/pkg/midi"
	"github.com/soakyaudio/go-sampler-core/pkg/param"
)

// AudioProcessor is the generic contract the audio engine drives: reset
// once, set the channel layout once, then repeated process calls from the
// real-time callback.
type AudioProcessor interface {
	// GetParameter returns a parameter's current value, if known.
	GetParameter(id param.ID) (param.Value, bool)

	// ListParameters returns the processor's parameter metadata.
	ListParameters() []param.Parameter

	// Process renders into an interleaved buffer whose length is a
	// multiple of the output channel count.
	Process(buffer []float32)

	// Reset (re)configures the processor for a sample rate and maximum
	// per-callback buffer size. Must complete before the first Process
	// call on the audio thread.
	Reset(sampleRate float32, maxBufferSize int)

	// SetChannelLayout stores the negotiated channel counts.
	SetChannelLayout(inputChannels, outputChannels int)

	// SetParameter sets a parameter's value.
	SetParameter(id param.ID, value param.Value)
}

// MidiReceiver is implemented by anything that can consume parsed MIDI
// messages — the Sampler, and the control-thread Proxy that forwards to it.
type MidiReceiver interface {
	HandleMidiMessage(message midi.Message)
}
