// Package host provides the audio-callback wrapper that owns a proxy
// Source and republishes parameter state every render call, grounded on
// original_source/src/engine/cpal_processor.rs (CpalProcessor) combined
// with the ProcessorHost wiring described alongside
// original_source/src/base/processor_proxy.rs.
package host

import (
	"github.com/soakyaudio/go-sampler-core/pkg/config"
	"github.com/soakyaudio/go-sampler-core/pkg/midi"
	"github.com/soakyaudio/go-sampler-core/pkg/param"
	"github.com/soakyaudio/go-sampler-core/pkg/proxy"
	"github.com/soakyaudio/go-sampler-core/pkg/sampler"
)

// Host wraps an AudioProcessor (typically a *sampler.Sampler instance) and
// drives it from the real-time callback: draining inbound control-thread
// messages, rendering, then republishing the processor's parameter
// snapshot outward every call.
type Host struct {
	processor    sampler.AudioProcessor
	midiReceiver sampler.MidiReceiver
	source       *proxy.Source
	proxy        *proxy.Proxy
}

// New wraps processor, creating its proxy Source and first Proxy clone and
// publishing the processor's initial parameter values to the snapshot.
// midiReceiver is typically the same value as processor when it also
// implements sampler.MidiReceiver.
func New(processor sampler.AudioProcessor, midiReceiver sampler.MidiReceiver) *Host {
	source, clientProxy := proxy.NewSource(config.DefaultRingBufferSize)
	h := &Host{
		processor:    processor,
		midiReceiver: midiReceiver,
		source:       source,
		proxy:        clientProxy,
	}
	h.publishParameters()
	return h
}

// Proxy returns a clone of this host's control-thread handle.
func (h *Host) Proxy() *proxy.Proxy {
	return h.source.GetProxy()
}

// Close stops the host's worker goroutine. Call once, after the audio
// thread has stopped calling Process.
func (h *Host) Close() {
	h.source.Close()
}

// GetParameter forwards to the wrapped processor.
func (h *Host) GetParameter(id param.ID) (param.Value, bool) {
	return h.processor.GetParameter(id)
}

// ListParameters forwards to the wrapped processor.
func (h *Host) ListParameters() []param.Parameter {
	return h.processor.ListParameters()
}

// SetParameter forwards to the wrapped processor.
func (h *Host) SetParameter(id param.ID, value param.Value) {
	h.processor.SetParameter(id, value)
}

// SetChannelLayout forwards to the wrapped processor.
func (h *Host) SetChannelLayout(inputChannels, outputChannels int) {
	h.processor.SetChannelLayout(inputChannels, outputChannels)
}

// Reset forwards to the wrapped processor.
func (h *Host) Reset(sampleRate float32, maxBufferSize int) {
	h.processor.Reset(sampleRate, maxBufferSize)
}

// HandleMidiMessage forwards directly to the wrapped receiver, for a MIDI
// source attached straight to the audio thread rather than routed through
// a Proxy clone.
func (h *Host) HandleMidiMessage(message midi.Message) {
	h.midiReceiver.HandleMidiMessage(message)
}

func (h *Host) publishParameters() {
	for _, p := range h.processor.ListParameters() {
		if v, ok := h.processor.GetParameter(p.ID); ok {
			h.source.PublishParameter(p.ID, v)
		}
	}
}

// Process implements AudioProcessor from the real-time callback's side:
// it drains inbound control-thread messages, renders into buffer, then
// republishes every listed parameter and wakes the worker so Proxy
// clones observe the update.
func (h *Host) Process(buffer []float32) {
	h.source.HandleMessages(h.processor, h.midiReceiver)
	h.processor.Process(buffer)
	h.publishParameters()
}

var _ sampler.AudioProcessor = (*Host)(nil)
