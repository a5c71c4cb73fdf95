// Package voice implements the mutable per-note renderers a Sampler pools
// and allocates: SampledVoice and OscillatorVoice, behind a shared
// capability interface.
package voice

// Voice is the capability set a Sampler needs from a per-note renderer,
// generic over the concrete Sound type it plays. A Sampler depends only on
// this interface, never on a concrete voice type — mirroring the original
// Rust `Sampler<Sound, Voice>` generic pair.
type Voice[S any] interface {
	// ActiveNote returns the MIDI note currently bound, if any.
	ActiveNote() (note uint8, ok bool)

	// Priority returns the monotone stamp assigned at StartNote.
	Priority() uint64

	// IsKeyDown reports whether the key that triggered this voice is still
	// held (true between NoteOn and the NoteOff that released this note).
	IsKeyDown() bool

	// IsPlaying reports whether the voice has a bound sound.
	IsPlaying() bool

	// Render additively mixes this voice into an interleaved stereo
	// buffer, advancing internal state by one frame per stereo pair.
	Render(buffer []float32)

	// Reset unbinds the voice and resets its envelope for a new sample
	// rate. Called once per voice during Sampler.Reset, never during
	// Process.
	Reset(sampleRate float32, maxBufferSize int)

	// StartNote binds the voice to sound/note at the given priority stamp,
	// velocity normalized to [0,1].
	StartNote(note uint8, velocity float32, s S, priority uint64)

	// StopNote stops the voice. allowTail=true triggers envelope release
	// (voice keeps playing until the envelope decays); allowTail=false
	// unbinds immediately.
	StopNote(velocity float32, allowTail bool)

	// SetKeyDown updates the key-down flag.
	SetKeyDown(down bool)
}
