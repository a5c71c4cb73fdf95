// Package sound provides the immutable, note-independent description of
// what a sampler voice plays: sampled PCM or an oscillator.
package sound

// Sound is the minimal capability a sampler needs from anything it can
// play: whether it applies to a given note/velocity. Concrete sound types
// carry the additional data (PCM buffer, root pitch, ...) their matching
// Voice type needs; the Sampler itself depends only on this interface.
type Sound interface {
	AppliesTo(note, velocity uint8) bool
}

// MidiRegion is the inclusive note/velocity range a sound applies to, plus
// the root pitch used for pitch shifting.
type MidiRegion struct {
	RootNote     uint8
	LowNote      uint8
	HighNote     uint8
	LowVelocity  uint8
	HighVelocity uint8
}

// AppliesTo reports whether note/velocity fall within the region.
func (r MidiRegion) AppliesTo(note, velocity uint8) bool {
	return r.LowNote <= note && note <= r.HighNote &&
		r.LowVelocity <= velocity && velocity <= r.HighVelocity
}

// AdsrTimes are the attack/release times (in seconds) a sound hands its
// voice. Decay/sustain are always zero: this core's envelope has no
// distinct decay/sustain stage (see pkg/adsr).
type AdsrTimes struct {
	Attack  float32
	Release float32
}
