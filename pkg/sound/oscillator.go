package sound

import "math"

// OscillatorSound is a sine-wave oscillator sound. It carries no
// note-independent state beyond the region it applies to and its ADSR
// times — frequency is note-dependent and lives on the voice.
type OscillatorSound struct {
	region MidiRegion
	adsr   AdsrTimes
}

// NewOscillatorSound creates an oscillator sound.
func NewOscillatorSound(region MidiRegion, adsr AdsrTimes) *OscillatorSound {
	return &OscillatorSound{region: region, adsr: adsr}
}

// AppliesTo implements Sound.
func (s *OscillatorSound) AppliesTo(note, velocity uint8) bool {
	return s.region.AppliesTo(note, velocity)
}

// AdsrTimes returns the sound's attack/release times.
func (s *OscillatorSound) AdsrTimes() AdsrTimes { return s.adsr }

// ValueAt returns sin(phase).
func (s *OscillatorSound) ValueAt(phase float64) float64 {
	return math.Sin(phase)
}
