package sound

import (
	"fmt"
	"log/slog"
)

// SampledSound is an immutable, note-independent stereo-or-mono PCM sound.
// It is built once (typically by an external WAV/SFZ loader) and shared by
// reference across every voice that plays it; it is never mutated after
// construction.
type SampledSound struct {
	buffer         []float32
	channelCount   int
	sampleRate     float32
	durationFrames int
	region         MidiRegion
	adsr           AdsrTimes
}

// NewSampledSound constructs a SampledSound from an interleaved PCM buffer
// that already has one extra frame of silence appended for interpolation
// overhang (the loader's job, out of scope for this module). Returns an
// error if the invariant buffer.len() == (durationFrames+1)*channelCount
// does not hold, rather than panicking — this is the one loader-boundary
// check this module performs itself.
func NewSampledSound(buffer []float32, channelCount int, sampleRate float32, durationFrames int, region MidiRegion, adsr AdsrTimes) (*SampledSound, error) {
	if channelCount != 1 && channelCount != 2 {
		slog.Warn("rejected sampled sound", "reason", "unsupported channel count", "channel_count", channelCount)
		return nil, fmt.Errorf("sound: channel count must be 1 or 2, got %d", channelCount)
	}
	want := (durationFrames + 1) * channelCount
	if len(buffer) != want {
		slog.Warn("rejected sampled sound", "reason", "buffer length mismatch", "got", len(buffer), "want", want)
		return nil, fmt.Errorf("sound: buffer length %d does not match (durationFrames+1)*channelCount = %d", len(buffer), want)
	}
	return &SampledSound{
		buffer:         buffer,
		channelCount:   channelCount,
		sampleRate:     sampleRate,
		durationFrames: durationFrames,
		region:         region,
		adsr:           adsr,
	}, nil
}

// AppliesTo implements Sound.
func (s *SampledSound) AppliesTo(note, velocity uint8) bool {
	return s.region.AppliesTo(note, velocity)
}

// RootNote returns the MIDI region's root note.
func (s *SampledSound) RootNote() uint8 { return s.region.RootNote }

// SampleRate returns the sound's native sample rate in Hz.
func (s *SampledSound) SampleRate() float32 { return s.sampleRate }

// DurationFrames returns the sound's duration in frames (excluding the
// padding frame).
func (s *SampledSound) DurationFrames() int { return s.durationFrames }

// AdsrTimes returns the sound's attack/release times.
func (s *SampledSound) AdsrTimes() AdsrTimes { return s.adsr }

// SampleAt returns the (left, right) sample value at a fractional frame
// position via linear interpolation between floor(position) and
// floor(position)+1. Mono sounds mirror left into right.
func (s *SampledSound) SampleAt(position float32) (float32, float32) {
	index := int(position)
	alpha := position - float32(index)
	invAlpha := 1.0 - alpha

	i0 := index * s.channelCount
	i1 := (index + 1) * s.channelCount

	l := invAlpha*s.buffer[i0] + alpha*s.buffer[i1]
	if s.channelCount == 1 {
		return l, l
	}
	r := invAlpha*s.buffer[i0+1] + alpha*s.buffer[i1+1]
	return l, r
}
