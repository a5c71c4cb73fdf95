package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMidiRegion_AppliesTo(t *testing.T) {
	region := MidiRegion{RootNote: 60, LowNote: 48, HighNote: 72, LowVelocity: 1, HighVelocity: 127}
	assert.True(t, region.AppliesTo(60, 100))
	assert.True(t, region.AppliesTo(48, 1))
	assert.True(t, region.AppliesTo(72, 127))
	assert.False(t, region.AppliesTo(47, 100))
	assert.False(t, region.AppliesTo(73, 100))
	assert.False(t, region.AppliesTo(60, 0))
}

func TestNewSampledSound_invariant(t *testing.T) {
	// duration 2 frames, stereo => buffer must be (2+1)*2 = 6 floats.
	buf := make([]float32, 6)
	_, err := NewSampledSound(buf, 2, 44100, 2, MidiRegion{}, AdsrTimes{})
	require.NoError(t, err)

	_, err = NewSampledSound(make([]float32, 5), 2, 44100, 2, MidiRegion{}, AdsrTimes{})
	assert.Error(t, err)

	_, err = NewSampledSound(buf, 3, 44100, 2, MidiRegion{}, AdsrTimes{})
	assert.Error(t, err)
}

// SampleAt(0.8) should be ≈ 0.2*SampleAt(0.0) + 0.8*SampleAt(1.0), and
// the final valid frame interpolates toward the padding zero-frame.
func TestSampledSound_linearInterpolation(t *testing.T) {
	// mono, duration 2 frames: samples [a, b, 0] with padding.
	buf := []float32{2.0, 6.0, 0.0}
	s, err := NewSampledSound(buf, 1, 1000, 2, MidiRegion{}, AdsrTimes{})
	require.NoError(t, err)

	l, r := s.SampleAt(0.8)
	assert.InDelta(t, 0.2*buf[0]+0.8*buf[1], l, 1e-6)
	assert.Equal(t, l, r)

	// Last valid frame interpolates toward the padding zero-frame.
	l, _ = s.SampleAt(1.5)
	assert.InDelta(t, 0.5*buf[1], l, 1e-6)
}

func TestSampledSound_monoMirrorsRight(t *testing.T) {
	buf := []float32{1.0, 1.0, 0.0}
	s, err := NewSampledSound(buf, 1, 1000, 2, MidiRegion{}, AdsrTimes{})
	require.NoError(t, err)
	l, r := s.SampleAt(0.0)
	assert.Equal(t, l, r)
}

func TestOscillatorSound_ValueAt(t *testing.T) {
	s := NewOscillatorSound(MidiRegion{LowNote: 0, HighNote: 127, LowVelocity: 0, HighVelocity: 127}, AdsrTimes{Attack: 0.01, Release: 0.01})
	assert.InDelta(t, 0.0, s.ValueAt(0), 1e-9)
	assert.True(t, s.AppliesTo(60, 100))
}
