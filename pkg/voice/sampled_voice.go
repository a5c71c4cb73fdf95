package voice

import (
	"math"

	"github.com/soakyaudio/go-sampler-core/pkg/adsr"
	"github.com/soakyaudio/go-sampler-core/pkg/sound"
)

// SampledVoice renders linearly-interpolated pitch-shifted playback of a
// *sound.SampledSound, gated by a Linear ADSR. Grounded on
// original_source/src/processing/sampler/audio_file_voice.rs.
type SampledVoice struct {
	adsr *adsr.Linear

	sound *sound.SampledSound
	note  uint8
	bound bool

	keyDown  bool
	priority uint64

	gain              float32
	position          float32
	positionIncrement float32
	sampleRate        float32
}

// NewSampledVoice creates an unbound sampled voice.
func NewSampledVoice() *SampledVoice {
	return &SampledVoice{
		adsr:       adsr.New(0.03, 0.1),
		sampleRate: 44100.0,
	}
}

func (v *SampledVoice) ActiveNote() (uint8, bool) {
	return v.note, v.bound
}

func (v *SampledVoice) Priority() uint64 { return v.priority }

func (v *SampledVoice) IsKeyDown() bool { return v.keyDown }

func (v *SampledVoice) IsPlaying() bool { return v.bound }

func (v *SampledVoice) SetKeyDown(down bool) { v.keyDown = down }

func (v *SampledVoice) Reset(sampleRate float32, _ int) {
	v.bound = false
	v.sound = nil
	v.adsr.Reset(sampleRate)
	v.sampleRate = sampleRate
}

func (v *SampledVoice) StartNote(note uint8, velocity float32, s *sound.SampledSound, priority uint64) {
	times := s.AdsrTimes()
	v.adsr.SetParameters(times.Attack, times.Release)
	v.adsr.NoteOn()

	v.positionIncrement = float32(math.Pow(2.0, float64(float32(note)-float32(s.RootNote()))/12.0)) * (s.SampleRate() / v.sampleRate)
	v.gain = velocity / 4.0
	v.position = 0.0
	v.sound = s
	v.note = note
	v.bound = true
	v.priority = priority
}

func (v *SampledVoice) StopNote(_ float32, allowTail bool) {
	if allowTail {
		v.adsr.NoteOff()
		return
	}
	v.bound = false
	v.sound = nil
}

// Render additively mixes into an interleaved stereo buffer, stopping (and
// unbinding) the voice the instant playback runs past the sound's duration
// or the envelope decays to inactive.
func (v *SampledVoice) Render(buffer []float32) {
	if !v.bound {
		return
	}
	s := v.sound
	for i := 0; i+1 < len(buffer); i += 2 {
		env := v.adsr.NextSample()
		l, r := s.SampleAt(v.position)
		buffer[i] += l * env * v.gain
		buffer[i+1] += r * env * v.gain
		v.position += v.positionIncrement

		if v.position > float32(s.DurationFrames()) || !v.adsr.IsActive() {
			v.StopNote(0, false)
			break
		}
	}
}
