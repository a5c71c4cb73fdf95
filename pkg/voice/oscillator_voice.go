package voice

import (
	"math"

	"github.com/soakyaudio/go-sampler-core/pkg/adsr"
	"github.com/soakyaudio/go-sampler-core/pkg/sound"
)

const twoPi = 2.0 * math.Pi

// OscillatorVoice renders a sine oscillator at the note's equal-tempered
// frequency, gated by a Linear ADSR. Grounded on
// original_source/src/processing/sampler/oscillator_voice.rs, generalized
// to carry an ADSR (the original oscillator voice has none; this core
// gives every voice an envelope.
type OscillatorVoice struct {
	adsr *adsr.Linear

	snd   *sound.OscillatorSound
	note  uint8
	bound bool

	keyDown  bool
	priority uint64

	gain           float32
	phase          float64
	phaseIncrement float64
	sampleRate     float32
}

// NewOscillatorVoice creates an unbound oscillator voice.
func NewOscillatorVoice() *OscillatorVoice {
	return &OscillatorVoice{
		adsr:       adsr.New(0.03, 0.1),
		sampleRate: 44100.0,
	}
}

func (v *OscillatorVoice) ActiveNote() (uint8, bool) { return v.note, v.bound }

func (v *OscillatorVoice) Priority() uint64 { return v.priority }

func (v *OscillatorVoice) IsKeyDown() bool { return v.keyDown }

func (v *OscillatorVoice) IsPlaying() bool { return v.bound }

func (v *OscillatorVoice) SetKeyDown(down bool) { v.keyDown = down }

func (v *OscillatorVoice) Reset(sampleRate float32, _ int) {
	v.bound = false
	v.snd = nil
	v.adsr.Reset(sampleRate)
	v.sampleRate = sampleRate
}

func (v *OscillatorVoice) StartNote(note uint8, velocity float32, s *sound.OscillatorSound, priority uint64) {
	times := s.AdsrTimes()
	v.adsr.SetParameters(times.Attack, times.Release)
	v.adsr.NoteOn()

	frequency := 440.0 * math.Pow(2.0, (float64(note)-69.0)/12.0)
	v.phaseIncrement = twoPi * frequency / float64(v.sampleRate)
	v.gain = velocity / 4.0
	v.phase = 0.0
	v.snd = s
	v.note = note
	v.bound = true
	v.priority = priority
}

func (v *OscillatorVoice) StopNote(_ float32, allowTail bool) {
	if allowTail {
		v.adsr.NoteOff()
		return
	}
	v.bound = false
	v.snd = nil
}

func (v *OscillatorVoice) Render(buffer []float32) {
	if !v.bound {
		return
	}
	for i := 0; i+1 < len(buffer); i += 2 {
		env := v.adsr.NextSample()
		sample := float32(v.snd.ValueAt(v.phase)) * env * v.gain
		buffer[i] += sample
		buffer[i+1] += sample
		v.phase += v.phaseIncrement
		for v.phase >= twoPi {
			v.phase -= twoPi
		}

		if !v.adsr.IsActive() {
			v.StopNote(0, false)
			break
		}
	}
}
