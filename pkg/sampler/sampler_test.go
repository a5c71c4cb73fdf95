package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soakyaudio/go-sampler-core/pkg/config"
	"github.com/soakyaudio/go-sampler-core/pkg/midi"
	"github.com/soakyaudio/go-sampler-core/pkg/sound"
	"github.com/soakyaudio/go-sampler-core/pkg/voice"
)

func newMonoSound(t *testing.T, root uint8) *sound.SampledSound {
	t.Helper()
	buf := []float32{1.0, 1.0, 0.0}
	region := sound.MidiRegion{RootNote: root, LowNote: 0, HighNote: 127, LowVelocity: 0, HighVelocity: 127}
	s, err := sound.NewSampledSound(buf, 1, 1000, 2, region, sound.AdsrTimes{Attack: 0.001, Release: 0.1})
	require.NoError(t, err)
	return s
}

func newSampler(t *testing.T, voiceCount int) *Sampler[*sound.SampledSound, *voice.SampledVoice] {
	t.Helper()
	s := New[*sound.SampledSound, *voice.SampledVoice]()
	for i := 0; i < voiceCount; i++ {
		s.AddVoice(voice.NewSampledVoice())
	}
	s.Reset(1000, config.DefaultMaxBufferSize)
	return s
}

func TestNewWithDefaultVoices_usesConfiguredPolyphony(t *testing.T) {
	s := NewWithDefaultVoices[*sound.SampledSound](voice.NewSampledVoice)
	assert.Len(t, s.voices, config.DefaultVoiceCount)
}

func countPlaying(s *Sampler[*sound.SampledSound, *voice.SampledVoice]) int {
	n := 0
	for _, v := range s.voices {
		if v.IsPlaying() {
			n++
		}
	}
	return n
}

func TestNoteOn_allocatesOneVoicePerMatchingSound(t *testing.T) {
	s := newSampler(t, 4)
	s.AddSound(newMonoSound(t, 60))
	s.AddSound(newMonoSound(t, 72))

	s.noteOn(60, 100)
	assert.Equal(t, 2, countPlaying(s))
}

func TestNoteOn_stealsLowestPriorityWhenFull(t *testing.T) {
	s := newSampler(t, 1)
	s.AddSound(newMonoSound(t, 60))

	s.noteOn(60, 100)
	firstPriority := s.voices[0].Priority()
	s.noteOn(61, 100)
	assert.Greater(t, s.voices[0].Priority(), firstPriority)
	note, _ := s.voices[0].ActiveNote()
	assert.Equal(t, uint8(61), note)
}

func TestNoteOn_retriggerHardStopsSameNote(t *testing.T) {
	s := newSampler(t, 2)
	s.AddSound(newMonoSound(t, 60))

	s.noteOn(60, 100)
	p1 := s.voices[0].Priority()
	s.noteOn(60, 100)
	// Exactly one voice should be playing note 60 afterward, with a fresh priority.
	assert.Equal(t, 1, countPlaying(s))
	assert.NotEqual(t, p1, s.voices[0].Priority())
}

func TestNoteOff_withoutSustainStopsVoice(t *testing.T) {
	s := newSampler(t, 2)
	s.AddSound(newMonoSound(t, 60))
	s.noteOn(60, 100)
	s.noteOff(60, 0)
	assert.False(t, s.voices[0].IsKeyDown())
}

func TestNoteOff_withSustainHoldsVoice(t *testing.T) {
	s := newSampler(t, 2)
	s.AddSound(newMonoSound(t, 60))
	s.sustainPedal(true)
	s.noteOn(60, 100)
	s.noteOff(60, 0)
	assert.True(t, s.voices[0].IsPlaying())
	assert.False(t, s.voices[0].IsKeyDown())
}

func TestSustainPedalRelease_stopsHeldNotKeyDownVoices(t *testing.T) {
	s := newSampler(t, 2)
	s.AddSound(newMonoSound(t, 60))
	s.sustainPedal(true)
	s.noteOn(60, 100)
	s.noteOff(60, 0)
	assert.True(t, s.voices[0].IsPlaying())

	s.sustainPedal(false)
	// StopNote(allowTail=true) triggers adsr release, not an instant stop;
	// the voice should start its release tail rather than remain key-down.
	assert.False(t, s.voices[0].IsKeyDown())
}

func TestAllNotesOff_stopsEveryVoice(t *testing.T) {
	s := newSampler(t, 2)
	s.AddSound(newMonoSound(t, 60))
	s.AddSound(newMonoSound(t, 72))
	s.noteOn(60, 100)
	s.noteOn(72, 100)
	s.allNotesOff()
	for _, v := range s.voices {
		// release started, not necessarily instantly unbound
		assert.False(t, v.IsKeyDown())
	}
}

func TestHandleMidiMessage_noteOnZeroVelocityIsNoteOff(t *testing.T) {
	s := newSampler(t, 2)
	s.AddSound(newMonoSound(t, 60))
	s.HandleMidiMessage(midi.NoteOn(0, 60, 100))
	assert.True(t, s.voices[0].IsKeyDown())
	s.HandleMidiMessage(midi.NoteOn(0, 60, 0))
	assert.False(t, s.voices[0].IsKeyDown())
}

func TestHandleMidiMessage_sustainAndAllNotesOffControllers(t *testing.T) {
	s := newSampler(t, 2)
	s.AddSound(newMonoSound(t, 60))
	s.HandleMidiMessage(midi.ControlChange(0, midi.ControllerSustainPedal, 127))
	assert.True(t, s.sustainPedalPressed)
	s.HandleMidiMessage(midi.ControlChange(0, midi.ControllerSustainPedal, 0))
	assert.False(t, s.sustainPedalPressed)

	s.HandleMidiMessage(midi.NoteOn(0, 60, 100))
	s.HandleMidiMessage(midi.ControlChange(0, midi.ControllerAllNotesOff, 0))
	assert.False(t, s.voices[0].IsKeyDown())
}

func TestProcess_monoMixdown(t *testing.T) {
	s := newSampler(t, 2)
	s.SetChannelLayout(0, 1)
	s.AddSound(newMonoSound(t, 60))
	s.noteOn(60, 127)

	out := make([]float32, 4)
	s.Process(out)
	assert.Greater(t, out[0], float32(0))
}

func TestProcess_stereoPolyphony(t *testing.T) {
	s := newSampler(t, 2)
	s.SetChannelLayout(0, 2)
	s.AddSound(newMonoSound(t, 60))
	s.AddSound(newMonoSound(t, 72))
	s.noteOn(60, 127)
	s.noteOn(72, 127)

	out := make([]float32, 8) // 4 stereo frames
	s.Process(out)
	assert.Greater(t, out[0], float32(0))
	assert.Equal(t, out[0], out[1]) // mono sounds mirror L into R
}

func TestProcess_zeroesOutputBufferEachCall(t *testing.T) {
	s := newSampler(t, 1)
	s.SetChannelLayout(0, 2)
	out := []float32{1, 1, 1, 1}
	s.Process(out)
	for _, v := range out {
		assert.Equal(t, float32(0), v)
	}
}

func TestGetSetListParameters_areNoOps(t *testing.T) {
	s := newSampler(t, 1)
	assert.Empty(t, s.ListParameters())
	_, ok := s.GetParameter(0)
	assert.False(t, ok)
}
