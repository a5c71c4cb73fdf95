package sampler

import (
	"github.com/soakyaudio/go-sampler-core/pkg/config"
	"github.com/soakyaudio/go-sampler-core/pkg/midi"
	"github.com/soakyaudio/go-sampler-core/pkg/param"
	"github.com/soakyaudio/go-sampler-core/pkg/sound"
	"github.com/soakyaudio/go-sampler-core/pkg/voice"
)

// Sampler is the polyphonic instrument processor. It is generic over a
// Sound type and the Voice type that plays it, mirroring the original
// Rust Sampler<Sound, Voice> generic pair
// (original_source/src/processing/sampler.rs): the Sampler's own logic
// depends only on the sound.Sound / voice.Voice[S] capability sets, never
// on a concrete sound or voice implementation.
//
// This core exposes no tunable parameters: ListParameters is empty and
// GetParameter/SetParameter are no-ops.
type Sampler[S sound.Sound, V voice.Voice[S]] struct {
	sounds []S
	voices []V

	sustainPedalPressed bool
	nextVoicePriority   uint64

	channelCount int
	scratch      []float32
}

// New creates an empty Sampler. Sounds and voices are added with AddSound
// and AddVoice before the first Reset.
func New[S sound.Sound, V voice.Voice[S]]() *Sampler[S, V] {
	return &Sampler[S, V]{channelCount: 2}
}

// NewWithDefaultVoices creates a Sampler pre-populated with
// config.DefaultVoiceCount voices built by newVoice, the starting
// polyphony a sound loader should give a Sampler absent an explicit voice
// count.
func NewWithDefaultVoices[S sound.Sound, V voice.Voice[S]](newVoice func() V) *Sampler[S, V] {
	s := New[S, V]()
	for i := 0; i < config.DefaultVoiceCount; i++ {
		s.AddVoice(newVoice())
	}
	return s
}

// AddSound registers a sound the sampler can play.
func (s *Sampler[S, V]) AddSound(sound S) {
	s.sounds = append(s.sounds, sound)
}

// AddVoice adds a voice to the fixed-capacity pool.
func (s *Sampler[S, V]) AddVoice(v V) {
	s.voices = append(s.voices, v)
}

// GetParameter implements AudioProcessor; this core has no parameters.
func (s *Sampler[S, V]) GetParameter(param.ID) (param.Value, bool) {
	return param.Value{}, false
}

// ListParameters implements AudioProcessor; this core has no parameters.
func (s *Sampler[S, V]) ListParameters() []param.Parameter {
	return nil
}

// SetParameter implements AudioProcessor; this core has no parameters.
func (s *Sampler[S, V]) SetParameter(param.ID, param.Value) {}

// SetChannelLayout stores the negotiated output channel count.
func (s *Sampler[S, V]) SetChannelLayout(_ int, outputChannels int) {
	s.channelCount = outputChannels
}

// Reset allocates the scratch stereo buffer (2*maxBufferSize floats) and
// forwards reset to every voice. Must complete before the first Process
// call on the audio thread; the scratch buffer is the only allocation on
// the sampler's rendering path and it happens here, never in Process.
func (s *Sampler[S, V]) Reset(sampleRate float32, maxBufferSize int) {
	s.scratch = make([]float32, 2*maxBufferSize)
	for _, v := range s.voices {
		v.Reset(sampleRate, maxBufferSize)
	}
}

// HandleMidiMessage implements MidiReceiver. NoteOn velocity 0 is treated
// as NoteOff (running-status convention); CC 0x40 toggles the sustain
// pedal; CC 0x7B stops every voice; everything else is ignored.
func (s *Sampler[S, V]) HandleMidiMessage(message midi.Message) {
	switch message.Kind {
	case midi.KindNoteOn:
		if message.Velocity() == 0 {
			s.noteOff(message.Note(), 0)
		} else {
			s.noteOn(message.Note(), message.Velocity())
		}
	case midi.KindNoteOff:
		s.noteOff(message.Note(), message.Velocity())
	case midi.KindControlChange:
		switch message.Controller() {
		case midi.ControllerSustainPedal:
			s.sustainPedal(message.Value() >= 64)
		case midi.ControllerAllNotesOff:
			s.allNotesOff()
		}
	}
}

// noteOn hard-stops any voice already on this note, then allocates one
// voice per matching sound.
func (s *Sampler[S, V]) noteOn(note, velocity uint8) {
	if len(s.sounds) == 0 || len(s.voices) == 0 {
		return
	}

	// Hard-stop any voice already playing this exact note, preventing
	// retrigger doubling and sustain-pedal overlap of identical pitches.
	for _, v := range s.voices {
		if n, ok := v.ActiveNote(); ok && n == note {
			v.StopNote(0, false)
		}
	}

	for _, snd := range s.sounds {
		if !snd.AppliesTo(note, velocity) {
			continue
		}
		target := s.allocateVoice()
		if target < 0 {
			continue
		}
		s.voices[target].StartNote(note, float32(velocity)/127.0, snd, s.nextVoicePriority)
		s.voices[target].SetKeyDown(true)
		s.nextVoicePriority++
	}
}

// allocateVoice prefers any free voice; otherwise steals the voice with the
// lowest priority (oldest), breaking ties by lowest pool index.
func (s *Sampler[S, V]) allocateVoice() int {
	for i, v := range s.voices {
		if !v.IsPlaying() {
			return i
		}
	}

	victim := -1
	var lowest uint64
	for i, v := range s.voices {
		p := v.Priority()
		if victim < 0 || p < lowest {
			victim = i
			lowest = p
		}
	}
	return victim
}

// noteOff releases key-down and, unless the sustain pedal is held, starts
// the tail on every voice currently playing this note.
func (s *Sampler[S, V]) noteOff(note, velocity uint8) {
	for _, v := range s.voices {
		if n, ok := v.ActiveNote(); !ok || n != note {
			continue
		}
		v.SetKeyDown(false)
		if !s.sustainPedalPressed {
			v.StopNote(float32(velocity)/127.0, true)
		}
	}
}

// sustainPedal tracks pedal state; on release it starts the tail on every
// voice that is still sounding but no longer key-down.
func (s *Sampler[S, V]) sustainPedal(pressed bool) {
	s.sustainPedalPressed = pressed
	if pressed {
		return
	}
	for _, v := range s.voices {
		if v.IsPlaying() && !v.IsKeyDown() {
			v.StopNote(0, true)
		}
	}
}

// allNotesOff clears key-down and starts the tail on every voice,
// regardless of key-down or sustain state.
func (s *Sampler[S, V]) allNotesOff() {
	for _, v := range s.voices {
		v.SetKeyDown(false)
		v.StopNote(0, true)
	}
}

// Process implements AudioProcessor: clears the scratch buffer, renders
// every voice additively into it, then mixes down into the output buffer
// per the negotiated channel count.
func (s *Sampler[S, V]) Process(outBuffer []float32) {
	channelCount := s.channelCount
	if channelCount < 1 {
		channelCount = 1
	}
	frameCount := len(outBuffer) / channelCount

	// Zero the full output buffer up front so channels beyond the stereo
	// mixdown (3+) never retain stale host-buffer contents.
	for i := range outBuffer {
		outBuffer[i] = 0
	}

	// Never allocate here: frames beyond the scratch size set by Reset are
	// left silent.
	if 2*frameCount > len(s.scratch) {
		frameCount = len(s.scratch) / 2
	}
	need := 2 * frameCount
	scratch := s.scratch[:need]
	for i := range scratch {
		scratch[i] = 0
	}

	for _, v := range s.voices {
		v.Render(scratch)
	}

	for frame := 0; frame < frameCount; frame++ {
		l, r := scratch[2*frame], scratch[2*frame+1]
		out := outBuffer[frame*channelCount:]
		if channelCount == 1 {
			out[0] = 0.5 * (l + r)
		} else {
			out[0] = l
			out[1] = r
		}
	}
}
