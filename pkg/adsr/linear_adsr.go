// Package adsr implements the attack/release gain envelope used by every
// sampler voice.
package adsr

// Stage is the current envelope stage.
type Stage int

const (
	// StageInactive means the envelope contributes no gain and is idle.
	StageInactive Stage = iota
	StageAttack
	StageRelease
)

const (
	minAttack  = 0.001
	maxAttack  = 10.0
	minRelease = 0.001
	maxRelease = 30.0
)

// Linear is a two-stage (attack, release) linear gain envelope. There is no
// distinct decay/sustain stage: the envelope holds at 1.0 after attack
// completes, until NoteOff is called.
type Linear struct {
	attack  float32
	release float32

	attackDelta  float32
	releaseDelta float32

	gain float32
	stage Stage

	sampleRate float32
}

// New creates a Linear envelope with the given attack/release times in
// seconds, clamped to [0.001, 10.0] and [0.001, 30.0] respectively, at a
// default sample rate of 44100 Hz (overwritten by the first Reset).
func New(attack, release float32) *Linear {
	l := &Linear{sampleRate: 44100.0}
	l.SetParameters(attack, release)
	return l
}

// IsActive reports whether the envelope is in the Attack or Release stage.
func (l *Linear) IsActive() bool {
	return l.stage != StageInactive
}

// Stage returns the current stage.
func (l *Linear) Stage() Stage {
	return l.stage
}

// NextSample advances the envelope by one frame and returns the new gain.
func (l *Linear) NextSample() float32 {
	switch l.stage {
	case StageAttack:
		l.gain += l.attackDelta
		if l.gain >= 1.0 {
			l.gain = 1.0
		}
	case StageRelease:
		l.gain -= l.releaseDelta
		if l.gain <= 0.0 {
			l.gain = 0.0
			l.stage = StageInactive
		}
	}
	return l.gain
}

// NoteOn triggers the attack stage, resetting gain to 0.
func (l *Linear) NoteOn() {
	l.gain = 0.0
	l.stage = StageAttack
}

// NoteOff triggers the release stage from whatever gain the envelope is
// currently at.
func (l *Linear) NoteOff() {
	l.stage = StageRelease
}

// SetParameters clamps and sets attack/release times, recomputing the
// per-sample deltas.
func (l *Linear) SetParameters(attack, release float32) {
	l.attack = clamp(attack, minAttack, maxAttack)
	l.release = clamp(release, minRelease, maxRelease)
	l.attackDelta = 1.0 / (l.attack * l.sampleRate)
	l.releaseDelta = 1.0 / (l.release * l.sampleRate)
}

// Reset clears envelope state and recomputes deltas for a new sample rate.
func (l *Linear) Reset(sampleRate float32) {
	l.gain = 0.0
	l.stage = StageInactive
	l.sampleRate = sampleRate
	l.SetParameters(l.attack, l.release)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
