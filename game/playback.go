package game

// LightPhase is which half of an entry the scheduler fires next
type LightPhase uint8

const (
	LightOn LightPhase = iota
	LightOff
)

// Playback shows a pattern through the actuator without blocking.
// Each entry is an ON slot of OnDuration followed by an OFF slot of
// OffDuration; the cursor advances when the OFF slot begins.
type Playback struct {
	pattern    []Color
	difficulty int
	cursor     int
	phase      LightPhase
	deadline   uint32
}

// NewPlayback arms a playback that fires on the first Step at or after now
func NewPlayback(pattern []Color, difficulty int, now uint32) *Playback {
	return &Playback{
		pattern:    pattern,
		difficulty: ClampDifficulty(difficulty),
		phase:      LightOn,
		deadline:   now,
	}
}

// Cursor is the index of the entry being shown
func (p *Playback) Cursor() int {
	return p.cursor
}

// Phase is the slot that fires at the next deadline
func (p *Playback) Phase() LightPhase {
	return p.phase
}

// Deadline is the clock reading of the next slot change
func (p *Playback) Deadline() uint32 {
	return p.deadline
}

// Done reports that every entry has been shown and cleared
func (p *Playback) Done() bool {
	return p.cursor >= len(p.pattern)
}

// Step fires at most one slot change if the deadline has passed.
// It reports whether anything was sent to the actuator.
func (p *Playback) Step(now uint32, out Actuator) bool {
	if p.Done() || !After(now, p.deadline) {
		return false
	}

	switch p.phase {
	case LightOn:
		c := p.pattern[p.cursor]
		out.SetColors(Bit(c))
		out.PlayTone(ToneFor(c))
		p.deadline = now + OnDuration(p.difficulty)
		p.phase = LightOff
	case LightOff:
		out.SetColors(0)
		out.StopTone()
		p.deadline = now + OffDuration(p.difficulty)
		p.phase = LightOn
		p.cursor++
	}
	return true
}
