package game

import (
	"testing"
	"time"
)

type manualClock struct {
	now uint32
}

func (c *manualClock) NowMS() uint32 { return c.now }

func (c *manualClock) advance(d uint32) { c.now += d }

type scriptedInput struct {
	buttons [NumColors]ButtonState
	analog  [NumChannels]uint16
}

func (in *scriptedInput) Button(i int) ButtonState { return in.buttons[i] }
func (in *scriptedInput) Analog(ch int) uint16     { return in.analog[ch] }

func (in *scriptedInput) idle() {
	for i := range in.buttons {
		in.buttons[i] = ButtonState{}
	}
}

type recordingActuator struct {
	mask  Mask
	tone  Tone
	calls int
}

func (a *recordingActuator) SetColors(m Mask) { a.mask = m; a.calls++ }
func (a *recordingActuator) PlayTone(t Tone)  { a.tone = t; a.calls++ }
func (a *recordingActuator) StopTone()        { a.tone = 0; a.calls++ }

type recordingDisplay struct {
	shown  []Snapshot
	onShow func(Snapshot)
}

func (d *recordingDisplay) Show(s Snapshot) {
	d.shown = append(d.shown, s)
	if d.onShow != nil {
		d.onShow(s)
	}
}

type rig struct {
	t       *testing.T
	clock   *manualClock
	in      *scriptedInput
	out     *recordingActuator
	display *recordingDisplay
	m       *Machine
}

// quietRules removes pauses and cues so transitions happen tick by tick
func quietRules() Rules {
	return Rules{
		MaxLevel:     9,
		LongPress:    2 * time.Second,
		RecoverPause: time.Second,
	}
}

func newRig(t *testing.T, rules Rules) *rig {
	t.Helper()
	r := &rig{
		t:       t,
		clock:   &manualClock{now: 1000},
		in:      &scriptedInput{},
		out:     &recordingActuator{},
		display: &recordingDisplay{},
	}
	r.m = New(Deps{
		Clock:     r.clock,
		Input:     r.in,
		Out:       r.out,
		Display:   r.display,
		Rules:     rules,
		Generator: NewGenerator(42),
	})
	return r
}

// runUntil ticks with 10ms steps until phase p is reached
func (r *rig) runUntil(p Phase) {
	r.t.Helper()
	for i := 0; i < 5000; i++ {
		if r.m.Phase() == p {
			return
		}
		r.clock.advance(10)
		r.m.Tick()
	}
	r.t.Fatalf("never reached %s, stuck in %s", p, r.m.Phase())
}

// press delivers one rising edge on button i for a single tick
func (r *rig) press(i int) {
	r.t.Helper()
	r.in.buttons[i] = ButtonState{Current: true, Changed: r.clock.now}
	r.m.Tick()
	r.in.idle()
	r.clock.advance(10)
	r.m.Tick()
}

// lockDifficulty holds button 0 long enough to leave DIFFICULTY_SELECT
func (r *rig) lockDifficulty() {
	r.t.Helper()
	r.runUntil(PhaseDifficultySelect)
	r.in.buttons[0] = ButtonState{Current: true, Previous: true, Changed: r.clock.now}
	r.clock.advance(2000)
	r.m.Tick()
	r.in.idle()
	if r.m.Phase() != PhaseLevelIntro {
		r.t.Fatalf("phase after long press = %s, want LEVEL_INTRO", r.m.Phase())
	}
}

// playRound forces pattern, waits for recall and presses keys
func (r *rig) playRound(pattern []Color, keys []int) {
	r.t.Helper()
	r.runUntil(PhaseLevelIntro)
	r.m.s.Pattern = pattern
	r.runUntil(PhaseInputWait)
	for _, k := range keys {
		r.press(k)
	}
	if r.m.Phase() == PhaseInputWait {
		r.m.Tick()
	}
	if r.m.Phase() != PhaseResultProcess {
		r.t.Fatalf("phase after recall = %s, want RESULT_PROCESS", r.m.Phase())
	}
}
