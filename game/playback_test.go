package game

import "testing"

func TestPlaybackSchedule(t *testing.T) {
	out := &recordingActuator{}
	p := NewPlayback([]Color{Yellow, Blue}, 3, 100)

	steps := []struct {
		now      uint32
		fired    bool
		mask     Mask
		tone     Tone
		cursor   int
		deadline uint32
	}{
		{now: 100, fired: true, mask: Bit(Yellow), tone: ToneFor(Yellow), cursor: 0, deadline: 400},
		{now: 399, fired: false, mask: Bit(Yellow), tone: ToneFor(Yellow), cursor: 0, deadline: 400},
		{now: 400, fired: true, mask: 0, tone: 0, cursor: 1, deadline: 550},
		{now: 560, fired: true, mask: Bit(Blue), tone: ToneFor(Blue), cursor: 1, deadline: 860},
		{now: 860, fired: true, mask: 0, tone: 0, cursor: 2, deadline: 1010},
		{now: 5000, fired: false, mask: 0, tone: 0, cursor: 2, deadline: 1010},
	}
	for i, s := range steps {
		if got := p.Step(s.now, out); got != s.fired {
			t.Fatalf("step %d: fired = %v, want %v", i, got, s.fired)
		}
		if out.mask != s.mask || out.tone != s.tone {
			t.Fatalf("step %d: mask=%b tone=%d, want mask=%b tone=%d", i, out.mask, out.tone, s.mask, s.tone)
		}
		if p.Cursor() != s.cursor || p.Deadline() != s.deadline {
			t.Fatalf("step %d: cursor=%d deadline=%d, want %d/%d", i, p.Cursor(), p.Deadline(), s.cursor, s.deadline)
		}
	}
	if !p.Done() {
		t.Fatalf("playback not done after every entry")
	}
}

func TestPlaybackStartsInOnPhase(t *testing.T) {
	p := NewPlayback([]Color{Red}, 9, 0)
	if p.Phase() != LightOn || p.Cursor() != 0 || p.Done() {
		t.Fatalf("fresh playback: phase=%d cursor=%d done=%v", p.Phase(), p.Cursor(), p.Done())
	}
	p.Step(0, &recordingActuator{})
	if p.Phase() != LightOff || p.Deadline() != OnDuration(5) {
		t.Fatalf("after ON: phase=%d deadline=%d", p.Phase(), p.Deadline())
	}
}
