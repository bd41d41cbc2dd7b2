package game

import "testing"

func TestCuePlayerRunsStepsInOrder(t *testing.T) {
	out := &recordingActuator{}
	p := NewCuePlayer(Cue{
		{Mask: Bit(Red), Tone: 440, Dur: 100},
		{Mask: MaskAll, Dur: 50},
	})

	p.Step(0, out)
	if out.mask != Bit(Red) || out.tone != 440 {
		t.Fatalf("step 1: mask=%b tone=%d", out.mask, out.tone)
	}
	p.Step(99, out)
	if out.mask != Bit(Red) {
		t.Fatalf("advanced before deadline")
	}
	p.Step(100, out)
	if out.mask != MaskAll || out.tone != 0 {
		t.Fatalf("step 2: mask=%b tone=%d", out.mask, out.tone)
	}
	p.Step(150, out)
	if !p.Done() || out.mask != 0 {
		t.Fatalf("cue not finished and cleared: done=%v mask=%b", p.Done(), out.mask)
	}
}

func TestNilAndEmptyCuesAreDone(t *testing.T) {
	var p *CuePlayer
	if !p.Done() {
		t.Fatalf("nil player not done")
	}
	p.Step(0, &recordingActuator{})
	if !NewCuePlayer(nil).Done() {
		t.Fatalf("empty cue not done")
	}
}

func TestCueLibraryShapes(t *testing.T) {
	if n := len(cueSweep()); n != 8 {
		t.Fatalf("sweep has %d steps, want 8", n)
	}
	if n := len(cueVictory()); n != 6 {
		t.Fatalf("victory has %d steps, want 6", n)
	}
	var total uint32
	for i, s := range cueDeath() {
		if s.Dur == 0 {
			t.Fatalf("death step %d has zero duration", i)
		}
		total += s.Dur
	}
	// 3 blinks of 300ms, then 10 brightness steps of 20 x 11ms
	if want := uint32(3*300 + 10*fadePulses*11); total != want {
		t.Fatalf("death cue lasts %dms, want %dms", total, want)
	}
	if got := join(cueSuccess, pause(0), pause(5)); len(got) != 2 {
		t.Fatalf("join = %d steps, want 2", len(got))
	}
}
