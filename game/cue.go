package game

// CueStep holds a light mask and tone for Dur milliseconds
type CueStep struct {
	Mask Mask
	Tone Tone
	Dur  uint32
}

// Cue is a short fixed light/tone sequence: beeps, sweeps, fanfares
type Cue []CueStep

// CuePlayer runs a Cue against the clock, one step change per call
type CuePlayer struct {
	cue      Cue
	next     int
	deadline uint32
	started  bool
	done     bool
}

// NewCuePlayer arms cue to start on the first Step
func NewCuePlayer(cue Cue) *CuePlayer {
	return &CuePlayer{cue: cue, done: len(cue) == 0}
}

// Done reports that the last step has elapsed and the outputs are cleared
func (p *CuePlayer) Done() bool {
	return p == nil || p.done
}

// Step advances the cue if its deadline has passed
func (p *CuePlayer) Step(now uint32, out Actuator) {
	if p.Done() {
		return
	}
	if p.started && !After(now, p.deadline) {
		return
	}
	p.started = true

	if p.next >= len(p.cue) {
		out.SetColors(0)
		out.StopTone()
		p.done = true
		return
	}

	s := p.cue[p.next]
	out.SetColors(s.Mask)
	if s.Tone != 0 {
		out.PlayTone(s.Tone)
	} else {
		out.StopTone()
	}
	p.deadline = now + s.Dur
	p.next++
}

// Cue library

func beep(t Tone, dur uint32) Cue {
	return Cue{{Tone: t, Dur: dur}}
}

func pause(dur uint32) Cue {
	if dur == 0 {
		return nil
	}
	return Cue{{Dur: dur}}
}

var (
	cueBoot    = beep(800, 100)
	cueSuccess = beep(1200, 80)
	cueFail    = beep(300, 150)
)

// cueSweep runs the pads up and back down, lit with their tones
func cueSweep() Cue {
	var c Cue
	order := []Color{Blue, Red, Yellow, Green, Yellow, Red, Blue}
	for _, col := range order {
		c = append(c, CueStep{Mask: Bit(col), Tone: ToneFor(col), Dur: 150})
	}
	return append(c, CueStep{Dur: 200})
}

// cueVictory plays C5 E5 G5
func cueVictory() Cue {
	var c Cue
	for _, t := range []Tone{523, 659, 784} {
		c = append(c, CueStep{Mask: MaskAll, Tone: t, Dur: 150}, CueStep{Dur: 50})
	}
	return c
}

// fadePulses is how many duty cycles each fade brightness is held for
const fadePulses = 20

// cueDeath blinks all pads three times then fades out by shrinking the
// on share of an 11ms duty cycle
func cueDeath() Cue {
	var c Cue
	for i := 0; i < 3; i++ {
		c = append(c, CueStep{Mask: MaskAll, Dur: 150}, CueStep{Dur: 150})
	}
	for bright := uint32(10); bright > 0; bright-- {
		for pulse := 0; pulse < fadePulses; pulse++ {
			c = append(c, CueStep{Mask: MaskAll, Dur: bright}, CueStep{Dur: 11 - bright})
		}
	}
	return c
}

func join(cues ...Cue) Cue {
	var out Cue
	for _, c := range cues {
		out = append(out, c...)
	}
	return out
}
