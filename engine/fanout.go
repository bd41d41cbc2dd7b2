package engine

import "go-simon/game"

// Fanout mirrors every output call to several actuators, e.g. the
// Launchpad lights and the terminal panel.
type Fanout []game.Actuator

func (f Fanout) SetColors(m game.Mask) {
	for _, a := range f {
		a.SetColors(m)
	}
}

func (f Fanout) PlayTone(t game.Tone) {
	for _, a := range f {
		a.PlayTone(t)
	}
}

func (f Fanout) StopTone() {
	for _, a := range f {
		a.StopTone()
	}
}
