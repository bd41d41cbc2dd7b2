package hal

import (
	"sync/atomic"

	"go-simon/game"
)

// Pads holds the raw level of each button before debouncing.
//
// Grid controllers report press and release, so they use Set. A terminal
// only reports key presses (repeated while held), so a Tap holds the pad
// down for tapHold and each repeat extends it.
type Pads struct {
	clock   game.Clock
	tapHold uint32
	held    [game.NumColors]atomic.Bool
	tapped  [game.NumColors]atomic.Uint64 // clock+1 of last tap, 0 = never
}

// NewPads builds pads whose taps last tapHoldMS milliseconds
func NewPads(clock game.Clock, tapHoldMS uint32) *Pads {
	return &Pads{clock: clock, tapHold: tapHoldMS}
}

// Set records an explicit press or release
func (p *Pads) Set(i int, down bool) {
	if i < 0 || i >= game.NumColors {
		return
	}
	p.held[i].Store(down)
}

// Tap records a momentary press at the current clock reading
func (p *Pads) Tap(i int) {
	if i < 0 || i >= game.NumColors {
		return
	}
	p.tapped[i].Store(uint64(p.clock.NowMS()) + 1)
}

// Level is the raw, undebounced state of pad i at now
func (p *Pads) Level(i int, now uint32) bool {
	if p.held[i].Load() {
		return true
	}
	t := p.tapped[i].Load()
	if t == 0 {
		return false
	}
	return now-uint32(t-1) < p.tapHold
}
