package hal

import "go-simon/game"

// Board debounces the pads and exposes them with the analog bank as a
// game.Sampler. Sample and the Sampler methods run on the game loop only.
type Board struct {
	pads     *Pads
	analog   *AnalogBank
	debounce uint32

	buttons  [game.NumColors]game.ButtonState
	raw      [game.NumColors]bool
	rawSince [game.NumColors]uint32
}

// NewBoard debounces with a stability window of debounceMS
func NewBoard(pads *Pads, analog *AnalogBank, debounceMS uint32) *Board {
	return &Board{pads: pads, analog: analog, debounce: debounceMS}
}

// Sample reads every pad once. A level change is accepted after it has held
// for the debounce window; Previous always reflects the prior sample so an
// edge is visible for exactly one sample.
func (b *Board) Sample(now uint32) {
	for i := range b.buttons {
		level := b.pads.Level(i, now)
		if level != b.raw[i] {
			b.raw[i] = level
			b.rawSince[i] = now
		}

		btn := &b.buttons[i]
		btn.Previous = btn.Current
		if b.raw[i] != btn.Current && now-b.rawSince[i] >= b.debounce {
			btn.Current = b.raw[i]
			btn.Changed = now
		}
	}
}

// Button implements game.Sampler
func (b *Board) Button(i int) game.ButtonState {
	if i < 0 || i >= game.NumColors {
		return game.ButtonState{}
	}
	return b.buttons[i]
}

// Analog implements game.Sampler
func (b *Board) Analog(ch int) uint16 {
	return b.analog.Sample(ch)
}
