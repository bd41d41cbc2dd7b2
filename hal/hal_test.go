package hal

import (
	"testing"

	"go-simon/game"
)

type fixedClock struct{ now uint32 }

func (c *fixedClock) NowMS() uint32 { return c.now }

type constSource uint16

func (s constSource) Read() uint16 { return uint16(s) }

func TestBoardDebouncesPress(t *testing.T) {
	clock := &fixedClock{}
	pads := NewPads(clock, 150)
	b := NewBoard(pads, NewAnalogBank(), 50)

	pads.Set(1, true)
	b.Sample(0)
	if b.Button(1).Current {
		t.Fatalf("press accepted before debounce window")
	}
	b.Sample(49)
	if b.Button(1).Current {
		t.Fatalf("press accepted at 49ms")
	}
	b.Sample(50)
	btn := b.Button(1)
	if !btn.Rising() || btn.Changed != 50 {
		t.Fatalf("expected rising edge at 50ms, got %+v", btn)
	}
	b.Sample(51)
	if b.Button(1).Rising() {
		t.Fatalf("edge visible for more than one sample")
	}
	if !b.Button(1).Current {
		t.Fatalf("press lost while held")
	}
}

func TestBoardIgnoresBounce(t *testing.T) {
	clock := &fixedClock{}
	pads := NewPads(clock, 150)
	b := NewBoard(pads, NewAnalogBank(), 50)

	for now := uint32(0); now < 40; now += 5 {
		pads.Set(0, now%10 == 0)
		b.Sample(now)
		if b.Button(0).Current {
			t.Fatalf("bouncing input accepted at %dms", now)
		}
	}
}

func TestTapHoldsAndRepeatsExtend(t *testing.T) {
	clock := &fixedClock{now: 100}
	pads := NewPads(clock, 150)

	if pads.Level(2, 100) {
		t.Fatalf("untapped pad reads pressed")
	}
	pads.Tap(2)
	if !pads.Level(2, 100) || !pads.Level(2, 249) {
		t.Fatalf("tap not held for its window")
	}
	if pads.Level(2, 250) {
		t.Fatalf("tap held past its window")
	}

	clock.now = 200
	pads.Tap(2)
	if !pads.Level(2, 340) {
		t.Fatalf("repeat did not extend the hold")
	}
}

func TestTapProducesOneEdge(t *testing.T) {
	clock := &fixedClock{}
	pads := NewPads(clock, 150)
	b := NewBoard(pads, NewAnalogBank(), 20)

	pads.Tap(3)
	edges := 0
	for now := uint32(0); now < 400; now++ {
		b.Sample(now)
		if b.Button(3).Rising() {
			edges++
		}
	}
	if edges != 1 {
		t.Fatalf("tap produced %d edges, want 1", edges)
	}
	if b.Button(3).Current {
		t.Fatalf("pad still down after tap expired")
	}
}

func TestOutOfRangeButtons(t *testing.T) {
	pads := NewPads(&fixedClock{}, 150)
	pads.Set(-1, true)
	pads.Tap(game.NumColors)
	b := NewBoard(pads, NewAnalogBank(), 0)
	if b.Button(7) != (game.ButtonState{}) {
		t.Fatalf("out of range button not zero")
	}
}

func TestAnalogBankRoundRobin(t *testing.T) {
	bank := NewAnalogBank(constSource(10), constSource(2000), constSource(30))

	bank.Convert()
	if bank.Sample(0) != 10 || bank.Sample(1) != 0 {
		t.Fatalf("first conversion should only refresh channel 0")
	}
	bank.Convert()
	bank.Convert()
	if bank.Sample(1) != AnalogMax {
		t.Fatalf("channel 1 = %d, want clamp to %d", bank.Sample(1), AnalogMax)
	}
	if bank.Sample(2) != 30 {
		t.Fatalf("channel 2 = %d, want 30", bank.Sample(2))
	}
	if bank.Sample(9) != 0 {
		t.Fatalf("unknown channel should read 0")
	}
}

func TestKnob(t *testing.T) {
	k := NewKnob(500)
	k.Nudge(-600)
	if k.Read() != 0 {
		t.Fatalf("knob = %d, want 0", k.Read())
	}
	k.Nudge(5000)
	if k.Read() != AnalogMax {
		t.Fatalf("knob = %d, want %d", k.Read(), AnalogMax)
	}
	k.SetMIDI(0)
	if k.Read() != 0 {
		t.Fatalf("MIDI 0 -> %d", k.Read())
	}
	k.SetMIDI(127)
	if k.Read() != AnalogMax {
		t.Fatalf("MIDI 127 -> %d", k.Read())
	}
}

func TestNoiseStaysInRange(t *testing.T) {
	n := NewNoise()
	for i := 0; i < 1000; i++ {
		if v := n.Read(); v > AnalogMax {
			t.Fatalf("noise %d out of range", v)
		}
	}
}

func TestTickClockMonotonic(t *testing.T) {
	c := NewTickClock()
	prev := c.NowMS()
	for i := 0; i < 100; i++ {
		c.advance()
		now := c.NowMS()
		if now < prev {
			t.Fatalf("clock went backwards: %d -> %d", prev, now)
		}
		prev = now
	}
}
