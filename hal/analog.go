package hal

import (
	"context"
	"sync/atomic"
	"time"

	"go-simon/game"
)

// Full scale of a 10-bit converter
const AnalogMax = 1023

// Source is something an analog channel can be sampled from
type Source interface {
	Read() uint16
}

// AnalogBank holds the latest conversion of each channel. Conversions are
// refreshed round-robin by Run, the only writer; readers take whatever value
// is current and tolerate it being one conversion old.
type AnalogBank struct {
	cells   [game.NumChannels]atomic.Uint32
	sources [game.NumChannels]Source
	next    int
	period  time.Duration
}

// NewAnalogBank binds sources to channels in order: pot, ambient 1, ambient 2.
// Missing sources read as zero.
func NewAnalogBank(sources ...Source) *AnalogBank {
	b := &AnalogBank{period: time.Millisecond}
	copy(b.sources[:], sources)
	return b
}

// Sample returns the last conversion of ch
func (b *AnalogBank) Sample(ch int) uint16 {
	if ch < 0 || ch >= game.NumChannels {
		return 0
	}
	return uint16(b.cells[ch].Load())
}

// Convert refreshes one channel and moves to the next
func (b *AnalogBank) Convert() {
	ch := b.next
	var v uint16
	if src := b.sources[ch]; src != nil {
		v = src.Read()
	}
	if v > AnalogMax {
		v = AnalogMax
	}
	b.cells[ch].Store(uint32(v))
	b.next = (ch + 1) % game.NumChannels
}

// Prime converts every channel once so readers never see the power-on zeros
func (b *AnalogBank) Prime() {
	for i := 0; i < game.NumChannels; i++ {
		b.Convert()
	}
}

// Run keeps converting until ctx is done (blocking - run in goroutine)
func (b *AnalogBank) Run(ctx context.Context) {
	ticker := time.NewTicker(b.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Convert()
		}
	}
}

// Knob is the pacing pot. The terminal and MIDI CC both move it; last
// write wins.
type Knob struct {
	value atomic.Int32
}

// NewKnob starts the knob at v
func NewKnob(v int) *Knob {
	k := &Knob{}
	k.Set(v)
	return k
}

// Read implements Source
func (k *Knob) Read() uint16 {
	return uint16(k.value.Load())
}

// Set moves the knob to v, clamped to the converter range
func (k *Knob) Set(v int) {
	k.value.Store(int32(clampAnalog(v)))
}

// Nudge turns the knob by delta counts
func (k *Knob) Nudge(delta int) {
	for {
		old := k.value.Load()
		v := int32(clampAnalog(int(old) + delta))
		if k.value.CompareAndSwap(old, v) {
			return
		}
	}
}

// SetMIDI maps a 7-bit controller value onto the converter range
func (k *Knob) SetMIDI(v uint8) {
	if v > 127 {
		v = 127
	}
	k.Set(int(v) * AnalogMax / 127)
}

func clampAnalog(v int) int {
	if v < 0 {
		return 0
	}
	if v > AnalogMax {
		return AnalogMax
	}
	return v
}

// Noise stands in for a floating input: it reads as low-order jitter.
// Only the converter goroutine reads it.
type Noise struct {
	state uint64
}

// NewNoise seeds the jitter from the wall clock
func NewNoise() *Noise {
	return &Noise{state: uint64(time.Now().UnixNano()) | 1}
}

// Read implements Source
func (n *Noise) Read() uint16 {
	// xorshift64
	n.state ^= n.state << 13
	n.state ^= n.state >> 7
	n.state ^= n.state << 17
	return uint16(n.state % (AnalogMax + 1))
}
