package midi

import (
	"sync"

	"go-simon/debug"
	"go-simon/game"
)

// Lights drives the quadrants of the connected grid controller and the synth
// tone output as a game.Actuator. Controllers come and go with hot-plug; with
// none attached the light calls only update the cached mask.
type Lights struct {
	mu     sync.Mutex
	ctrl   Controller
	tones  *ToneOut
	lit    [game.NumColors][3]uint8
	dim    [game.NumColors][3]uint8
	mask   game.Mask
	drawn  game.Mask
	synced bool // drawn matches the device
}

// NewLights colors each quadrant with lit[c] when on and a dimmed version
// when off, so the layout stays visible between flashes.
func NewLights(lit [game.NumColors][3]uint8, tones *ToneOut) *Lights {
	l := &Lights{lit: lit, tones: tones}
	for c := range lit {
		l.dim[c] = [3]uint8{lit[c][0] / 8, lit[c][1] / 8, lit[c][2] / 8}
	}
	return l
}

// SetController swaps the grid being driven and repaints it
func (l *Lights) SetController(c Controller) {
	l.mu.Lock()
	defer l.mu.Unlock()
	debug.Log("lights", "controller set (nil=%v), full redraw", c == nil)
	l.ctrl = c
	l.synced = false
	l.flushLocked()
}

// Mask returns the last requested light mask
func (l *Lights) Mask() game.Mask {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mask
}

// SetColors implements game.Actuator
func (l *Lights) SetColors(m game.Mask) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mask = m & game.MaskAll
	l.flushLocked()
}

// PlayTone implements game.Actuator
func (l *Lights) PlayTone(t game.Tone) {
	l.tones.Play(t)
}

// StopTone implements game.Actuator
func (l *Lights) StopTone() {
	l.tones.Stop()
}

// flushLocked sends only the quadrants that changed since the last draw
func (l *Lights) flushLocked() {
	if l.ctrl == nil {
		return
	}
	updates := l.diff()
	if len(updates) == 0 {
		return
	}
	if err := l.ctrl.SetLEDBatch(updates); err != nil {
		debug.Log("lights", "led batch failed: %v", err)
		l.synced = false
		return
	}
	l.drawn = l.mask
	l.synced = true
}

func (l *Lights) diff() []LEDUpdate {
	var updates []LEDUpdate
	for c := game.Color(0); c < game.NumColors; c++ {
		on := l.mask.Has(c)
		if l.synced && l.drawn.Has(c) == on {
			continue
		}
		rgb := l.dim[c]
		if on {
			rgb = l.lit[c]
		}
		for _, p := range quadrantPads(c) {
			updates = append(updates, LEDUpdate{Row: p[0], Col: p[1], Color: rgb, Channel: ChannelStatic})
		}
	}
	return updates
}
