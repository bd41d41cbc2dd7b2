package tui

import (
	"sync"

	"go-simon/game"
)

// Panel is the terminal's view of the game. The engine writes to it as the
// game's Display and Actuator; the bubbletea model reads it when redrawing.
type Panel struct {
	mu   sync.Mutex
	snap game.Snapshot
	mask game.Mask
	tone game.Tone

	// Notify TUI of updates
	UpdateChan chan struct{}
}

// NewPanel creates an empty panel
func NewPanel() *Panel {
	return &Panel{UpdateChan: make(chan struct{}, 1)}
}

// Show implements game.Display
func (p *Panel) Show(s game.Snapshot) {
	p.mu.Lock()
	p.snap = s
	p.mu.Unlock()
	p.notify()
}

// SetColors implements game.Actuator
func (p *Panel) SetColors(m game.Mask) {
	p.mu.Lock()
	changed := p.mask != m
	p.mask = m
	p.mu.Unlock()
	if changed {
		p.notify()
	}
}

// PlayTone implements game.Actuator
func (p *Panel) PlayTone(t game.Tone) {
	p.mu.Lock()
	p.tone = t
	p.mu.Unlock()
	p.notify()
}

// StopTone implements game.Actuator
func (p *Panel) StopTone() {
	p.mu.Lock()
	changed := p.tone != 0
	p.tone = 0
	p.mu.Unlock()
	if changed {
		p.notify()
	}
}

// State returns what the panel currently shows
func (p *Panel) State() (game.Snapshot, game.Mask, game.Tone) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap, p.mask, p.tone
}

func (p *Panel) notify() {
	select {
	case p.UpdateChan <- struct{}{}:
	default:
	}
}
