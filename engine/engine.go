package engine

import (
	"context"
	"time"

	"go-simon/debug"
	"go-simon/game"
)

// Sampler latches raw inputs once per loop before the machine reads them
type Sampler interface {
	Sample(now uint32)
}

// Engine is the single game thread: sample inputs, then tick the machine.
type Engine struct {
	clock   game.Clock
	inputs  Sampler
	machine *game.Machine
	period  time.Duration

	ticks uint64
}

// New creates an engine polling every period
func New(clock game.Clock, inputs Sampler, machine *game.Machine, period time.Duration) *Engine {
	if period <= 0 {
		period = time.Millisecond
	}
	return &Engine{
		clock:   clock,
		inputs:  inputs,
		machine: machine,
		period:  period,
	}
}

// Step runs one poll iteration
func (e *Engine) Step() {
	e.inputs.Sample(e.clock.NowMS())
	e.machine.Tick()
	e.ticks++
	debug.LogEvery(2000, "engine", "phase=%s now=%d", e.machine.Phase(), e.clock.NowMS())
}

// Ticks is the number of completed iterations
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Run polls until ctx is done (blocking - run in goroutine)
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.period)
	defer ticker.Stop()

	debug.Log("engine", "running every %v", e.period)
	for {
		select {
		case <-ctx.Done():
			debug.Log("engine", "stopped after %d ticks", e.ticks)
			return ctx.Err()
		case <-ticker.C:
			e.Step()
		}
	}
}
