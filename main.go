package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"go-simon/config"
	"go-simon/debug"
	"go-simon/engine"
	"go-simon/game"
	"go-simon/hal"
	"go-simon/midi"
	"go-simon/theme"
	"go-simon/tui"
)

func main() {
	// Load config, then let SIMON_* variables override it
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
	}

	if cfg.Debug {
		if err := debug.Enable(); err != nil {
			fmt.Fprintf(os.Stderr, "debug: %v\n", err)
		}
		defer debug.Disable()
	}

	// Load theme
	palette, err := theme.LoadOrDefault(cfg.PalettePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "palette: %v (using built-in)\n", err)
	}
	th := theme.New(palette)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Hardware stand-ins: ms clock, analog bank, pads
	clock := hal.NewTickClock()
	go clock.Run(ctx)

	knob := hal.NewKnob(0)
	analog := hal.NewAnalogBank(knob, hal.NewNoise(), hal.NewNoise())
	analog.Prime()
	go analog.Run(ctx)

	pads := hal.NewPads(clock, uint32(cfg.Input.TapHoldMS))
	board := hal.NewBoard(pads, analog, uint32(cfg.Input.DebounceMS))

	// Outputs: Launchpad quadrants + synth tones, mirrored on the terminal
	tones, err := midi.OpenToneOut(cfg.SynthOutput.PortName, uint8(cfg.SynthOutput.Channel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "synth: %v (tones shown on screen only)\n", err)
	}
	defer tones.Stop()
	lights := midi.NewLights(th.PadGrid(), tones)
	panel := tui.NewPanel()

	machine := game.New(game.Deps{
		Clock:   clock,
		Input:   board,
		Out:     engine.Fanout{lights, panel},
		Display: panel,
		Log:     debug.Sink{},
		Rules:   cfg.GameRules(),
	})

	eng := engine.New(clock, board, machine, cfg.LoopPeriod())
	go eng.Run(ctx)

	// Create MIDI device manager (handles hot-plug)
	deviceMgr := midi.NewDeviceManager(cfg.KeyboardPorts()...)
	go deviceMgr.Run(ctx)

	fmt.Println("go-simon")
	fmt.Println("Connect a Launchpad or keyboard any time - they'll be detected automatically")
	fmt.Println("")

	// Create and run TUI
	m := tui.NewModel(panel, deviceMgr, th, pads, knob, lights, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
