package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-simon/game"
)

func TestDefaultsMatchGameRules(t *testing.T) {
	got := DefaultConfig().GameRules()
	if got != game.DefaultRules() {
		t.Fatalf("GameRules() = %+v, want %+v", got, game.DefaultRules())
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Rules.MaxLevel != 9 || cfg.Input.DebounceMS != 50 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"rules":{"maxLevel":5,"fanfare":true},"synthOutput":{"portName":"FluidSynth"}}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Rules.MaxLevel != 5 {
		t.Fatalf("MaxLevel = %d, want 5", cfg.Rules.MaxLevel)
	}
	if cfg.Rules.LongPressMS != 2000 {
		t.Fatalf("LongPressMS = %d, want default 2000", cfg.Rules.LongPressMS)
	}
	if cfg.SynthOutput.PortName != "FluidSynth" || cfg.SynthOutput.Channel != 1 {
		t.Fatalf("SynthOutput = %+v", cfg.SynthOutput)
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SIMON_RULES_MAX_LEVEL", "6")
	t.Setenv("SIMON_RULES_SCALE_LENGTH", "true")
	t.Setenv("SIMON_RULES_FANFARE", "false")
	t.Setenv("SIMON_INPUT_DEBOUNCE_MS", "20")
	t.Setenv("SIMON_SYNTH_PORT", "IAC Bus 1")
	t.Setenv("SIMON_DEBUG", "1")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	r := cfg.GameRules()
	if r.MaxLevel != 6 || !r.ScaleLengthByDifficulty || r.Fanfare {
		t.Fatalf("rules not overridden: %+v", r)
	}
	if r.LongPress != 2*time.Second {
		t.Fatalf("untouched field changed: %v", r.LongPress)
	}
	if cfg.Input.DebounceMS != 20 || cfg.SynthOutput.PortName != "IAC Bus 1" || !cfg.Debug {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestApplyEnvBadValue(t *testing.T) {
	t.Setenv("SIMON_LOOP_MS", "fast")
	if err := DefaultConfig().ApplyEnv(); err == nil {
		t.Fatalf("expected error for non-numeric SIMON_LOOP_MS")
	}
}

func TestSaveAndLoadRoundTripUnderHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.AddController(ControllerConfig{PortName: "Keystation 49", Type: ControllerKeyboard, AutoConnect: true})
	cfg.AddController(ControllerConfig{PortName: "Keystation 49", Type: ControllerKeyboard, AutoConnect: true})
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Controllers) != 2 {
		t.Fatalf("controllers = %+v", got.Controllers)
	}
	if ports := got.KeyboardPorts(); len(ports) != 1 || ports[0] != "Keystation 49" {
		t.Fatalf("KeyboardPorts() = %v", ports)
	}
	if got.FindController("Launchpad X LPX MIDI") == nil {
		t.Fatalf("launchpad entry lost")
	}
}

func TestLoopPeriodFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LoopMS = 0
	if cfg.LoopPeriod() != time.Millisecond {
		t.Fatalf("LoopPeriod() = %v", cfg.LoopPeriod())
	}
}

func TestRememberAddsNewPortsOnce(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	added, err := cfg.Remember("Launchpad X LPX MIDI", ControllerLaunchpadX)
	if err != nil || added {
		t.Fatalf("known port: added=%v err=%v", added, err)
	}

	added, err = cfg.Remember("Launchpad Mini LPMiniMK3 MIDI", ControllerLaunchpadX)
	if err != nil || !added {
		t.Fatalf("new port: added=%v err=%v", added, err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ctrl := got.FindController("Launchpad Mini LPMiniMK3 MIDI")
	if ctrl == nil || !ctrl.AutoConnect || ctrl.Type != ControllerLaunchpadX {
		t.Fatalf("saved controller = %+v", ctrl)
	}
}
