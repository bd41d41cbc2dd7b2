package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-simon/config"
	"go-simon/debug"
	"go-simon/game"
	"go-simon/hal"
	"go-simon/midi"
	"go-simon/theme"
	"go-simon/widgets"
)

// knobStep is how far one arrow key turns the pacing knob
const knobStep = 64

var padKeys = map[string]game.Color{
	"1": game.Blue, "a": game.Blue,
	"2": game.Red, "s": game.Red,
	"3": game.Yellow, "d": game.Yellow,
	"4": game.Green, "f": game.Green,
}

var padLabels = [game.NumColors]string{"1 BLUE", "2 RED", "3 YELLOW", "4 GREEN"}

var phaseHints = map[game.Phase]string{
	game.PhaseBoot:             "starting...",
	game.PhaseDifficultySelect: "turn the knob to pick a difficulty, hold a pad to start",
	game.PhaseLevelIntro:       "get ready",
	game.PhasePatternDisplay:   "watch",
	game.PhaseInputWait:        "your turn: repeat the pattern",
	game.PhaseResultProcess:    "",
	game.PhaseVictory:          "you won! press any pad to play again",
	game.PhaseGameDeath:        "game over. press any pad to play again",
}

type Model struct {
	Panel     *Panel
	DeviceMgr *midi.DeviceManager
	Theme     *theme.Theme
	Pads      *hal.Pads
	Knob      *hal.Knob
	Lights    *midi.Lights
	Config    *config.Config // new controllers are saved here (may be nil)
	quitting  bool

	controller midi.Controller              // grid driving the lights (may be nil)
	devices    map[string]midi.ControllerType // connected controllers by ID
}

type UpdateMsg struct{}

type DeviceEventMsg midi.DeviceEvent

func NewModel(panel *Panel, deviceMgr *midi.DeviceManager, th *theme.Theme, pads *hal.Pads, knob *hal.Knob, lights *midi.Lights, cfg *config.Config) Model {
	return Model{
		Panel:     panel,
		DeviceMgr: deviceMgr,
		Theme:     th,
		Pads:      pads,
		Knob:      knob,
		Lights:    lights,
		Config:    cfg,
		devices:   make(map[string]midi.ControllerType),
	}
}

func ListenForUpdates(panel *Panel) tea.Cmd {
	return func() tea.Msg {
		<-panel.UpdateChan
		return UpdateMsg{}
	}
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	if deviceMgr == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-deviceMgr.Events()
		if !ok {
			return nil
		}
		return DeviceEventMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		ListenForUpdates(m.Panel),
		ListenForDevices(m.DeviceMgr),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if c, ok := padKeys[key]; ok {
			m.Pads.Tap(int(c))
			return m, nil
		}
		switch key {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "up", "+", "=":
			m.Knob.Nudge(knobStep)

		case "down", "-", "_":
			m.Knob.Nudge(-knobStep)
		}

	case UpdateMsg:
		return m, ListenForUpdates(m.Panel)

	case DeviceEventMsg:
		m.handleDevice(midi.DeviceEvent(msg))
		return m, ListenForDevices(m.DeviceMgr)
	}

	return m, nil
}

// handleDevice routes a controller's buttons and knob into the board inputs
func (m *Model) handleDevice(event midi.DeviceEvent) {
	switch event.Type {
	case midi.DeviceConnected:
		ctrl := event.Controller
		if ctrl == nil {
			return
		}
		m.devices[event.ID] = ctrl.Type()
		if ctrl.Type() == midi.ControllerLaunchpad && m.Lights != nil {
			m.controller = ctrl
			m.Lights.SetController(ctrl)
		}

		// Listen for button and control events from the controller
		pads, knob := m.Pads, m.Knob
		go func() {
			for ev := range ctrl.ButtonEvents() {
				pads.Set(int(ev.Color), ev.Down)
			}
			// Closed on disconnect: don't leave a pad stuck down
			for c := 0; c < game.NumColors; c++ {
				pads.Set(c, false)
			}
		}()
		go func() {
			for ev := range ctrl.ControlEvents() {
				if ev.CC == midi.KnobCC {
					knob.SetMIDI(ev.Value)
				}
			}
		}()
		debug.Log("tui", "attached %s %q", ctrl.Type(), event.ID)
		m.remember(event.ID, ctrl.Type())

	case midi.DeviceDisconnected:
		delete(m.devices, event.ID)
		if m.controller != nil && m.controller.ID() == event.ID {
			m.controller = nil
			if m.Lights != nil {
				m.Lights.SetController(nil)
			}
		}
	}
}

// remember saves a controller seen for the first time so it auto-connects
// on the next run
func (m *Model) remember(portName string, kind midi.ControllerType) {
	if m.Config == nil {
		return
	}
	saved := config.ControllerKeyboard
	if kind == midi.ControllerLaunchpad {
		saved = config.ControllerLaunchpadX
	}
	added, err := m.Config.Remember(portName, saved)
	if err != nil {
		debug.Log("tui", "remember %q: %v", portName, err)
		return
	}
	if added {
		debug.Log("tui", "saved %s %q to config", saved, portName)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap, mask, tone := m.Panel.State()
	sym := m.Theme.Symbols

	// Styles
	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent()).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	valueStyle := lipgloss.NewStyle().Foreground(m.Theme.Active())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	baseStyle := lipgloss.NewStyle().Foreground(m.Theme.FG()).Background(m.Theme.BG())

	phaseStyle := valueStyle
	switch snap.Phase {
	case game.PhaseVictory:
		phaseStyle = lipgloss.NewStyle().Foreground(m.Theme.Success()).Bold(true)
	case game.PhaseGameDeath:
		phaseStyle = lipgloss.NewStyle().Foreground(m.Theme.Warning()).Bold(true)
	}

	header := headerStyle.Render("go-simon") + "  " + phaseStyle.Render(snap.Phase.String()) + m.deviceStatus()

	locked := ""
	if snap.DifficultyLocked {
		locked = string(sym.Locked)
	}
	stats := strings.Join([]string{
		labelStyle.Render("level ") + valueStyle.Render(fmt.Sprintf("%d/%d", snap.Level, snap.MaxLevel)),
		labelStyle.Render("score ") + valueStyle.Render(fmt.Sprintf("%d", snap.Score)),
		labelStyle.Render("difficulty ") + valueStyle.Render(fmt.Sprintf("%d%s", snap.Difficulty, locked)),
		labelStyle.Render("lives ") + lipgloss.NewStyle().Foreground(m.Theme.Warning()).
			Render(widgets.RenderLives(snap.Lives, game.InitialLives, sym.Life, sym.LifeLost)),
	}, "   ")

	knobValue := 0
	if m.Knob != nil {
		knobValue = int(m.Knob.Read())
	}
	meterStyle := lipgloss.NewStyle().Foreground(m.Theme.Color(float64(knobValue) / hal.AnalogMax))
	knob := labelStyle.Render("pace ") + meterStyle.Render(widgets.RenderMeter(knobValue, hal.AnalogMax, 20))

	progress := ""
	if snap.PatternLength > 0 {
		progress = labelStyle.Render("pattern ") +
			widgets.RenderProgress(snap.PatternCursor, snap.PatternLength, sym.Done, sym.Pending)
	}

	sound := ""
	if tone != 0 {
		sound = valueStyle.Render(fmt.Sprintf("♪ %d Hz", tone))
	}

	grid := m.Theme.PadGrid()
	pads := widgets.RenderPadQuad(grid, mask, padLabels)

	var legend []string
	for c := game.Color(0); c < game.NumColors; c++ {
		legend = append(legend, widgets.RenderLegendItem(grid[c], c.String(), fmt.Sprintf("%d Hz", game.ToneFor(c))))
	}

	help := dimStyle.Render(widgets.RenderKeyHelp([]widgets.KeySection{{
		Keys: []widgets.KeyBinding{
			{Key: "1-4 / asdf", Desc: "press a pad (hold to start)"},
			{Key: "up/down +/-", Desc: "turn the pace knob"},
			{Key: "q", Desc: "quit"},
		},
	}}))

	// Build output
	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(stats)
	out.WriteString("\n")
	out.WriteString(knob)
	out.WriteString("\n\n")
	out.WriteString(pads)
	out.WriteString("\n\n")
	out.WriteString(baseStyle.Render(strings.Join(legend, "\n")))
	out.WriteString("\n\n")
	if progress != "" || sound != "" {
		out.WriteString(progress + "  " + sound)
		out.WriteString("\n")
	}
	if hint := phaseHints[snap.Phase]; hint != "" {
		out.WriteString(dimStyle.Render(hint))
		out.WriteString("\n")
	}
	out.WriteString("\n")
	out.WriteString(help)

	return out.String()
}

func (m Model) deviceStatus() string {
	if len(m.devices) == 0 {
		return ""
	}
	var names []string
	for _, t := range m.devices {
		switch t {
		case midi.ControllerLaunchpad:
			names = append(names, "LP:X")
		case midi.ControllerKeyboard:
			names = append(names, "KEYS")
		}
	}
	sort.Strings(names)
	return "  " + strings.Join(names, " ")
}
