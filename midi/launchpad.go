package midi

import (
	"fmt"
	"sync/atomic"

	"go-simon/debug"
	"go-simon/game"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

var ledSendCount uint64

// LaunchpadController handles a Novation Launchpad X. The 8x8 grid is split
// into four 4x4 quadrants, one per game button:
//
//	BLUE   | RED
//	-------+-------
//	YELLOW | GREEN
type LaunchpadController struct {
	id       string
	outPort  drivers.Out
	inPort   drivers.In
	send     func(msg gomidi.Message) error
	stopFunc func()

	// pads currently held per quadrant; only touched by the listener callback
	held [game.NumColors]int

	buttonChan  chan ButtonEvent
	controlChan chan ControlEvent
}

// NewLaunchpadController creates and configures a Launchpad
func NewLaunchpadController(id string, inPort drivers.In, outPort drivers.Out) (*LaunchpadController, error) {
	lp := &LaunchpadController{
		id:          id,
		inPort:      inPort,
		outPort:     outPort,
		buttonChan:  make(chan ButtonEvent, 32),
		controlChan: make(chan ControlEvent, 32),
	}

	// Open output
	if outPort != nil {
		send, err := gomidi.SendTo(outPort)
		if err != nil {
			return nil, fmt.Errorf("open output: %w", err)
		}
		lp.send = send

		// Send SysEx to switch to Programmer mode
		// F0 00 20 29 02 0C 00 7F F7
		if err := lp.send(gomidi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x00, 0x7F})); err != nil {
			debug.Log("launchpad", "programmer mode sysex failed: %v", err)
		}

		// Set brightness to maximum (0-127)
		// F0 00 20 29 02 0C 08 <brightness> F7
		if err := lp.send(gomidi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x08, 0x7F})); err != nil {
			debug.Log("launchpad", "brightness sysex failed: %v", err)
		}
	}

	// Open input
	if inPort != nil {
		stop, err := gomidi.ListenTo(inPort, lp.handle)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		lp.stopFunc = stop
	}

	return lp, nil
}

// handle turns grid note on/off into quadrant press/release
func (lp *LaunchpadController) handle(msg gomidi.Message, timestampms int32) {
	var channel, note, velocity uint8

	switch {
	case msg.GetNoteOn(&channel, &note, &velocity):
		row, col := noteToRowCol(note)
		c, ok := quadrantColor(row, col)
		if !ok {
			return
		}
		lp.press(c, velocity > 0) // velocity 0 is a release
	case msg.GetNoteOff(&channel, &note, &velocity):
		row, col := noteToRowCol(note)
		if c, ok := quadrantColor(row, col); ok {
			lp.press(c, false)
		}
	}
}

// press reports a quadrant going down on its first pad and up on its last
func (lp *LaunchpadController) press(c game.Color, down bool) {
	if down {
		lp.held[c]++
		if lp.held[c] == 1 {
			sendButton(lp.buttonChan, ButtonEvent{Color: c, Down: true})
		}
		return
	}
	if lp.held[c] == 0 {
		return
	}
	lp.held[c]--
	if lp.held[c] == 0 {
		sendButton(lp.buttonChan, ButtonEvent{Color: c, Down: false})
	}
}

func (lp *LaunchpadController) ID() string {
	return lp.id
}

func (lp *LaunchpadController) Type() ControllerType {
	return ControllerLaunchpad
}

func (lp *LaunchpadController) ButtonEvents() <-chan ButtonEvent {
	return lp.buttonChan
}

func (lp *LaunchpadController) ControlEvents() <-chan ControlEvent {
	return lp.controlChan // the grid has no continuous controls
}

// SetLEDBatch sends multiple LED updates using individual NoteOn messages
func (lp *LaunchpadController) SetLEDBatch(updates []LEDUpdate) error {
	if lp.send == nil || len(updates) == 0 {
		return nil
	}

	for _, u := range updates {
		note := rowColToNote(u.Row, u.Col)
		color := mapRGBToLaunchpad(u.Color)
		if err := lp.send(gomidi.NoteOn(u.Channel, note, color)); err != nil {
			return fmt.Errorf("led %d,%d: %w", u.Row, u.Col, err)
		}
	}

	count := atomic.AddUint64(&ledSendCount, uint64(len(updates)))
	if count%100 < uint64(len(updates)) {
		debug.Log("lp-send", "batch count=%d (this batch=%d)", count, len(updates))
	}

	return nil
}

// mapRGBToLaunchpad finds the nearest Launchpad X palette color for an RGB value
func mapRGBToLaunchpad(rgb [3]uint8) uint8 {
	// Launchpad X palette - approximate RGB values for key colors
	// Format: {velocity, R, G, B}
	palette := [][4]uint8{
		{ColorOff, 0, 0, 0},               // off
		{1, 30, 30, 30},                   // dark grey
		{ColorRed, 255, 0, 0},             // red
		{7, 90, 0, 0},                     // dim red
		{ColorYellow, 255, 255, 0},        // yellow
		{15, 90, 90, 0},                   // dim yellow
		{ColorGreen, 0, 255, 0},           // green
		{23, 0, 90, 0},                    // dim green
		{ColorBlue, 0, 0, 255},            // blue
		{47, 0, 0, 90},                    // dim blue
		{ColorBrightWhite, 255, 255, 255}, // white
	}

	bestMatch := uint8(0)
	bestDist := 999999

	r, g, b := int(rgb[0]), int(rgb[1]), int(rgb[2])

	for _, p := range palette {
		pr, pg, pb := int(p[1]), int(p[2]), int(p[3])
		// Simple Euclidean distance
		dist := (r-pr)*(r-pr) + (g-pg)*(g-pg) + (b-pb)*(b-pb)
		if dist < bestDist {
			bestDist = dist
			bestMatch = p[0]
		}
	}

	return bestMatch
}

func (lp *LaunchpadController) Close() error {
	// Clear the grid on close
	if lp.send != nil {
		var updates []LEDUpdate
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				updates = append(updates, LEDUpdate{Row: row, Col: col})
			}
		}
		lp.SetLEDBatch(updates)
	}
	if lp.stopFunc != nil {
		lp.stopFunc()
	}
	close(lp.buttonChan)
	close(lp.controlChan)
	return nil
}

// Launchpad X note mapping
// 8x8 Grid: Row 0 (bottom) = notes 11-18, Row 7 = notes 81-88

func rowColToNote(row, col int) uint8 {
	return uint8((row+1)*10 + col + 1)
}

func noteToRowCol(note uint8) (row, col int) {
	row = int(note/10) - 1
	col = int(note%10) - 1
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return -1, -1
	}
	return row, col
}

// quadrantColor maps a grid pad to the game button it belongs to
func quadrantColor(row, col int) (game.Color, bool) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return 0, false
	}
	top, right := row >= 4, col >= 4
	switch {
	case top && !right:
		return game.Blue, true
	case top && right:
		return game.Red, true
	case !right:
		return game.Yellow, true
	default:
		return game.Green, true
	}
}

// quadrantPads lists the grid pads of one game button
func quadrantPads(c game.Color) [][2]int {
	row0, col0 := 0, 0
	switch c {
	case game.Blue:
		row0, col0 = 4, 0
	case game.Red:
		row0, col0 = 4, 4
	case game.Yellow:
		row0, col0 = 0, 0
	case game.Green:
		row0, col0 = 0, 4
	}
	pads := make([][2]int, 0, 16)
	for r := row0; r < row0+4; r++ {
		for col := col0; col < col0+4; col++ {
			pads = append(pads, [2]int{r, col})
		}
	}
	return pads
}
