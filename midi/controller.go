package midi

// ControllerType identifies the kind of controller
type ControllerType int

const (
	ControllerUnknown ControllerType = iota
	ControllerLaunchpad
	ControllerKeyboard
)

func (t ControllerType) String() string {
	switch t {
	case ControllerLaunchpad:
		return "launchpad"
	case ControllerKeyboard:
		return "keyboard"
	}
	return "unknown"
}

// Controller is the interface for MIDI input devices
type Controller interface {
	ID() string
	Type() ControllerType

	// Input events from the controller
	ButtonEvents() <-chan ButtonEvent   // game buttons pressed/released
	ControlEvents() <-chan ControlEvent // knobs/faders

	// Output to the controller
	SetLEDBatch(updates []LEDUpdate) error

	// Lifecycle
	Close() error
}

// LEDUpdate sets one grid LED
type LEDUpdate struct {
	Row, Col int
	Color    [3]uint8 // RGB, mapped to the device palette
	Channel  uint8
}

// Launchpad X color palette (velocity values 0-127)
// See Programmer's Reference Manual for full palette
const (
	ColorOff         uint8 = 0
	ColorRed         uint8 = 5
	ColorYellow      uint8 = 13
	ColorGreen       uint8 = 21
	ColorBlue        uint8 = 45
	ColorBrightWhite uint8 = 119

	// Channel mode for LEDs (use as 'channel' parameter): solid color
	ChannelStatic uint8 = 0
)
