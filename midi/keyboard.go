package midi

import (
	"fmt"

	"go-simon/game"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// KnobCC is the controller number read as the pacing knob (modulation wheel)
const KnobCC uint8 = 1

// KeyboardController handles a standard MIDI keyboard. The white keys
// C D E F of every octave are the four game buttons; CC messages are
// forwarded as control events.
type KeyboardController struct {
	id       string
	inPort   drivers.In
	stopFunc func()

	// keys currently held per button (C in two octaves is two keys);
	// only touched by the listener callback
	held [game.NumColors]int

	buttonChan  chan ButtonEvent
	controlChan chan ControlEvent
}

// NewKeyboardController creates a keyboard controller (input only)
func NewKeyboardController(id string, inPort drivers.In) (*KeyboardController, error) {
	kb := &KeyboardController{
		id:          id,
		inPort:      inPort,
		buttonChan:  make(chan ButtonEvent, 32),
		controlChan: make(chan ControlEvent, 32),
	}

	// Open input
	if inPort != nil {
		stop, err := gomidi.ListenTo(inPort, kb.handle)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		kb.stopFunc = stop
	}

	return kb, nil
}

func (kb *KeyboardController) handle(msg gomidi.Message, timestampms int32) {
	var channel, note, velocity, cc, value uint8

	switch {
	case msg.GetNoteOn(&channel, &note, &velocity):
		if c, ok := keyColor(note); ok {
			kb.press(c, velocity > 0) // velocity 0 is a release
		}
	case msg.GetNoteOff(&channel, &note, &velocity):
		if c, ok := keyColor(note); ok {
			kb.press(c, false)
		}
	case msg.GetControlChange(&channel, &cc, &value):
		sendControl(kb.controlChan, ControlEvent{Channel: channel, CC: cc, Value: value})
	}
}

// press reports a button going down on its first key and up on its last
func (kb *KeyboardController) press(c game.Color, down bool) {
	if down {
		kb.held[c]++
		if kb.held[c] == 1 {
			sendButton(kb.buttonChan, ButtonEvent{Color: c, Down: true})
		}
		return
	}
	if kb.held[c] == 0 {
		return
	}
	kb.held[c]--
	if kb.held[c] == 0 {
		sendButton(kb.buttonChan, ButtonEvent{Color: c, Down: false})
	}
}

// keyColor maps C, D, E and F to the four buttons
func keyColor(note uint8) (game.Color, bool) {
	switch note % 12 {
	case 0:
		return game.Blue, true
	case 2:
		return game.Red, true
	case 4:
		return game.Yellow, true
	case 5:
		return game.Green, true
	}
	return 0, false
}

func (kb *KeyboardController) ID() string {
	return kb.id
}

func (kb *KeyboardController) Type() ControllerType {
	return ControllerKeyboard
}

func (kb *KeyboardController) ButtonEvents() <-chan ButtonEvent {
	return kb.buttonChan
}

func (kb *KeyboardController) ControlEvents() <-chan ControlEvent {
	return kb.controlChan
}

// SetLEDBatch is a no-op for keyboards (no visual feedback)
func (kb *KeyboardController) SetLEDBatch(updates []LEDUpdate) error {
	return nil
}

func (kb *KeyboardController) Close() error {
	if kb.stopFunc != nil {
		kb.stopFunc()
	}
	close(kb.buttonChan)
	close(kb.controlChan)
	return nil
}
