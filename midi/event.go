package midi

import "go-simon/game"

// ButtonEvent is sent when a controller presses or releases a game button
type ButtonEvent struct {
	Color game.Color
	Down  bool
}

// ControlEvent is sent when a knob or fader moves (MIDI CC)
type ControlEvent struct {
	Channel uint8
	CC      uint8
	Value   uint8
}

// send drops the event if the consumer is behind
func sendButton(ch chan ButtonEvent, ev ButtonEvent) {
	select {
	case ch <- ev:
	default:
	}
}

func sendControl(ch chan ControlEvent, ev ControlEvent) {
	select {
	case ch <- ev:
	default:
	}
}
