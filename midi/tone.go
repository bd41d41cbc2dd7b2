package midi

import (
	"fmt"
	"math"
	"sync"

	"go-simon/debug"
	"go-simon/game"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// ToneOut plays game tones as single notes on a synth output port.
// A nil *ToneOut is silent.
type ToneOut struct {
	mu       sync.Mutex
	send     func(gomidi.Message) error
	channel  uint8
	velocity uint8
	playing  int // sounding note, -1 = none
}

// NewToneOut wraps an already opened sender. channel is 1-16.
func NewToneOut(send func(gomidi.Message) error, channel uint8) *ToneOut {
	if channel < 1 || channel > 16 {
		channel = 1
	}
	return &ToneOut{
		send:     send,
		channel:  channel - 1,
		velocity: 100,
		playing:  -1,
	}
}

// OpenToneOut finds the named output port and opens it
func OpenToneOut(portName string, channel uint8) (*ToneOut, error) {
	if portName == "" {
		return nil, nil
	}
	for _, port := range gomidi.GetOutPorts() {
		if port.String() == portName {
			send, err := gomidi.SendTo(port)
			if err != nil {
				return nil, fmt.Errorf("open synth port %q: %w", portName, err)
			}
			return NewToneOut(send, channel), nil
		}
	}
	return nil, fmt.Errorf("synth port %q not found", portName)
}

// Play sounds t, silencing whatever was playing
func (o *ToneOut) Play(t game.Tone) {
	if o == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	o.stopLocked()
	if t == 0 {
		return
	}
	note := FreqToNote(t)
	if err := o.send(gomidi.NoteOn(o.channel, note, o.velocity)); err != nil {
		debug.Log("tone", "note on %d (%d Hz) failed: %v", note, t, err)
		return
	}
	o.playing = int(note)
}

// Stop silences the current note
func (o *ToneOut) Stop() {
	if o == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stopLocked()
}

func (o *ToneOut) stopLocked() {
	if o.playing < 0 {
		return
	}
	if err := o.send(gomidi.NoteOff(o.channel, uint8(o.playing))); err != nil {
		debug.Log("tone", "note off %d failed: %v", o.playing, err)
	}
	o.playing = -1
}

// FreqToNote returns the nearest equal-tempered MIDI note (A4 = 440 Hz = 69)
func FreqToNote(t game.Tone) uint8 {
	if t == 0 {
		return 0
	}
	n := math.Round(69 + 12*math.Log2(float64(t)/440))
	if n < 0 {
		return 0
	}
	if n > 127 {
		return 127
	}
	return uint8(n)
}
