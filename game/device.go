package game

// Color indexes one of the four pads. Order matches the light/tone wiring.
type Color uint8

const (
	Blue Color = iota
	Red
	Yellow
	Green
)

// NumColors is the number of pads/buttons/lights
const NumColors = 4

var colorNames = [NumColors]string{"BLUE", "RED", "YELLOW", "GREEN"}

func (c Color) String() string {
	if int(c) < NumColors {
		return colorNames[c]
	}
	return "?"
}

// Mask is a light bitmask, bit i = color i
type Mask uint8

// MaskAll lights every pad
const MaskAll Mask = 1<<NumColors - 1

// Bit returns the mask with only c lit
func Bit(c Color) Mask {
	return 1 << c
}

// Has reports whether color c is lit in m
func (m Mask) Has(c Color) bool {
	return m&Bit(c) != 0
}

// Tone is a frequency in Hz. Zero means silence.
type Tone uint16

// Pad tones, high to low (B5 G5 E5 C5)
var padTones = [NumColors]Tone{988, 784, 659, 523}

// ToneFor returns the tone bound to a pad
func ToneFor(c Color) Tone {
	if int(c) < NumColors {
		return padTones[c]
	}
	return 0
}

// Clock supplies a monotonically non-decreasing millisecond counter.
// The counter wraps after ~49 days; compare with After, never with >.
type Clock interface {
	NowMS() uint32
}

// ButtonState is one debounced button as seen by the last sample.
type ButtonState struct {
	Current  bool
	Previous bool
	Changed  uint32 // clock reading at last accepted level change
}

// Rising reports a press edge
func (b ButtonState) Rising() bool {
	return b.Current && !b.Previous
}

// Sampler supplies debounced button state and raw analog samples (0..1023).
type Sampler interface {
	Button(i int) ButtonState
	Analog(ch int) uint16
}

// Analog channels
const (
	ChannelPot = iota
	ChannelAmbient1
	ChannelAmbient2
	NumChannels
)

// Actuator drives the lights and the tone generator
type Actuator interface {
	SetColors(m Mask)
	PlayTone(t Tone)
	StopTone()
}

// Display receives status snapshots and renders them on its own
type Display interface {
	Show(s Snapshot)
}

// LogSink receives human-readable trace lines
type LogSink interface {
	Log(category, format string, args ...any)
}

// After reports whether now has reached deadline, tolerating counter wrap
func After(now, deadline uint32) bool {
	return int32(now-deadline) >= 0
}

// nop collaborators used when a dependency is left nil

type nopActuator struct{}

func (nopActuator) SetColors(Mask) {}
func (nopActuator) PlayTone(Tone)  {}
func (nopActuator) StopTone()      {}

type nopDisplay struct{}

func (nopDisplay) Show(Snapshot) {}

type nopLog struct{}

func (nopLog) Log(string, string, ...any) {}
