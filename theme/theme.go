package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"go-simon/game"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols

	// Pads are the lit colors of the four game buttons, shared by the
	// terminal panel and the Launchpad quadrants
	Pads [game.NumColors]RGB
}

type Symbols struct {
	Pad      rune // ■ lit pad
	PadOff   rune // □ dark pad
	Life     rune // ♥ remaining life
	LifeLost rune // ♡ lost life
	Done     rune // ● recalled / shown entry
	Pending  rune // · entry still to come
	Locked   rune // * difficulty locked
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Pad:      '■',
			PadOff:   '□',
			Life:     '♥',
			LifeLost: '♡',
			Done:     '●',
			Pending:  '·',
			Locked:   '*',
		},
		Pads: [game.NumColors]RGB{
			game.Blue:   {0x2e, 0x6b, 0xff},
			game.Red:    {0xff, 0x2e, 0x3c},
			game.Yellow: {0xff, 0xd0, 0x1f},
			game.Green:  {0x1f, 0xd6, 0x5a},
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0   // background
	RoleSurface = 0.125 // panel
	RoleMuted   = 0.25  // help text
	RoleFG      = 0.5   // readable text
	RoleAccent  = 0.625 // header
	RoleActive  = 0.75  // highlighted values
	RoleWarning = 0.875 // lives low, game over
	RoleSuccess = 1.0   // victory
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Active() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleActive))
}

func (t *Theme) Warning() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWarning))
}

func (t *Theme) Success() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleSuccess))
}

// PadRGB returns the lit color of a game button
func (t *Theme) PadRGB(c game.Color) RGB {
	if c >= game.NumColors {
		return RGB{}
	}
	return t.Pads[c]
}

// PadGrid returns the pad colors as raw triples for the Launchpad
func (t *Theme) PadGrid() [game.NumColors][3]uint8 {
	var out [game.NumColors][3]uint8
	for i, c := range t.Pads {
		out[i] = c
	}
	return out
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(norm))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
