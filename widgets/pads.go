package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-simon/game"
)

const (
	padWidth  = 12
	padHeight = 3
)

// RenderPad renders one game pad as a colored block, dimmed when off
func RenderPad(color [3]uint8, lit bool, label string) string {
	bg := color
	fg := [3]uint8{0, 0, 0}
	if !lit {
		bg = Dim(color)
		fg = color
	}
	style := lipgloss.NewStyle().
		Width(padWidth).
		Height(padHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(rgbToHex(bg))).
		Foreground(lipgloss.Color(rgbToHex(fg)))
	return style.Render(label)
}

// RenderPadQuad lays the four pads out like the Launchpad quadrants:
//
//	BLUE   RED
//	YELLOW GREEN
func RenderPadQuad(colors [game.NumColors][3]uint8, mask game.Mask, labels [game.NumColors]string) string {
	pad := func(c game.Color) string {
		return RenderPad(colors[c], mask.Has(c), labels[c])
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, pad(game.Blue), " ", pad(game.Red))
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, pad(game.Yellow), " ", pad(game.Green))
	return lipgloss.JoinVertical(lipgloss.Left, top, "", bottom)
}

// RenderSwatch renders a single small colored square
func RenderSwatch(color [3]uint8, symbol rune) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(rgbToHex(color)))
	return style.Render(string(symbol))
}

// RenderLives renders remaining lives followed by lost ones: "♥♥♡♡"
func RenderLives(lives, max int, full, lost rune) string {
	if lives < 0 {
		lives = 0
	}
	if lives > max {
		lives = max
	}
	return strings.Repeat(string(full), lives) + strings.Repeat(string(lost), max-lives)
}

// RenderProgress renders a pattern cursor as "●●●···"
func RenderProgress(cursor, length int, done, pending rune) string {
	if length <= 0 {
		return ""
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor > length {
		cursor = length
	}
	return strings.Repeat(string(done), cursor) + strings.Repeat(string(pending), length-cursor)
}

// RenderMeter renders value/max as a fixed-width bar: "[#####-----]"
func RenderMeter(value, max, width int) string {
	if width <= 0 || max <= 0 {
		return "[]"
	}
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	filled := value * width / max
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// RenderLegendItem renders a single legend item: "■ Name - description"
func RenderLegendItem(color [3]uint8, name, desc string) string {
	return fmt.Sprintf("  %s %s - %s", RenderSwatch(color, '■'), name, desc)
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}

// Dim returns color at a quarter brightness
func Dim(c [3]uint8) [3]uint8 {
	return [3]uint8{c[0] / 4, c[1] / 4, c[2] / 4}
}

func rgbToHex(c [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
