package ezmenulib

import (
	"fmt"
	"strings"
)

// Color represents an RGB color with optional bold formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ColorScheme defines the colors used by the interactive picker.
type ColorScheme struct {
	Name      string `json:"name"`
	Message   Color  `json:"message"`   // the prompt message line
	Label     Color  `json:"label"`     // unselected choice labels
	Highlight Color  `json:"highlight"` // the choice under the cursor
}

// ThemeDefault is the default color scheme with a green message and a cyan
// highlight.
var ThemeDefault = &ColorScheme{
	Name:      "default",
	Message:   Color{R: 0, G: 255, B: 0, Bold: true},
	Label:     Color{R: 200, G: 200, B: 200, Bold: false},
	Highlight: Color{R: 0, G: 255, B: 255, Bold: true},
}

// ThemeDark is a dark theme with a light blue message and purple labels.
var ThemeDark = &ColorScheme{
	Name:      "Dark",
	Message:   Color{R: 102, G: 217, B: 239, Bold: true},
	Label:     Color{R: 189, G: 147, B: 249, Bold: false},
	Highlight: Color{R: 80, G: 250, B: 123, Bold: true},
}

// ThemeAccessible is a colorblind-safe theme with high contrast.
var ThemeAccessible = &ColorScheme{
	Name:      "Accessible",
	Message:   Color{R: 0, G: 114, B: 178, Bold: true},
	Label:     Color{R: 255, G: 255, B: 255, Bold: false},
	Highlight: Color{R: 230, G: 159, B: 0, Bold: true},
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
