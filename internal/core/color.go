package core

// Color is the foreground color of a screen cell.
type Color uint8

// Palette used by the runner's cell renderer.
const (
	ColorDefault      Color = iota
	ColorRed                // finish line, crash message
	ColorGreen              // obstacles, win message
	ColorYellow             // HUD
	ColorBlue               // mid layer
	ColorBrightYellow       // scarf
	ColorBrightWhite        // player
	ColorGray               // near layer
	ColorDarkGray           // far layer
)

// ansiCodes are ANSI 256-color codes; ColorDefault keeps the terminal's own.
var ansiCodes = [...]string{
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorBrightYellow: "11",
	ColorBrightWhite:  "15",
	ColorGray:         "245",
	ColorDarkGray:     "238",
}

// ANSI returns the 256-color code of c, or "" for the terminal default and
// unknown colors.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
