package core

// Color is the palette entry of a screen cell. The platform layer decides
// how each entry looks; the game only picks entries.
type Color uint8

// Basic ANSI colors.
const (
	ColorDefault Color = iota // terminal default, also the empty cell
	ColorRed                  // hat, present, sled
	ColorGreen                // fir needles, progress bar
	ColorYellow               // boost cooldown meter
	ColorBlue
	ColorMagenta
	ColorCyan  // shaded ground stripes
	ColorWhite // packed snow, HUD text
)

// Bright variants.
const (
	ColorBrightRed     Color = iota + ColorWhite + 1 // game over box
	ColorBrightGreen                                 // boost ready
	ColorBrightYellow                                // win box, milestones
	ColorBrightBlue                                  // skier
	ColorBrightMagenta                               // active boost
	ColorBrightCyan
	ColorBrightWhite // peaks, snowy crowns, particles
)

// Scene colors outside the ANSI sixteen.
const (
	ColorOrange Color = iota + ColorBrightWhite + 1
	ColorGray         // rocks, mountain flanks, hints
	ColorBrown        // trunks, stumps
	ColorSky          // snowflakes in the sky

	numColors
)

// Valid reports whether c is a palette entry.
func (c Color) Valid() bool {
	return c < numColors
}

// Overlay reports whether c is used for message boxes, which platforms
// may emphasize.
func (c Color) Overlay() bool {
	switch c {
	case ColorBrightRed, ColorBrightYellow:
		return true
	}
	return false
}
