package core

// Color is a symbolic foreground color; the terminal layer picks the
// actual ANSI shade.
type Color uint8

const (
	ColorDefault      Color = iota
	ColorRed                // static lava
	ColorBrightRed          // moving lava
	ColorBrightYellow       // coins, wins
	ColorBrightWhite        // player
	ColorGray               // walls
	ColorPurple             // monsters
)
