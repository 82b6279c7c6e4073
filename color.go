package gnuplot

import (
	"fmt"
	"image/color"
)

// Color represents a line or fill color handed to the engine, with an
// explicit "unset" state. Unset means "let the engine choose a default",
// not "transparent": directives simply omit the color clause.
//
// Components are in the range [0, 255]. Alpha 255 is fully opaque.
type Color struct {
	R, G, B int
	A       int

	set bool
}

// Named colors understood by ParseColor.
var namedColors = map[string]Color{
	"red":     {R: 255, G: 0, B: 0, A: 255, set: true},
	"green":   {R: 0, G: 255, B: 0, A: 255, set: true},
	"blue":    {R: 0, G: 0, B: 255, A: 255, set: true},
	"yellow":  {R: 255, G: 255, B: 0, A: 255, set: true},
	"cyan":    {R: 0, G: 255, B: 255, A: 255, set: true},
	"magenta": {R: 255, G: 0, B: 255, A: 255, set: true},
	"black":   {R: 0, G: 0, B: 0, A: 255, set: true},
	"white":   {R: 255, G: 255, B: 255, A: 255, set: true},
	"gray":    {R: 128, G: 128, B: 128, A: 255, set: true},
}

// RGB creates an opaque color from components in [0, 255]. Out-of-range
// components are clamped to zero, matching how the engine treats garbage.
func RGB(r, g, b int) Color {
	return RGBAColor(r, g, b, 255)
}

// RGBAColor creates a color from components in [0, 255].
func RGBAColor(r, g, b, a int) Color {
	return Color{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: clampByte(a), set: true}
}

// ParseColor interprets a symbolic name ("red", "gray", ...) or a hex
// string ("#rrggbb" or "#aarrggbb", alpha first). Anything else yields
// the unset color.
func ParseColor(s string) Color {
	if s == "" {
		return Color{}
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}
	if c, ok := namedColors[s]; ok {
		return c
	}
	return Color{}
}

// parseHexColor parses "rrggbb" or "aarrggbb" (alpha first). Returns the
// unset color for any other length or a non-hex digit.
func parseHexColor(hex string) Color {
	var r, g, b, a uint32
	a = 255
	switch len(hex) {
	case 6: // rrggbb
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return Color{}
		}
	case 8: // aarrggbb
		if !parseHex(hex[0:2], &a) || !parseHex(hex[2:4], &r) ||
			!parseHex(hex[4:6], &g) || !parseHex(hex[6:8], &b) {
			return Color{}
		}
	default:
		return Color{}
	}
	return Color{R: int(r), G: int(g), B: int(b), A: int(a), set: true}
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// IsSet reports whether the color carries a value. The zero Color is
// unset.
func (c Color) IsSet() bool { return c.set }

// String renders the color in the hex form the engine expects: "#rrggbb"
// for opaque colors, "#aarrggbb" otherwise. The alpha byte is inverted
// because gnuplot treats 0 as opaque. Unset colors render as "".
func (c Color) String() string {
	if !c.set {
		return ""
	}
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", 255-c.A, c.R, c.G, c.B)
}

// Color converts to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: uint8(c.A)}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return RGBAColor(int(r>>8), int(g>>8), int(b>>8), int(a>>8))
}

func clampByte(v int) int {
	if v < 0 || v > 255 {
		return 0
	}
	return v
}
