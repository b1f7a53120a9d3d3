package model

import "strings"

// Color is a canonicalized color. Hex is either a literal "#RRGGBB"
// value or an indirect reference ("scheme:accent1", "preset:black")
// when the source pointed at a theme or named color. RGB and Lab are
// always populated; indirect references fall back to mid-gray.
type Color struct {
	Hex string
	RGB [3]int
	Lab [3]float64
}

// IsIndirect reports whether the color is a scheme or preset reference
// rather than a literal value.
func (c Color) IsIndirect() bool {
	return strings.HasPrefix(c.Hex, "scheme:") || strings.HasPrefix(c.Hex, "preset:")
}
