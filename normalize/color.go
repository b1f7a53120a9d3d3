package normalize

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tsawler/deckmine/model"
)

// Fallback RGB for indirect (scheme/preset) references, which cannot
// be resolved to a literal value without a theme lookup.
const grayComponent = 128

// ResolveColor canonicalizes an encoded color value as produced by the
// part decoders: "#RRGGBB" for literal colors, "scheme:<name>" or
// "preset:<name>" for indirect references. RGB and Lab are always
// computed; indirect references and unparsable hex fall back to
// mid-gray. The conversion is deterministic for a given input.
func ResolveColor(encoded string) model.Color {
	c := model.Color{Hex: encoded}
	c.RGB = hexToRGB(encoded)
	c.Lab = rgbToLab(c.RGB)
	return c
}

// hexToRGB parses a "#RRGGBB" value, returning mid-gray for indirect
// references or malformed input.
func hexToRGB(encoded string) [3]int {
	gray := [3]int{grayComponent, grayComponent, grayComponent}
	if strings.HasPrefix(encoded, "scheme:") || strings.HasPrefix(encoded, "preset:") {
		return gray
	}
	h := strings.TrimPrefix(encoded, "#")
	if len(h) != 6 {
		return gray
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return gray
	}
	return [3]int{int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)}
}

// rgbToLab converts an sRGB triple to CIE Lab under the D65 white
// point. go-colorful performs the standard sRGB linearization (gamma
// 2.4 with the 0.04045 threshold), the fixed sRGB/D65 XYZ matrix, and
// the 6/29-delta Lab transform; its L is scaled to [0,1] and a/b by
// 1/100, so the result is rescaled to the conventional ranges.
func rgbToLab(rgb [3]int) [3]float64 {
	c := colorful.Color{
		R: float64(rgb[0]) / 255.0,
		G: float64(rgb[1]) / 255.0,
		B: float64(rgb[2]) / 255.0,
	}
	l, a, b := c.Lab()
	return [3]float64{l * 100, a * 100, b * 100}
}
