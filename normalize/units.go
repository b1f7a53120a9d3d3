// Package normalize converts raw source units into the
// resolution-independent forms used by the feature tree: EMU offsets
// into canvas fractions, EMU line widths into points, rotation into
// degrees, colors into hex/RGB/Lab, and byte content into short
// deterministic digests.
package normalize

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tsawler/deckmine/model"
)

// Unit conversion factors for OOXML drawing coordinates.
const (
	// EMUPerPoint converts line widths (1/12700 inch units) to points.
	EMUPerPoint = 12700
	// RotationUnitsPerDegree converts rotation (1/60000 degree units).
	RotationUnitsPerDegree = 60000
)

// Fraction divides a raw EMU coordinate by the canvas extent.
// A non-positive canvas yields 0 rather than dividing by zero.
func Fraction(v, canvas int64) float64 {
	if canvas <= 0 {
		return 0
	}
	return float64(v) / float64(canvas)
}

// EMUToPoints converts an EMU width to points.
func EMUToPoints(v int64) float64 {
	return float64(v) / EMUPerPoint
}

// RotationDegrees converts a raw rotation value to degrees.
func RotationDegrees(raw int64) float64 {
	return float64(raw) / RotationUnitsPerDegree
}

// Geometry normalizes a transform against the canvas. X and Width
// divide by the canvas width, Y and Height by the canvas height, so
// the two axes scale independently. hasOff and hasExt record whether
// the source transform actually carried an offset and extent.
func Geometry(x, y, w, h int64, hasOff, hasExt bool, rot int64, flipH, flipV bool, canvasW, canvasH int64) model.Geometry {
	return model.Geometry{
		X:         Fraction(x, canvasW),
		Y:         Fraction(y, canvasH),
		Width:     Fraction(w, canvasW),
		Height:    Fraction(h, canvasH),
		HasOffset: hasOff,
		HasExtent: hasExt,
		Rotation:  RotationDegrees(rot),
		FlipH:     flipH,
		FlipV:     flipV,
	}
}

// ReduceRatio reduces w:h by their greatest common divisor and formats
// the result, e.g. ReduceRatio(9144000, 6858000) == "4:3".
func ReduceRatio(w, h int64) string {
	d := gcd(w, h)
	if d == 0 {
		return fmt.Sprintf("%d:%d", w, h)
	}
	return fmt.Sprintf("%d:%d", w/d, h/d)
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// DeterministicID derives a stable UUID (version 5, DNS namespace)
// from a name. The same name always yields the same ID.
func DeterministicID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(name)).String()
}
