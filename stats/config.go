// Package stats computes per-slide derived features and document-level
// roll-ups over the assembled feature tree. Everything here is a pure
// reduction: no I/O, no mutation of the input.
package stats

// Config names every heuristic constant used by feature computation
// and categorization. The defaults reproduce the established training
// corpus; override individual fields to recalibrate.
type Config struct {
	// ReadabilityCharDivisor scales total character count into the
	// readability penalty: score = 100 - chars/divisor, clamped to
	// [0,100].
	ReadabilityCharDivisor float64

	// ColorDiversityCap is the distinct-literal-color count that maps
	// to a diversity of 1.0.
	ColorDiversityCap int

	// GalleryPictureThreshold is the picture count a slide must exceed
	// to be classified as an image gallery.
	GalleryPictureThreshold int

	// TitleHierarchyScore and DefaultHierarchyScore are the
	// visual-hierarchy values with and without a title placeholder.
	TitleHierarchyScore   float64
	DefaultHierarchyScore float64

	// SizeBounds are the normalized-area upper bounds for the XS, S, M
	// and L size categories; anything larger is XL.
	SizeBounds [4]float64

	// VerticalBands are the normalized center-Y upper bounds for the
	// top, upper-mid, mid and lower-mid position categories; anything
	// below is "bottom".
	VerticalBands [4]float64

	// HorizontalBands are the normalized center-X upper bounds for the
	// L and C horizontal categories; anything further right is R.
	HorizontalBands [2]float64

	// TopColorCount is how many colors the global ranking keeps.
	TopColorCount int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		ReadabilityCharDivisor:  10,
		ColorDiversityCap:       10,
		GalleryPictureThreshold: 2,
		TitleHierarchyScore:     0.9,
		DefaultHierarchyScore:   0.5,
		SizeBounds:              [4]float64{0.01, 0.05, 0.15, 0.4},
		VerticalBands:           [4]float64{0.2, 0.4, 0.6, 0.8},
		HorizontalBands:         [2]float64{0.33, 0.67},
		TopColorCount:           10,
	}
}

// SizeCategory buckets a normalized element area.
func (c Config) SizeCategory(area float64) string {
	switch {
	case area < c.SizeBounds[0]:
		return "XS"
	case area < c.SizeBounds[1]:
		return "S"
	case area < c.SizeBounds[2]:
		return "M"
	case area < c.SizeBounds[3]:
		return "L"
	default:
		return "XL"
	}
}

// PositionCategory buckets a normalized vertical center coordinate.
func (c Config) PositionCategory(centerY float64) string {
	switch {
	case centerY < c.VerticalBands[0]:
		return "top"
	case centerY < c.VerticalBands[1]:
		return "upper-mid"
	case centerY < c.VerticalBands[2]:
		return "mid"
	case centerY < c.VerticalBands[3]:
		return "lower-mid"
	default:
		return "bottom"
	}
}

// HorizontalCategory buckets a normalized horizontal center coordinate.
func (c Config) HorizontalCategory(centerX float64) string {
	switch {
	case centerX < c.HorizontalBands[0]:
		return "L"
	case centerX < c.HorizontalBands[1]:
		return "C"
	default:
		return "R"
	}
}
