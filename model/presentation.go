package model

import "time"

// Presentation is the root of the extracted feature tree.
type Presentation struct {
	ID          string // deterministic UUID derived from the filename
	Filename    string
	FileHash    string // truncated SHA-256 of the container bytes
	ExtractedAt time.Time

	Provenance Provenance
	Dimensions Dimensions
	CustomProperties []CustomProperty

	Theme   Theme
	Masters []Master
	Slides  []*Slide
	Stats   GlobalStatistics
}

// Provenance holds document authorship metadata from the core and
// extended property parts.
type Provenance struct {
	Author       string
	CreatedDate  string
	ModifiedDate string
	Revision     string
	Language     string
	Company      string
}

// Dimensions is the slide canvas size in EMUs. All element geometry is
// normalized against these values.
type Dimensions struct {
	Width       int64
	Height      int64
	AspectRatio string // reduced, e.g. "4:3"
}

// CustomProperty is one entry from docProps/custom.xml.
type CustomProperty struct {
	Key   string
	Value string
}

// Theme holds the presentation theme: named color roles, the font
// scheme, and whether effect styles are declared.
type Theme struct {
	Name             string
	Colors           []SchemeColor // ordered by role declaration order
	MajorFont        string
	MinorFont        string
	EffectStyleCount int
}

// SchemeColor maps a theme color slot (dk1, accent3, ...) to its
// semantic role and resolved color.
type SchemeColor struct {
	Name  string // source slot name, e.g. "dk1"
	Role  string // semantic role, e.g. "text1"
	Color Color
}

// Master is a slide master and the layouts it owns.
type Master struct {
	ID      string
	Name    string
	Layouts []Layout
}

// Layout is a slide layout with its placeholder slots.
type Layout struct {
	ID           string
	Name         string
	Placeholders []Placeholder
}

// Placeholder is a layout-defined content slot.
type Placeholder struct {
	Type     string // title, body, subTitle, ...
	Index    string
	Geometry *Geometry
}

// GlobalStatistics are document-level roll-ups over all slides.
type GlobalStatistics struct {
	TotalSlides         int
	LayoutUsage         []LayoutCount
	Roles               []RoleCount
	AvgElementsPerSlide float64
	TopColors           []ColorCount
}

// LayoutCount is one entry of the layout-usage histogram.
type LayoutCount struct {
	Ref   string
	Count int
}

// RoleCount is one entry of the semantic-role histogram.
type RoleCount struct {
	Role  string
	Count int
}

// ColorCount is one entry of the most-used-colors ranking.
type ColorCount struct {
	Hex        string
	Count      int
	Percentage float64
}
