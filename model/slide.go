package model

// Semantic roles inferred for a slide. The inference rules are ordered
// and first-match-wins.
const (
	RoleTitleSlide        = "title_slide"
	RoleDataVisualization = "data_visualization"
	RoleTableContent      = "table_content"
	RoleImageGallery      = "image_gallery"
	RoleContent           = "content"
)

// Slide is one extracted slide with its elements and derived features.
type Slide struct {
	ID        string // part stem, e.g. "slide1"
	Index     int    // 1-based position in presentation order
	Hidden    bool
	HasNotes  bool
	LayoutRef string // layout part stem, "unknown" when unresolvable

	Transition Transition
	Background *Background
	Role       string
	Hash       string // truncated SHA-256 of the raw slide part

	Elements []*Element
	Features ComputedFeatures
}

// Transition describes the slide transition, or Type "none".
type Transition struct {
	Type     string
	Duration string // milliseconds, as recorded in the source
}

// Background describes the slide background fill.
type Background struct {
	Type  string // none, solid, gradient, image
	Color *Color // resolved color when Type is "solid"
}

// ComputedFeatures are per-slide derived metrics.
type ComputedFeatures struct {
	ElementCount      int
	TextToImageRatio  float64 // may be +Inf (text present, no images/charts)
	WhitespaceRatio   float64
	Readability       float64 // bounded [0,100]
	VisualHierarchy   float64
	ColorDiversity    float64
	BalanceHorizontal float64
	BalanceVertical   float64
}
