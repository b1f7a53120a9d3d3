package model

// ElementKind tags the variant carried by an Element.
type ElementKind string

// Element kinds.
const (
	KindTextbox ElementKind = "textbox"
	KindPicture ElementKind = "picture"
	KindChart   ElementKind = "chart"
	KindTable   ElementKind = "table"
	KindGraphic ElementKind = "graphic" // SmartArt and other graphic frames
	KindGroup   ElementKind = "group"
)

// Element is one shape-tree node. Exactly one of the variant fields
// (Text, Media, Chart, Table, Children) is populated according to Kind;
// the common fields apply to all kinds.
type Element struct {
	ID     string // source id, or the positional z-order when absent
	Kind   ElementKind
	ZOrder int // 1-based; local to the owning slide or group

	Geometry *Geometry // nil for elements without an explicit transform
	Placeholder *PlaceholderRef
	Fill        *Fill   // shapes and groups only
	Stroke      *Stroke // shapes and groups only
	AltText     string

	// Categories derived from geometry against the configured
	// thresholds; empty when the element has no geometry.
	SizeCategory       string
	PositionCategory   string
	HorizontalCategory string

	Text     *TextBody
	Media    *MediaRef
	Chart    *ChartDef
	Table    *TableDef
	Children []*Element // group members, z-ordered from 1
}

// PlaceholderRef links an element to the layout placeholder it fills.
type PlaceholderRef struct {
	Type  string
	Index string
}

// IsTitlePlaceholder reports whether the element occupies a title or
// centered-title slot.
func (e *Element) IsTitlePlaceholder() bool {
	return e.Placeholder != nil &&
		(e.Placeholder.Type == "title" || e.Placeholder.Type == "ctrTitle")
}

// Geometry is an element transform normalized to canvas fractions.
// X and Width divide by the canvas width, Y and Height by the canvas
// height; values outside [0,1] are legitimate for off-canvas content.
type Geometry struct {
	X, Y          float64
	Width, Height float64
	HasOffset     bool // source carried an a:off
	HasExtent     bool // source carried an a:ext
	Rotation      float64 // degrees
	FlipH, FlipV  bool
}

// Area returns the normalized area, zero without an extent.
func (g *Geometry) Area() float64 {
	if g == nil || !g.HasExtent {
		return 0
	}
	return g.Width * g.Height
}

// Fill types.
const (
	FillNone     = "none"
	FillSolid    = "solid"
	FillGradient = "gradient"
	FillPattern  = "pattern"
	FillImage    = "image"
	FillDefault  = "default" // source left the fill unspecified
)

// Fill is a tagged fill variant.
type Fill struct {
	Type  string
	Color *Color         // solid fills
	Stops []GradientStop // gradient fills, in declaration order
}

// GradientStop is one gradient stop with its position as a fraction.
type GradientStop struct {
	Position float64 // [0,1]
	Color    Color
}

// Stroke is an element outline. Width 0 means no visible stroke.
type Stroke struct {
	WidthPt float64
	Color   *Color
	Dash    string
}

// TextBody is the text content of a shape.
type TextBody struct {
	Language   string
	Paragraphs []Paragraph
}

// Paragraph is one text paragraph. An empty source paragraph that
// carries an end-of-paragraph marker yields a single empty Run so the
// paragraph count survives extraction.
type Paragraph struct {
	Alignment   string
	Level       int
	Bullet      string  // bullet character, "" for none
	LineSpacing float64 // multiple of single spacing, 0 when unset
	SpaceBefore float64 // points, 0 when unset
	SpaceAfter  float64 // points, 0 when unset
	Runs        []Run
}

// Run is a contiguous span of identically formatted text.
type Run struct {
	Text string

	HasFont    bool // source carried run properties
	FontFamily string
	FontSizePt float64
	Bold       bool
	Italic     bool
	Underline  bool
	Strike     bool

	Color          *Color
	LetterSpacing  float64 // points, 0 when unset
	BaselineOffset int     // raw source units, 0 when unset
}

// MediaRef points a picture at its media part.
type MediaRef struct {
	Path string // resolved part path
	Ext  string // inferred file extension without the dot
}

// ChartDef is the decoded chart definition.
type ChartDef struct {
	Type   string // barChart, lineChart, pieChart, ...
	Title  string
	Legend *Legend
	Series []Series
}

// Legend describes chart legend placement.
type Legend struct {
	Position string
	Shown    bool
}

// Series is one chart data series; only the name is extracted.
type Series struct {
	Index int
	Name  string
}

// TableDef is the decoded table definition: dimensions plus the
// concatenated text of every cell.
type TableDef struct {
	Rows  int
	Cols  int
	Cells [][]string // [row][col]
}
