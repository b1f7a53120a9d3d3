// Package export serializes an extracted presentation as the versioned
// XML training document. All numeric values are formatted to fixed
// precision before marshalling so output is byte-stable across runs.
package export

import "encoding/xml"

// SchemaVersion is stamped on the document root.
const SchemaVersion = "1.0"

type documentXML struct {
	XMLName  xml.Name       `xml:"presentation_training_data"`
	Version  string         `xml:"version,attr"`
	Metadata metadataXML    `xml:"document_metadata"`
	Theme    themeXML       `xml:"theme_definition"`
	Masters  mastersXML     `xml:"slide_masters"`
	Slides   slidesXML      `xml:"slides"`
	Stats    globalStatsXML `xml:"global_statistics"`
}

type metadataXML struct {
	PresentationID string        `xml:"presentation_id"`
	Filename       string        `xml:"filename"`
	FileHash       string        `xml:"file_hash"`
	ExtractedAt    string        `xml:"extracted_at"`
	Author         string        `xml:"author"`
	CreatedDate    string        `xml:"created_date"`
	ModifiedDate   string        `xml:"modified_date"`
	Revision       string        `xml:"revision"`
	Language       string        `xml:"language"`
	Company        string        `xml:"company"`
	Dimensions     dimensionsXML `xml:"slide_dimensions"`
	CustomProps    *customsXML   `xml:"custom_properties,omitempty"`
}

type dimensionsXML struct {
	Width       int64  `xml:"width,attr"`
	Height      int64  `xml:"height,attr"`
	AspectRatio string `xml:"aspect_ratio,attr"`
}

type customsXML struct {
	Property []customPropXML `xml:"property"`
}

type customPropXML struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type themeXML struct {
	Name         string         `xml:"name,attr"`
	ColorScheme  colorSchemeXML `xml:"color_scheme"`
	MajorFont    string         `xml:"major_font"`
	MinorFont    string         `xml:"minor_font"`
	EffectStyles effectsXML     `xml:"effect_styles"`
}

type colorSchemeXML struct {
	Color []schemeColorXML `xml:"color"`
}

type schemeColorXML struct {
	Name string `xml:"name,attr"`
	Role string `xml:"role,attr"`
	colorValueXML
}

// colorValueXML is the shared color attribute set: canonical hex, the
// RGB triple and the Lab coordinates.
type colorValueXML struct {
	Hex  string `xml:"hex,attr"`
	R    int    `xml:"r,attr"`
	G    int    `xml:"g,attr"`
	B    int    `xml:"b,attr"`
	LabL string `xml:"lab_l,attr"`
	LabA string `xml:"lab_a,attr"`
	LabB string `xml:"lab_b,attr"`
}

type effectsXML struct {
	Count int `xml:"count,attr"`
}

type mastersXML struct {
	Master []masterXML `xml:"master"`
}

type masterXML struct {
	ID     string      `xml:"id,attr"`
	Name   string      `xml:"name,attr"`
	Layout []layoutXML `xml:"layout"`
}

type layoutXML struct {
	ID          string           `xml:"id,attr"`
	Name        string           `xml:"name,attr"`
	Placeholder []placeholderXML `xml:"placeholder"`
}

type placeholderXML struct {
	Type     string       `xml:"type,attr"`
	Index    string       `xml:"index,attr,omitempty"`
	Geometry *geometryXML `xml:"geometry,omitempty"`
}

type slidesXML struct {
	Count int        `xml:"count,attr"`
	Slide []slideXML `xml:"slide"`
}

type slideXML struct {
	Metadata   slideMetaXML   `xml:"slide_metadata"`
	Background *backgroundXML `xml:"background,omitempty"`
	Role       string         `xml:"semantic_role"`
	Hash       string         `xml:"slide_hash"`
	Elements   elementsXML    `xml:"elements"`
	Features   featuresXML    `xml:"computed_features"`
}

type slideMetaXML struct {
	ID         string        `xml:"id,attr"`
	Index      int           `xml:"index,attr"`
	Hidden     bool          `xml:"hidden,attr"`
	HasNotes   bool          `xml:"has_notes,attr"`
	LayoutRef  string        `xml:"layout_ref,attr"`
	Transition transitionXML `xml:"transition"`
}

type transitionXML struct {
	Type     string `xml:"type,attr"`
	Duration string `xml:"duration,attr,omitempty"`
}

type backgroundXML struct {
	Type  string    `xml:"type,attr"`
	Color *colorXML `xml:"color,omitempty"`
}

type colorXML struct {
	colorValueXML
}

type elementsXML struct {
	Count   int          `xml:"count,attr"`
	Element []elementXML `xml:"element"`
}

type elementXML struct {
	ID                 string `xml:"id,attr"`
	Type               string `xml:"type,attr"`
	ZOrder             int    `xml:"z_order,attr"`
	SizeCategory       string `xml:"size_category,attr,omitempty"`
	PositionCategory   string `xml:"position_category,attr,omitempty"`
	HorizontalCategory string `xml:"horizontal_category,attr,omitempty"`

	Geometry    *geometryXML      `xml:"geometry,omitempty"`
	Placeholder *phRefXML         `xml:"placeholder,omitempty"`
	Fill        *fillXML          `xml:"fill,omitempty"`
	Stroke      *strokeXML        `xml:"stroke,omitempty"`
	Text        *textBodyXML      `xml:"text_body,omitempty"`
	Media       *mediaXML         `xml:"media_reference,omitempty"`
	Chart       *chartXML         `xml:"chart_definition,omitempty"`
	Table       *tableXML         `xml:"table_definition,omitempty"`
	Children    *elementsXML      `xml:"children,omitempty"`
	Access      *accessibilityXML `xml:"accessibility,omitempty"`
}

type geometryXML struct {
	X        string `xml:"x,attr"`
	Y        string `xml:"y,attr"`
	Width    string `xml:"width,attr"`
	Height   string `xml:"height,attr"`
	Rotation string `xml:"rotation,attr"`
	FlipH    bool   `xml:"flip_h,attr"`
	FlipV    bool   `xml:"flip_v,attr"`
}

type phRefXML struct {
	Type  string `xml:"type,attr"`
	Index string `xml:"index,attr,omitempty"`
}

type fillXML struct {
	Type  string    `xml:"type,attr"`
	Color *colorXML `xml:"color,omitempty"`
	Stops *stopsXML `xml:"gradient_stops,omitempty"`
}

type stopsXML struct {
	Stop []stopXML `xml:"stop"`
}

type stopXML struct {
	Position string `xml:"position,attr"`
	colorValueXML
}

type strokeXML struct {
	WidthPt string    `xml:"width_pt,attr"`
	Dash    string    `xml:"dash,attr,omitempty"`
	Color   *colorXML `xml:"color,omitempty"`
}

type textBodyXML struct {
	Language  string         `xml:"language,attr,omitempty"`
	Paragraph []paragraphXML `xml:"paragraph"`
}

type paragraphXML struct {
	Alignment   string   `xml:"alignment,attr"`
	Level       int      `xml:"level,attr"`
	Bullet      string   `xml:"bullet,attr,omitempty"`
	LineSpacing string   `xml:"line_spacing,attr,omitempty"`
	SpaceBefore string   `xml:"space_before,attr,omitempty"`
	SpaceAfter  string   `xml:"space_after,attr,omitempty"`
	Run         []runXML `xml:"run"`
}

type runXML struct {
	FontFamily     string    `xml:"font_family,attr,omitempty"`
	FontSizePt     string    `xml:"font_size_pt,attr,omitempty"`
	Bold           bool      `xml:"bold,attr"`
	Italic         bool      `xml:"italic,attr"`
	Underline      bool      `xml:"underline,attr"`
	Strike         bool      `xml:"strike,attr"`
	LetterSpacing  string    `xml:"letter_spacing,attr,omitempty"`
	BaselineOffset int       `xml:"baseline_offset,attr,omitempty"`
	Color          *colorXML `xml:"color,omitempty"`
	Text           string    `xml:",chardata"`
}

type mediaXML struct {
	Path string `xml:"path,attr"`
	Ext  string `xml:"ext,attr,omitempty"`
}

type chartXML struct {
	Type   string     `xml:"type,attr"`
	Title  string     `xml:"title,attr,omitempty"`
	Legend *legendXML `xml:"legend,omitempty"`
	Series *seriesXML `xml:"series,omitempty"`
}

type legendXML struct {
	Position string `xml:"position,attr"`
	Shown    bool   `xml:"shown,attr"`
}

type seriesXML struct {
	Ser []serXML `xml:"ser"`
}

type serXML struct {
	Index int    `xml:"index,attr"`
	Name  string `xml:"name,attr"`
}

type tableXML struct {
	Rows int      `xml:"rows,attr"`
	Cols int      `xml:"cols,attr"`
	Row  []rowXML `xml:"row"`
}

type rowXML struct {
	Cell []string `xml:"cell"`
}

type accessibilityXML struct {
	AltText string `xml:"alt_text,attr"`
}

type featuresXML struct {
	ElementCount     int              `xml:"element_count"`
	TextToImageRatio string           `xml:"text_to_image_ratio"`
	WhitespaceRatio  string           `xml:"whitespace_ratio"`
	Readability      string           `xml:"readability_score"`
	VisualHierarchy  string           `xml:"visual_hierarchy_score"`
	ColorDiversity   string           `xml:"color_diversity"`
	Balance          layoutBalanceXML `xml:"layout_balance"`
}

type layoutBalanceXML struct {
	Horizontal string `xml:"horizontal,attr"`
	Vertical   string `xml:"vertical,attr"`
}

type globalStatsXML struct {
	TotalSlides         int             `xml:"total_slides"`
	LayoutUsage         layoutUsageXML  `xml:"layout_usage"`
	SlideRoles          slideRolesXML   `xml:"slide_roles"`
	AvgElementsPerSlide string          `xml:"avg_elements_per_slide"`
	ColorPalette        colorPaletteXML `xml:"color_palette"`
}

type layoutUsageXML struct {
	Layout []layoutCountXML `xml:"layout"`
}

type layoutCountXML struct {
	Ref   string `xml:"ref,attr"`
	Count int    `xml:"count,attr"`
}

type slideRolesXML struct {
	Role []roleCountXML `xml:"role"`
}

type roleCountXML struct {
	Name  string `xml:"name,attr"`
	Count int    `xml:"count,attr"`
}

type colorPaletteXML struct {
	Color []paletteColorXML `xml:"color"`
}

type paletteColorXML struct {
	Hex        string `xml:"hex,attr"`
	Count      int    `xml:"count,attr"`
	Percentage string `xml:"percentage,attr"`
}
