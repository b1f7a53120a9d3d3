package export

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/tsawler/deckmine/model"
	"github.com/tsawler/deckmine/normalize"
)

func samplePresentation() *model.Presentation {
	red := normalize.ResolveColor("#FF0000")

	return &model.Presentation{
		ID:          "11111111-2222-3333-4444-555555555555",
		Filename:    "deck.pptx",
		FileHash:    "abcdef0123456789",
		ExtractedAt: time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC),
		Provenance: model.Provenance{
			Author:   "A. Author",
			Revision: "1",
			Language: "en-US",
		},
		Dimensions: model.Dimensions{Width: 9144000, Height: 6858000, AspectRatio: "4:3"},
		Theme: model.Theme{
			Name:   "Office Theme",
			Colors: []model.SchemeColor{{Name: "accent1", Role: "accent1", Color: red}},
		},
		Slides: []*model.Slide{
			{
				ID:         "slide1",
				Index:      1,
				LayoutRef:  "slideLayout1",
				Role:       model.RoleTitleSlide,
				Hash:       "0123456789abcdef",
				Transition: model.Transition{Type: "none"},
				Background: &model.Background{Type: "solid", Color: &red},
				Elements: []*model.Element{
					{
						ID:     "2",
						Kind:   model.KindTextbox,
						ZOrder: 1,
						Geometry: &model.Geometry{
							X: 0.1, Y: 0.1, Width: 0.5, Height: 0.2,
							HasOffset: true, HasExtent: true,
						},
						SizeCategory:       "M",
						PositionCategory:   "top",
						HorizontalCategory: "C",
						AltText:            "title text",
						Text: &model.TextBody{
							Language: "en-US",
							Paragraphs: []model.Paragraph{{
								Alignment: "center",
								Bullet:    "•",
								Runs: []model.Run{{
									Text: "Hello", HasFont: true,
									FontFamily: "Arial", FontSizePt: 44, Bold: true,
								}},
							}},
						},
					},
				},
				Features: model.ComputedFeatures{
					ElementCount:      1,
					TextToImageRatio:  math.Inf(1),
					WhitespaceRatio:   0.9,
					Readability:       99.5,
					VisualHierarchy:   0.9,
					ColorDiversity:    0,
					BalanceHorizontal: 1,
					BalanceVertical:   0,
				},
			},
		},
		Stats: model.GlobalStatistics{
			TotalSlides:         1,
			LayoutUsage:         []model.LayoutCount{{Ref: "slideLayout1", Count: 1}},
			Roles:               []model.RoleCount{{Role: model.RoleTitleSlide, Count: 1}},
			AvgElementsPerSlide: 1,
			TopColors:           []model.ColorCount{{Hex: "#FF0000", Count: 1, Percentage: 100}},
		},
	}
}

func render(t *testing.T) string {
	t.Helper()
	var sb strings.Builder
	if err := Write(samplePresentation(), &sb); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	return sb.String()
}

func TestWriteHeaderAndRoot(t *testing.T) {
	out := render(t)

	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("missing XML declaration: %q", out[:60])
	}
	if !strings.Contains(out, `<presentation_training_data version="1.0">`) {
		t.Error("missing versioned root element")
	}
	if !strings.HasSuffix(out, "</presentation_training_data>\n") {
		t.Error("missing trailing newline after root close")
	}
}

func TestWriteSectionOrder(t *testing.T) {
	out := render(t)

	sections := []string{
		"<document_metadata>",
		"<theme_definition",
		"<slide_masters>",
		"<slides count=\"1\">",
		"<global_statistics>",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		if idx < 0 {
			t.Fatalf("section %q missing", s)
		}
		if idx < last {
			t.Errorf("section %q out of order", s)
		}
		last = idx
	}
}

func TestWriteFormatting(t *testing.T) {
	out := render(t)

	// Geometry at six decimals, scores at two, readability at one.
	if !strings.Contains(out, `x="0.100000"`) || !strings.Contains(out, `width="0.500000"`) {
		t.Error("geometry not formatted to six decimals")
	}
	if !strings.Contains(out, "<whitespace_ratio>0.90</whitespace_ratio>") {
		t.Error("whitespace ratio not formatted to two decimals")
	}
	if !strings.Contains(out, "<readability_score>99.5</readability_score>") {
		t.Error("readability not formatted to one decimal")
	}
	if !strings.Contains(out, "<text_to_image_ratio>inf</text_to_image_ratio>") {
		t.Error("positive infinity not spelled as inf")
	}
	if !strings.Contains(out, "<avg_elements_per_slide>1.0</avg_elements_per_slide>") {
		t.Error("average not formatted to one decimal")
	}
}

func TestWriteColorAttributes(t *testing.T) {
	out := render(t)

	if !strings.Contains(out, `hex="#FF0000"`) {
		t.Error("missing hex attribute")
	}
	if !strings.Contains(out, `r="255"`) || !strings.Contains(out, `lab_l="53.2"`) {
		t.Error("missing RGB or Lab attributes")
	}
}

func TestWriteSlideAndElement(t *testing.T) {
	out := render(t)

	if !strings.Contains(out, `<slide_metadata id="slide1" index="1" hidden="false" has_notes="false" layout_ref="slideLayout1">`) {
		t.Error("slide metadata missing or misordered")
	}
	if !strings.Contains(out, "<semantic_role>title_slide</semantic_role>") {
		t.Error("semantic role missing")
	}
	if !strings.Contains(out, "<slide_hash>0123456789abcdef</slide_hash>") {
		t.Error("slide hash missing")
	}
	if !strings.Contains(out, `<background type="solid">`) {
		t.Error("background missing")
	}
	if !strings.Contains(out, `type="textbox"`) || !strings.Contains(out, `z_order="1"`) {
		t.Error("element attributes missing")
	}
	if !strings.Contains(out, `<accessibility alt_text="title text">`) &&
		!strings.Contains(out, `<accessibility alt_text="title text"/>`) {
		t.Error("accessibility block missing")
	}
	if !strings.Contains(out, ">Hello</run>") {
		t.Error("run text missing")
	}
}

func TestWriteGlobalStats(t *testing.T) {
	out := render(t)

	if !strings.Contains(out, "<total_slides>1</total_slides>") {
		t.Error("total slides missing")
	}
	if !strings.Contains(out, `<layout ref="slideLayout1" count="1">`) &&
		!strings.Contains(out, `<layout ref="slideLayout1" count="1"/>`) {
		t.Error("layout usage missing")
	}
	if !strings.Contains(out, `percentage="100.0"`) {
		t.Error("palette percentage missing")
	}
}

func TestFileName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"deck.pptx", "deck_training.xml"},
		{"/data/in/q3 review.pptx", "q3 review_training.xml"},
		{"noext", "noext_training.xml"},
	}
	for _, tt := range tests {
		if got := FileName(tt.in); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
