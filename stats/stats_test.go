package stats

import (
	"math"
	"testing"

	"github.com/tsawler/deckmine/model"
	"github.com/tsawler/deckmine/normalize"
)

func textbox(runs ...model.Run) *model.Element {
	return &model.Element{
		Kind: model.KindTextbox,
		Text: &model.TextBody{Paragraphs: []model.Paragraph{{Runs: runs}}},
	}
}

func placed(e *model.Element, x, y, w, h float64) *model.Element {
	e.Geometry = &model.Geometry{
		X: x, Y: y, Width: w, Height: h,
		HasOffset: true, HasExtent: true,
	}
	return e
}

func slideOf(elems ...*model.Element) *model.Slide {
	return &model.Slide{Index: 2, Role: model.RoleContent, Elements: elems}
}

func TestComputeFeaturesEmptySlide(t *testing.T) {
	f := ComputeFeatures(slideOf(), DefaultConfig())

	if f.ElementCount != 0 {
		t.Errorf("ElementCount = %d", f.ElementCount)
	}
	if f.TextToImageRatio != 0 {
		t.Errorf("TextToImageRatio = %v, want 0 for no content", f.TextToImageRatio)
	}
	if f.WhitespaceRatio != 1.0 {
		t.Errorf("WhitespaceRatio = %v, want 1.0", f.WhitespaceRatio)
	}
	if f.Readability != 100 {
		t.Errorf("Readability = %v, want 100", f.Readability)
	}
	if f.BalanceHorizontal != 1.0 || f.BalanceVertical != 1.0 {
		t.Errorf("empty slide should be perfectly balanced, got h=%v v=%v",
			f.BalanceHorizontal, f.BalanceVertical)
	}
}

func TestTextToImageRatioBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	// Text but nothing visual: positive infinity.
	f := ComputeFeatures(slideOf(textbox(model.Run{Text: "hi"})), cfg)
	if !math.IsInf(f.TextToImageRatio, 1) {
		t.Errorf("TextToImageRatio = %v, want +Inf", f.TextToImageRatio)
	}

	// Text and one picture: plain ratio.
	f = ComputeFeatures(slideOf(
		textbox(model.Run{Text: "hi"}),
		&model.Element{Kind: model.KindPicture},
	), cfg)
	if f.TextToImageRatio != 1.0 {
		t.Errorf("TextToImageRatio = %v, want 1.0", f.TextToImageRatio)
	}

	// Picture only: zero, not NaN.
	f = ComputeFeatures(slideOf(&model.Element{Kind: model.KindPicture}), cfg)
	if f.TextToImageRatio != 0 {
		t.Errorf("TextToImageRatio = %v, want 0", f.TextToImageRatio)
	}
}

func TestReadabilityClamps(t *testing.T) {
	cfg := DefaultConfig()

	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'a'
	}
	f := ComputeFeatures(slideOf(textbox(model.Run{Text: string(long)})), cfg)
	if f.Readability != 0 {
		t.Errorf("Readability = %v, want clamp to 0", f.Readability)
	}

	f = ComputeFeatures(slideOf(textbox(model.Run{Text: "12345"})), cfg)
	if f.Readability != 99.5 {
		t.Errorf("Readability = %v, want 99.5", f.Readability)
	}
}

func TestReadabilityCountsTableText(t *testing.T) {
	table := &model.Element{
		Kind:  model.KindTable,
		Table: &model.TableDef{Rows: 1, Cols: 2, Cells: [][]string{{"abcde", "fghij"}}},
	}
	f := ComputeFeatures(slideOf(table), DefaultConfig())
	if f.Readability != 99 {
		t.Errorf("Readability = %v, want 99 (10 chars)", f.Readability)
	}
}

func TestVisualHierarchy(t *testing.T) {
	cfg := DefaultConfig()

	f := ComputeFeatures(slideOf(textbox()), cfg)
	if f.VisualHierarchy != cfg.DefaultHierarchyScore {
		t.Errorf("VisualHierarchy = %v, want default", f.VisualHierarchy)
	}

	title := textbox()
	title.Placeholder = &model.PlaceholderRef{Type: "ctrTitle"}
	f = ComputeFeatures(slideOf(title), cfg)
	if f.VisualHierarchy != cfg.TitleHierarchyScore {
		t.Errorf("VisualHierarchy = %v, want title score", f.VisualHierarchy)
	}
}

func TestColorDiversity(t *testing.T) {
	red := normalize.ResolveColor("#FF0000")
	blue := normalize.ResolveColor("#0000FF")
	scheme := normalize.ResolveColor("scheme:accent1")

	f := ComputeFeatures(slideOf(textbox(
		model.Run{Text: "a", Color: &red},
		model.Run{Text: "b", Color: &blue},
		model.Run{Text: "c", Color: &red},     // duplicate
		model.Run{Text: "d", Color: &scheme},  // indirect, not counted
	)), DefaultConfig())

	if f.ColorDiversity != 0.2 {
		t.Errorf("ColorDiversity = %v, want 0.2 (2 distinct / cap 10)", f.ColorDiversity)
	}
}

func TestBalance(t *testing.T) {
	cfg := DefaultConfig()

	// A single element centered exactly on the midpoint is neutral.
	centered := placed(textbox(), 0.4, 0.4, 0.2, 0.2)
	f := ComputeFeatures(slideOf(centered), cfg)
	if f.BalanceHorizontal != 1.0 || f.BalanceVertical != 1.0 {
		t.Errorf("centered slide balance h=%v v=%v, want 1/1",
			f.BalanceHorizontal, f.BalanceVertical)
	}

	// Everything in the top-left corner: both axes fully unbalanced.
	corner := placed(textbox(), 0, 0, 0.2, 0.2)
	f = ComputeFeatures(slideOf(corner), cfg)
	if f.BalanceHorizontal != 0 || f.BalanceVertical != 0 {
		t.Errorf("corner slide balance h=%v v=%v, want 0/0",
			f.BalanceHorizontal, f.BalanceVertical)
	}

	// Mirrored equal-area pair: both axes balanced.
	left := placed(textbox(), 0.1, 0.1, 0.2, 0.2)
	right := placed(textbox(), 0.7, 0.7, 0.2, 0.2)
	f = ComputeFeatures(slideOf(left, right), cfg)
	if f.BalanceHorizontal != 1.0 || f.BalanceVertical != 1.0 {
		t.Errorf("mirrored slide balance h=%v v=%v, want 1/1",
			f.BalanceHorizontal, f.BalanceVertical)
	}
}

func TestWhitespaceRatio(t *testing.T) {
	cfg := DefaultConfig()

	half := placed(textbox(), 0, 0, 1, 0.5)
	f := ComputeFeatures(slideOf(half), cfg)
	if math.Abs(f.WhitespaceRatio-0.5) > 1e-9 {
		t.Errorf("WhitespaceRatio = %v, want 0.5", f.WhitespaceRatio)
	}

	// Overfull slides clamp at zero rather than going negative.
	big := placed(textbox(), 0, 0, 2, 2)
	f = ComputeFeatures(slideOf(big), cfg)
	if f.WhitespaceRatio != 0 {
		t.Errorf("WhitespaceRatio = %v, want 0", f.WhitespaceRatio)
	}
}

func TestElementCountTopLevelOnly(t *testing.T) {
	group := &model.Element{
		Kind: model.KindGroup,
		Children: []*model.Element{
			textbox(model.Run{Text: "a"}),
			textbox(model.Run{Text: "b"}),
		},
	}
	f := ComputeFeatures(slideOf(group), DefaultConfig())
	if f.ElementCount != 1 {
		t.Errorf("ElementCount = %d, want 1 (group children excluded)", f.ElementCount)
	}
	// But nested text still feeds readability.
	if f.Readability != 99.8 {
		t.Errorf("Readability = %v, want 99.8", f.Readability)
	}
}

func TestSizeCategory(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		area float64
		want string
	}{
		{0.001, "XS"},
		{0.03, "S"},
		{0.1, "M"},
		{0.3, "L"},
		{0.5, "XL"},
	}
	for _, tt := range tests {
		if got := cfg.SizeCategory(tt.area); got != tt.want {
			t.Errorf("SizeCategory(%v) = %q, want %q", tt.area, got, tt.want)
		}
	}
}

func TestPositionCategories(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.PositionCategory(0.1); got != "top" {
		t.Errorf("PositionCategory(0.1) = %q", got)
	}
	if got := cfg.PositionCategory(0.95); got != "bottom" {
		t.Errorf("PositionCategory(0.95) = %q", got)
	}
	if got := cfg.HorizontalCategory(0.5); got != "C" {
		t.Errorf("HorizontalCategory(0.5) = %q", got)
	}
}

func TestComputeGlobal(t *testing.T) {
	red := normalize.ResolveColor("#FF0000")
	blue := normalize.ResolveColor("#0000FF")

	s1 := slideOf(textbox(model.Run{Text: "a", Color: &red}))
	s1.Index, s1.LayoutRef, s1.Role = 1, "slideLayout1", model.RoleTitleSlide
	s1.Features.ElementCount = 1

	s2 := slideOf(textbox(model.Run{Text: "b", Color: &red}, model.Run{Text: "c", Color: &blue}))
	s2.Index, s2.LayoutRef, s2.Role = 2, "slideLayout2", model.RoleContent
	s2.Features.ElementCount = 3

	s3 := slideOf()
	s3.Index, s3.LayoutRef, s3.Role = 3, "slideLayout2", model.RoleContent
	s3.Features.ElementCount = 2

	g := ComputeGlobal([]*model.Slide{s1, s2, s3}, nil, DefaultConfig())

	if g.TotalSlides != 3 {
		t.Errorf("TotalSlides = %d", g.TotalSlides)
	}
	if g.AvgElementsPerSlide != 2.0 {
		t.Errorf("AvgElementsPerSlide = %v, want 2.0", g.AvgElementsPerSlide)
	}

	if len(g.LayoutUsage) != 2 || g.LayoutUsage[0].Ref != "slideLayout1" || g.LayoutUsage[1].Count != 2 {
		t.Errorf("LayoutUsage = %+v", g.LayoutUsage)
	}
	if len(g.Roles) != 2 || g.Roles[0].Role != model.RoleTitleSlide || g.Roles[1].Count != 2 {
		t.Errorf("Roles = %+v", g.Roles)
	}

	if len(g.TopColors) != 2 {
		t.Fatalf("TopColors = %+v", g.TopColors)
	}
	if g.TopColors[0].Hex != "#FF0000" || g.TopColors[0].Count != 2 {
		t.Errorf("top color = %+v, want #FF0000 x2", g.TopColors[0])
	}
	if math.Abs(g.TopColors[0].Percentage-200.0/3.0) > 1e-9 {
		t.Errorf("top color percentage = %v", g.TopColors[0].Percentage)
	}
}

func TestComputeGlobalThemeColorsAndTies(t *testing.T) {
	red := normalize.ResolveColor("#FF0000")
	blue := normalize.ResolveColor("#0000FF")

	s := slideOf(textbox(model.Run{Text: "a", Color: &blue}))
	s.Index, s.Role = 1, model.RoleContent
	theme := []model.SchemeColor{{Name: "accent1", Role: "accent1", Color: red}}

	g := ComputeGlobal([]*model.Slide{s}, theme, DefaultConfig())

	// Tie at one use each: first-encountered wins, and the theme pool
	// is seeded before any slide colors.
	if len(g.TopColors) != 2 || g.TopColors[0].Hex != "#FF0000" {
		t.Fatalf("TopColors = %+v", g.TopColors)
	}
	if g.TopColors[0].Percentage != 50.0 {
		t.Errorf("percentage = %v, want 50", g.TopColors[0].Percentage)
	}
}
