package stats

import (
	"math"
	"sort"

	"github.com/tsawler/deckmine/model"
)

// ComputeFeatures derives the per-slide metrics from an assembled
// slide. Counts that distinguish element kinds walk the full tree,
// group children included; the element count covers top-level elements
// only, matching the output contract.
func ComputeFeatures(s *model.Slide, cfg Config) model.ComputedFeatures {
	f := model.ComputedFeatures{
		ElementCount: len(s.Elements),
	}

	var textCount, imageCount, chartCount int
	var totalArea float64
	var leftMass, rightMass, topMass, bottomMass float64
	var totalChars int
	literalColors := make(map[string]bool)
	hasTitle := false

	walkElements(s.Elements, func(e *model.Element) {
		switch e.Kind {
		case model.KindTextbox:
			textCount++
		case model.KindPicture:
			imageCount++
		case model.KindChart:
			chartCount++
		}

		if e.IsTitlePlaceholder() {
			hasTitle = true
		}

		if g := e.Geometry; g != nil && g.HasExtent {
			area := g.Area()
			totalArea += area

			if g.HasOffset {
				l, r := splitMass(g.X+g.Width/2, area)
				leftMass += l
				rightMass += r
				tp, bt := splitMass(g.Y+g.Height/2, area)
				topMass += tp
				bottomMass += bt
			}
		}

		if e.Text != nil {
			for _, p := range e.Text.Paragraphs {
				for _, r := range p.Runs {
					totalChars += len(r.Text)
					if r.Color != nil && !r.Color.IsIndirect() {
						literalColors[r.Color.Hex] = true
					}
				}
			}
		}
		if e.Table != nil {
			for _, row := range e.Table.Cells {
				for _, cell := range row {
					totalChars += len(cell)
				}
			}
		}
	})

	// Text-to-image ratio: +Inf when text exists but nothing visual
	// does; 0 when the slide has neither.
	visual := imageCount + chartCount
	switch {
	case visual > 0:
		f.TextToImageRatio = float64(textCount) / float64(visual)
	case textCount > 0:
		f.TextToImageRatio = math.Inf(1)
	default:
		f.TextToImageRatio = 0
	}

	f.WhitespaceRatio = 1.0 - math.Min(totalArea, 1.0)
	if f.WhitespaceRatio < 0 {
		f.WhitespaceRatio = 0
	}

	f.Readability = clamp(100-float64(totalChars)/cfg.ReadabilityCharDivisor, 0, 100)

	f.VisualHierarchy = cfg.DefaultHierarchyScore
	if hasTitle {
		f.VisualHierarchy = cfg.TitleHierarchyScore
	}

	f.ColorDiversity = math.Min(float64(len(literalColors))/float64(cfg.ColorDiversityCap), 1.0)

	f.BalanceHorizontal = balance(leftMass, rightMass)
	f.BalanceVertical = balance(topMass, bottomMass)

	return f
}

// splitMass assigns an element's mass to the two halves of one axis by
// its centroid. A centroid exactly on the midpoint is neutral and
// contributes half to each side.
func splitMass(center, area float64) (low, high float64) {
	switch {
	case center < 0.5:
		return area, 0
	case center > 0.5:
		return 0, area
	default:
		return area / 2, area / 2
	}
}

// balance reports area-weighted symmetry across one axis. Zero total
// mass is perfectly balanced by definition, not an error.
func balance(a, b float64) float64 {
	total := a + b
	if total == 0 {
		return 1.0
	}
	return 1.0 - math.Abs(a-b)/total
}

// ComputeGlobal derives the document-level roll-ups. The slide slice
// must already be in final presentation order.
func ComputeGlobal(slides []*model.Slide, themeColors []model.SchemeColor, cfg Config) model.GlobalStatistics {
	g := model.GlobalStatistics{TotalSlides: len(slides)}

	layoutOrder := []string{}
	layoutCounts := make(map[string]int)
	roleOrder := []string{}
	roleCounts := make(map[string]int)

	colorOrder := []string{}
	colorCounts := make(map[string]int)
	totalColorUses := 0
	countColor := func(c *model.Color) {
		if c == nil || c.IsIndirect() {
			return
		}
		if _, seen := colorCounts[c.Hex]; !seen {
			colorOrder = append(colorOrder, c.Hex)
		}
		colorCounts[c.Hex]++
		totalColorUses++
	}

	// Theme scheme entries participate in the global color pool
	// alongside every literal run color.
	for i := range themeColors {
		countColor(&themeColors[i].Color)
	}

	var totalElements int
	for _, s := range slides {
		ref := s.LayoutRef
		if ref == "" {
			ref = "unknown"
		}
		if _, seen := layoutCounts[ref]; !seen {
			layoutOrder = append(layoutOrder, ref)
		}
		layoutCounts[ref]++

		if _, seen := roleCounts[s.Role]; !seen {
			roleOrder = append(roleOrder, s.Role)
		}
		roleCounts[s.Role]++

		totalElements += s.Features.ElementCount

		walkElements(s.Elements, func(e *model.Element) {
			if e.Text == nil {
				return
			}
			for _, p := range e.Text.Paragraphs {
				for _, r := range p.Runs {
					countColor(r.Color)
				}
			}
		})
	}

	for _, ref := range layoutOrder {
		g.LayoutUsage = append(g.LayoutUsage, model.LayoutCount{Ref: ref, Count: layoutCounts[ref]})
	}
	for _, role := range roleOrder {
		g.Roles = append(g.Roles, model.RoleCount{Role: role, Count: roleCounts[role]})
	}

	if len(slides) > 0 {
		g.AvgElementsPerSlide = float64(totalElements) / float64(len(slides))
	}

	// Rank colors by frequency; the stable sort keeps ties in
	// first-encountered order.
	ranked := make([]model.ColorCount, 0, len(colorOrder))
	for _, hex := range colorOrder {
		ranked = append(ranked, model.ColorCount{Hex: hex, Count: colorCounts[hex]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > cfg.TopColorCount {
		ranked = ranked[:cfg.TopColorCount]
	}
	for i := range ranked {
		if totalColorUses > 0 {
			ranked[i].Percentage = float64(ranked[i].Count) / float64(totalColorUses) * 100
		}
	}
	g.TopColors = ranked

	return g
}

// walkElements visits every element in the tree, depth first, group
// children after their group.
func walkElements(elems []*model.Element, visit func(*model.Element)) {
	for _, e := range elems {
		visit(e)
		if len(e.Children) > 0 {
			walkElements(e.Children, visit)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
