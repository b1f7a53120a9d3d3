package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/tsawler/deckmine/model"
)

// Write serializes the presentation as the versioned training document,
// XML declaration included, indented two spaces.
func Write(p *model.Presentation, w io.Writer) error {
	doc := buildDocument(p)

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing XML header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding training document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flushing training document: %w", err)
	}
	// Trailing newline after the closing root tag.
	_, err := io.WriteString(w, "\n")
	return err
}

// FileName derives the output filename from the input path:
// "deck.pptx" → "deck_training.xml".
func FileName(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_training.xml"
}

func buildDocument(p *model.Presentation) documentXML {
	return documentXML{
		Version:  SchemaVersion,
		Metadata: buildMetadata(p),
		Theme:    buildTheme(p.Theme),
		Masters:  buildMasters(p.Masters),
		Slides:   buildSlides(p.Slides),
		Stats:    buildGlobalStats(p.Stats),
	}
}

func buildMetadata(p *model.Presentation) metadataXML {
	md := metadataXML{
		PresentationID: p.ID,
		Filename:       p.Filename,
		FileHash:       p.FileHash,
		ExtractedAt:    p.ExtractedAt.Format(time.RFC3339),
		Author:         p.Provenance.Author,
		CreatedDate:    p.Provenance.CreatedDate,
		ModifiedDate:   p.Provenance.ModifiedDate,
		Revision:       p.Provenance.Revision,
		Language:       p.Provenance.Language,
		Company:        p.Provenance.Company,
		Dimensions: dimensionsXML{
			Width:       p.Dimensions.Width,
			Height:      p.Dimensions.Height,
			AspectRatio: p.Dimensions.AspectRatio,
		},
	}
	if len(p.CustomProperties) > 0 {
		props := &customsXML{}
		for _, cp := range p.CustomProperties {
			props.Property = append(props.Property, customPropXML{Name: cp.Key, Value: cp.Value})
		}
		md.CustomProps = props
	}
	return md
}

func buildTheme(t model.Theme) themeXML {
	out := themeXML{
		Name:         t.Name,
		MajorFont:    t.MajorFont,
		MinorFont:    t.MinorFont,
		EffectStyles: effectsXML{Count: t.EffectStyleCount},
	}
	for _, sc := range t.Colors {
		out.ColorScheme.Color = append(out.ColorScheme.Color, schemeColorXML{
			Name:          sc.Name,
			Role:          sc.Role,
			colorValueXML: colorValue(sc.Color),
		})
	}
	return out
}

func buildMasters(masters []model.Master) mastersXML {
	var out mastersXML
	for _, m := range masters {
		mx := masterXML{ID: m.ID, Name: m.Name}
		for _, l := range m.Layouts {
			lx := layoutXML{ID: l.ID, Name: l.Name}
			for _, ph := range l.Placeholders {
				px := placeholderXML{Type: ph.Type, Index: ph.Index}
				if ph.Geometry != nil {
					px.Geometry = geometry(ph.Geometry)
				}
				lx.Placeholder = append(lx.Placeholder, px)
			}
			mx.Layout = append(mx.Layout, lx)
		}
		out.Master = append(out.Master, mx)
	}
	return out
}

func buildSlides(slides []*model.Slide) slidesXML {
	out := slidesXML{Count: len(slides)}
	for _, s := range slides {
		out.Slide = append(out.Slide, buildSlide(s))
	}
	return out
}

func buildSlide(s *model.Slide) slideXML {
	sx := slideXML{
		Metadata: slideMetaXML{
			ID:        s.ID,
			Index:     s.Index,
			Hidden:    s.Hidden,
			HasNotes:  s.HasNotes,
			LayoutRef: s.LayoutRef,
			Transition: transitionXML{
				Type:     s.Transition.Type,
				Duration: s.Transition.Duration,
			},
		},
		Role:     s.Role,
		Hash:     s.Hash,
		Elements: buildElements(s.Elements),
		Features: buildFeatures(s.Features),
	}
	// Background is omitted entirely when the slide declares none.
	if s.Background != nil && s.Background.Type != "none" {
		sx.Background = &backgroundXML{Type: s.Background.Type}
		if s.Background.Color != nil {
			sx.Background.Color = color(s.Background.Color)
		}
	}
	return sx
}

func buildElements(elems []*model.Element) elementsXML {
	out := elementsXML{Count: len(elems)}
	for _, e := range elems {
		out.Element = append(out.Element, buildElement(e))
	}
	return out
}

func buildElement(e *model.Element) elementXML {
	ex := elementXML{
		ID:                 e.ID,
		Type:               string(e.Kind),
		ZOrder:             e.ZOrder,
		SizeCategory:       e.SizeCategory,
		PositionCategory:   e.PositionCategory,
		HorizontalCategory: e.HorizontalCategory,
	}
	if e.Geometry != nil {
		ex.Geometry = geometry(e.Geometry)
	}
	if e.Placeholder != nil {
		ex.Placeholder = &phRefXML{Type: e.Placeholder.Type, Index: e.Placeholder.Index}
	}
	if e.Fill != nil {
		ex.Fill = buildFill(e.Fill)
	}
	if e.Stroke != nil {
		ex.Stroke = &strokeXML{
			WidthPt: format2(e.Stroke.WidthPt),
			Dash:    e.Stroke.Dash,
		}
		if e.Stroke.Color != nil {
			ex.Stroke.Color = color(e.Stroke.Color)
		}
	}
	if e.Text != nil {
		ex.Text = buildTextBody(e.Text)
	}
	if e.Media != nil {
		ex.Media = &mediaXML{Path: e.Media.Path, Ext: e.Media.Ext}
	}
	if e.Chart != nil {
		ex.Chart = buildChart(e.Chart)
	}
	if e.Table != nil {
		ex.Table = buildTable(e.Table)
	}
	if len(e.Children) > 0 {
		children := buildElements(e.Children)
		ex.Children = &children
	}
	if e.AltText != "" {
		ex.Access = &accessibilityXML{AltText: e.AltText}
	}
	return ex
}

func buildFill(f *model.Fill) *fillXML {
	fx := &fillXML{Type: f.Type}
	if f.Color != nil {
		fx.Color = color(f.Color)
	}
	if len(f.Stops) > 0 {
		stops := &stopsXML{}
		for _, st := range f.Stops {
			stops.Stop = append(stops.Stop, stopXML{
				Position:      format2(st.Position),
				colorValueXML: colorValue(st.Color),
			})
		}
		fx.Stops = stops
	}
	return fx
}

func buildTextBody(t *model.TextBody) *textBodyXML {
	tx := &textBodyXML{Language: t.Language}
	for _, p := range t.Paragraphs {
		px := paragraphXML{
			Alignment: p.Alignment,
			Level:     p.Level,
			Bullet:    p.Bullet,
		}
		if p.LineSpacing != 0 {
			px.LineSpacing = format2(p.LineSpacing)
		}
		if p.SpaceBefore != 0 {
			px.SpaceBefore = format2(p.SpaceBefore)
		}
		if p.SpaceAfter != 0 {
			px.SpaceAfter = format2(p.SpaceAfter)
		}
		for _, r := range p.Runs {
			rx := runXML{
				Bold:           r.Bold,
				Italic:         r.Italic,
				Underline:      r.Underline,
				Strike:         r.Strike,
				BaselineOffset: r.BaselineOffset,
				Text:           r.Text,
			}
			if r.HasFont {
				rx.FontFamily = r.FontFamily
				rx.FontSizePt = format2(r.FontSizePt)
			}
			if r.LetterSpacing != 0 {
				rx.LetterSpacing = format2(r.LetterSpacing)
			}
			if r.Color != nil {
				rx.Color = color(r.Color)
			}
			px.Run = append(px.Run, rx)
		}
		tx.Paragraph = append(tx.Paragraph, px)
	}
	return tx
}

func buildChart(c *model.ChartDef) *chartXML {
	cx := &chartXML{Type: c.Type, Title: c.Title}
	if c.Legend != nil {
		cx.Legend = &legendXML{Position: c.Legend.Position, Shown: c.Legend.Shown}
	}
	if len(c.Series) > 0 {
		series := &seriesXML{}
		for _, s := range c.Series {
			series.Ser = append(series.Ser, serXML{Index: s.Index, Name: s.Name})
		}
		cx.Series = series
	}
	return cx
}

func buildTable(t *model.TableDef) *tableXML {
	tx := &tableXML{Rows: t.Rows, Cols: t.Cols}
	for _, row := range t.Cells {
		tx.Row = append(tx.Row, rowXML{Cell: row})
	}
	return tx
}

func buildFeatures(f model.ComputedFeatures) featuresXML {
	return featuresXML{
		ElementCount:     f.ElementCount,
		TextToImageRatio: ratio(f.TextToImageRatio),
		WhitespaceRatio:  format2(f.WhitespaceRatio),
		Readability:      format1(f.Readability),
		VisualHierarchy:  format2(f.VisualHierarchy),
		ColorDiversity:   format2(f.ColorDiversity),
		Balance: layoutBalanceXML{
			Horizontal: format2(f.BalanceHorizontal),
			Vertical:   format2(f.BalanceVertical),
		},
	}
}

func buildGlobalStats(g model.GlobalStatistics) globalStatsXML {
	out := globalStatsXML{
		TotalSlides:         g.TotalSlides,
		AvgElementsPerSlide: format1(g.AvgElementsPerSlide),
	}
	for _, lu := range g.LayoutUsage {
		out.LayoutUsage.Layout = append(out.LayoutUsage.Layout, layoutCountXML{Ref: lu.Ref, Count: lu.Count})
	}
	for _, rc := range g.Roles {
		out.SlideRoles.Role = append(out.SlideRoles.Role, roleCountXML{Name: rc.Role, Count: rc.Count})
	}
	for _, cc := range g.TopColors {
		out.ColorPalette.Color = append(out.ColorPalette.Color, paletteColorXML{
			Hex:        cc.Hex,
			Count:      cc.Count,
			Percentage: format1(cc.Percentage),
		})
	}
	return out
}

func geometry(g *model.Geometry) *geometryXML {
	return &geometryXML{
		X:        format6(g.X),
		Y:        format6(g.Y),
		Width:    format6(g.Width),
		Height:   format6(g.Height),
		Rotation: format2(g.Rotation),
		FlipH:    g.FlipH,
		FlipV:    g.FlipV,
	}
}

func color(c *model.Color) *colorXML {
	return &colorXML{colorValueXML: colorValue(*c)}
}

func colorValue(c model.Color) colorValueXML {
	return colorValueXML{
		Hex:  c.Hex,
		R:    c.RGB[0],
		G:    c.RGB[1],
		B:    c.RGB[2],
		LabL: format1(c.Lab[0]),
		LabA: format1(c.Lab[1]),
		LabB: format1(c.Lab[2]),
	}
}

// ratio formats a ratio value, spelling positive infinity as "inf".
func ratio(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return format2(v)
}

func format6(v float64) string { return fmt.Sprintf("%.6f", v) }
func format2(v float64) string { return fmt.Sprintf("%.2f", v) }
func format1(v float64) string { return fmt.Sprintf("%.1f", v) }
