package pptx

import (
	"strings"

	"github.com/tsawler/deckmine/model"
	"github.com/tsawler/deckmine/normalize"
)

// encodeColorChoice flattens a color union into the canonical encoded
// form: "#RRGGBB" for literal values, "scheme:<slot>" or "preset:<name>"
// for references that need a theme to resolve. A system color with a
// recorded last-rendered value counts as literal.
func encodeColorChoice(c colorChoiceXML) (string, bool) {
	switch {
	case c.SrgbClr != nil:
		return "#" + strings.ToUpper(c.SrgbClr.Val), true
	case c.SchemeClr != nil:
		return "scheme:" + c.SchemeClr.Val, true
	case c.SysClr != nil:
		if c.SysClr.LastClr != "" {
			return "#" + strings.ToUpper(c.SysClr.LastClr), true
		}
		return "scheme:" + c.SysClr.Val, true
	case c.PrstClr != nil:
		return "preset:" + c.PrstClr.Val, true
	}
	return "", false
}

// resolveColorChoice encodes and canonicalizes a color union.
func resolveColorChoice(c colorChoiceXML) *model.Color {
	encoded, ok := encodeColorChoice(c)
	if !ok {
		return nil
	}
	resolved := normalize.ResolveColor(encoded)
	return &resolved
}

// decodeFill maps the direct fill child of a shape property block to a
// tagged fill. Matching direct children only keeps an outline color
// from masquerading as the shape fill. A property block with no fill
// child reports the "default" type (fill inherited from the theme).
func decodeFill(sp *spPrXML) *model.Fill {
	if sp == nil {
		return &model.Fill{Type: model.FillDefault}
	}
	switch {
	case sp.NoFill != nil:
		return &model.Fill{Type: model.FillNone}
	case sp.SolidFill != nil:
		return &model.Fill{
			Type:  model.FillSolid,
			Color: resolveColorChoice(sp.SolidFill.colorChoiceXML),
		}
	case sp.GradFill != nil:
		return &model.Fill{
			Type:  model.FillGradient,
			Stops: decodeGradientStops(sp.GradFill),
		}
	case sp.PattFill != nil:
		return &model.Fill{Type: model.FillPattern}
	case sp.BlipFill != nil:
		return &model.Fill{Type: model.FillImage}
	}
	return &model.Fill{Type: model.FillDefault}
}

// decodeGradientStops converts gradient stops, positions rescaled from
// thousandths of a percent to [0,1], declaration order preserved.
func decodeGradientStops(g *gradFillXML) []model.GradientStop {
	if g == nil || g.GsLst == nil {
		return nil
	}
	stops := make([]model.GradientStop, 0, len(g.GsLst.Gs))
	for _, gs := range g.GsLst.Gs {
		c := resolveColorChoice(gs.colorChoiceXML)
		if c == nil {
			continue
		}
		stops = append(stops, model.GradientStop{
			Position: float64(gs.Pos) / 100000.0,
			Color:    *c,
		})
	}
	return stops
}

// decodeStroke maps an outline block to a stroke, width converted from
// EMUs to points. No outline means no stroke.
func decodeStroke(sp *spPrXML) *model.Stroke {
	if sp == nil || sp.Ln == nil {
		return nil
	}
	st := &model.Stroke{WidthPt: normalize.EMUToPoints(sp.Ln.W)}
	if sp.Ln.SolidFill != nil {
		st.Color = resolveColorChoice(sp.Ln.SolidFill.colorChoiceXML)
	}
	if sp.Ln.PrstDash != nil {
		st.Dash = sp.Ln.PrstDash.Val
	}
	return st
}

// decodeBackground maps a slide background block. An absent or empty
// block is an explicit "none", not a warning.
func decodeBackground(bg *bgXML) *model.Background {
	if bg == nil || bg.BgPr == nil {
		return &model.Background{Type: "none"}
	}
	switch {
	case bg.BgPr.SolidFill != nil:
		return &model.Background{
			Type:  "solid",
			Color: resolveColorChoice(bg.BgPr.SolidFill.colorChoiceXML),
		}
	case bg.BgPr.GradFill != nil:
		return &model.Background{Type: "gradient"}
	case bg.BgPr.BlipFill != nil:
		return &model.Background{Type: "image"}
	}
	return &model.Background{Type: "none"}
}
