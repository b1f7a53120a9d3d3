package pptx

import (
	"encoding/xml"
	"path"
	"strconv"
	"strings"

	"github.com/tsawler/deckmine/model"
	"github.com/tsawler/deckmine/normalize"
)

// extractSlide builds the feature tree for one slide part. Part-level
// failures degrade to an empty slide with a warning; only the driver
// decides what is fatal.
func (r *Reader) extractSlide(partName string, index int) *model.Slide {
	s := &model.Slide{
		ID:         partStem(partName),
		Index:      index,
		LayoutRef:  "unknown",
		Transition: model.Transition{Type: "none"},
		Background: &model.Background{Type: "none"},
		Role:       model.RoleContent,
	}

	data, err := r.pkg.ReadPart(partName)
	if err != nil {
		r.warnf("slide %s: %v", partName, err)
		return s
	}
	s.Hash = normalize.ContentHash(data)

	var sld slideXML
	if err := xml.Unmarshal(data, &sld); err != nil {
		r.warnf("slide %s: malformed XML: %v", partName, err)
		return s
	}

	s.Hidden = sld.Show == "0"
	s.HasNotes = r.pkg.HasRelationshipOfType(partName, "notesSlide")
	if layouts := r.pkg.RelationshipsOfType(partName, "slideLayout"); len(layouts) > 0 {
		s.LayoutRef = partStem(layouts[0])
	}

	if t := sld.Transition; t != nil {
		s.Transition = model.Transition{Type: "medium", Duration: "500"}
		if t.Spd != "" {
			s.Transition.Type = t.Spd
		}
		if t.Dur != "" {
			s.Transition.Duration = t.Dur
		}
	}

	s.Background = decodeBackground(sld.CSld.Bg)
	s.Elements = r.extractShapeTree(partName, &sld.CSld.SpTree)
	s.Role = r.inferRole(s)

	return s
}

// extractShapeTree walks the four element passes — shapes, pictures,
// graphic frames, groups — with one shared z-order counter. The counter
// advances for every source element, emitted or not, so positional ids
// stay stable when an element is dropped.
func (r *Reader) extractShapeTree(partName string, tree *spTreeXML) []*model.Element {
	var elements []*model.Element
	z := 0
	add := func(el *model.Element) {
		if el != nil {
			r.categorize(el)
			elements = append(elements, el)
		}
	}

	for i := range tree.Sp {
		z++
		add(r.extractShape(partName, &tree.Sp[i], z))
	}
	for i := range tree.Pic {
		z++
		add(r.extractPicture(partName, &tree.Pic[i], z))
	}
	for i := range tree.GraphicFrame {
		z++
		add(r.extractGraphicFrame(partName, &tree.GraphicFrame[i], z))
	}
	for i := range tree.GrpSp {
		z++
		add(r.extractGroup(partName, &tree.GrpSp[i], z))
	}

	return elements
}

func (r *Reader) extractShape(partName string, sp *spXML, z int) *model.Element {
	if sp.NvSpPr == nil {
		r.warnf("slide %s: shape at z-order %d has no naming block, dropped", partName, z)
		return nil
	}

	el := &model.Element{
		ID:      elementID(sp.NvSpPr.CNvPr, z),
		Kind:    model.KindTextbox,
		ZOrder:  z,
		AltText: sp.NvSpPr.CNvPr.Descr,
	}
	if ph := sp.NvSpPr.NvPr.Ph; ph != nil {
		el.Placeholder = &model.PlaceholderRef{Type: ph.Type, Index: ph.Idx}
	}
	if sp.SpPr != nil {
		el.Geometry = r.decodeGeometry(sp.SpPr.Xfrm)
	}
	el.Fill = decodeFill(sp.SpPr)
	el.Stroke = decodeStroke(sp.SpPr)
	el.Text = decodeTextBody(sp.TxBody)
	return el
}

func (r *Reader) extractPicture(partName string, pic *picXML, z int) *model.Element {
	if pic.NvPicPr == nil {
		r.warnf("slide %s: picture at z-order %d has no naming block, dropped", partName, z)
		return nil
	}

	el := &model.Element{
		ID:      elementID(pic.NvPicPr.CNvPr, z),
		Kind:    model.KindPicture,
		ZOrder:  z,
		AltText: pic.NvPicPr.CNvPr.Descr,
	}
	if pic.SpPr != nil {
		el.Geometry = r.decodeGeometry(pic.SpPr.Xfrm)
	}

	if pic.BlipFill != nil && pic.BlipFill.Blip != nil && pic.BlipFill.Blip.Embed != "" {
		if target, ok := r.pkg.ResolveRelationship(partName, pic.BlipFill.Blip.Embed); ok {
			el.Media = &model.MediaRef{
				Path: target,
				Ext:  strings.TrimPrefix(path.Ext(target), "."),
			}
		} else {
			r.warnf("slide %s: picture %s: unresolved media relationship %s",
				partName, el.ID, pic.BlipFill.Blip.Embed)
		}
	}
	return el
}

func (r *Reader) extractGraphicFrame(partName string, gf *graphicFrameXML, z int) *model.Element {
	if gf.NvGraphicFramePr == nil {
		r.warnf("slide %s: graphic frame at z-order %d has no naming block, dropped", partName, z)
		return nil
	}

	el := &model.Element{
		ID:       elementID(gf.NvGraphicFramePr.CNvPr, z),
		Kind:     model.KindGraphic,
		ZOrder:   z,
		AltText:  gf.NvGraphicFramePr.CNvPr.Descr,
		Geometry: r.decodeGeometry(gf.Xfrm),
	}

	data := gf.Graphic.GraphicData
	switch {
	case data.Chart != nil:
		el.Kind = model.KindChart
		el.Chart = r.decodeChartRef(partName, data.Chart.RID)
	case data.Tbl != nil:
		el.Kind = model.KindTable
		el.Table = decodeTable(data.Tbl)
	}
	return el
}

// extractGroup recurses into a group, restarting the z-order counter at
// 1 for the group's own children.
func (r *Reader) extractGroup(partName string, grp *grpSpXML, z int) *model.Element {
	if grp.NvGrpSpPr == nil {
		r.warnf("slide %s: group at z-order %d has no naming block, dropped", partName, z)
		return nil
	}

	el := &model.Element{
		ID:      elementID(grp.NvGrpSpPr.CNvPr, z),
		Kind:    model.KindGroup,
		ZOrder:  z,
		AltText: grp.NvGrpSpPr.CNvPr.Descr,
	}
	if grp.GrpSpPr != nil {
		el.Geometry = r.decodeGeometry(grp.GrpSpPr.Xfrm)
	}
	el.Fill = decodeFill(grp.GrpSpPr)
	el.Stroke = decodeStroke(grp.GrpSpPr)

	cz := 0
	addChild := func(child *model.Element) {
		if child != nil {
			r.categorize(child)
			el.Children = append(el.Children, child)
		}
	}
	for i := range grp.Sp {
		cz++
		addChild(r.extractShape(partName, &grp.Sp[i], cz))
	}
	for i := range grp.Pic {
		cz++
		addChild(r.extractPicture(partName, &grp.Pic[i], cz))
	}
	for i := range grp.GrpSp {
		cz++
		addChild(r.extractGroup(partName, &grp.GrpSp[i], cz))
	}
	return el
}

// decodeTable extracts dimensions and concatenated cell text. The
// column count comes from the first row; the grid declaration backs it
// up for a table with no rows.
func decodeTable(tbl *tblXML) *model.TableDef {
	def := &model.TableDef{Rows: len(tbl.Tr)}
	if len(tbl.Tr) > 0 {
		def.Cols = len(tbl.Tr[0].Tc)
	} else {
		def.Cols = len(tbl.TblGrid.GridCol)
	}

	for _, tr := range tbl.Tr {
		row := make([]string, 0, len(tr.Tc))
		for _, tc := range tr.Tc {
			row = append(row, cellText(tc.TxBody))
		}
		def.Cells = append(def.Cells, row)
	}
	return def
}

func cellText(tx *txBodyXML) string {
	if tx == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range tx.P {
		for _, r := range p.R {
			b.WriteString(r.T)
		}
	}
	return b.String()
}

// decodeGeometry normalizes a transform against the canvas. A missing
// transform yields no geometry at all; a transform missing only its
// offset or extent keeps what it has.
func (r *Reader) decodeGeometry(x *xfrmXML) *model.Geometry {
	if x == nil {
		return nil
	}
	var ox, oy, ew, eh int64
	hasOff := x.Off != nil
	hasExt := x.Ext != nil
	if hasOff {
		ox, oy = x.Off.X, x.Off.Y
	}
	if hasExt {
		ew, eh = x.Ext.Cx, x.Ext.Cy
	}
	g := normalize.Geometry(ox, oy, ew, eh, hasOff, hasExt,
		x.Rot, xmlBool(x.FlipH), xmlBool(x.FlipV),
		r.dims.Width, r.dims.Height)
	return &g
}

// categorize derives the size and position buckets for an element with
// a full transform.
func (r *Reader) categorize(el *model.Element) {
	g := el.Geometry
	if g == nil || !g.HasOffset || !g.HasExtent {
		return
	}
	el.SizeCategory = r.cfg.SizeCategory(g.Area())
	el.PositionCategory = r.cfg.PositionCategory(g.Y + g.Height/2)
	el.HorizontalCategory = r.cfg.HorizontalCategory(g.X + g.Width/2)
}

// inferRole classifies a slide; rules are ordered and the first match
// wins. Counts cover the whole element tree, group children included.
func (r *Reader) inferRole(s *model.Slide) string {
	if s.Index == 1 {
		return model.RoleTitleSlide
	}
	var charts, tables, pictures int
	var walk func([]*model.Element)
	walk = func(elems []*model.Element) {
		for _, e := range elems {
			switch e.Kind {
			case model.KindChart:
				charts++
			case model.KindTable:
				tables++
			case model.KindPicture:
				pictures++
			}
			walk(e.Children)
		}
	}
	walk(s.Elements)

	switch {
	case charts > 0:
		return model.RoleDataVisualization
	case tables > 0:
		return model.RoleTableContent
	case pictures > r.cfg.GalleryPictureThreshold:
		return model.RoleImageGallery
	default:
		return model.RoleContent
	}
}

// elementID prefers the source id and falls back to the positional
// z-order.
func elementID(pr cNvPrXML, z int) string {
	if pr.ID != "" {
		return pr.ID
	}
	return strconv.Itoa(z)
}

// partStem returns the part filename without directory or extension:
// "ppt/slides/slide1.xml" → "slide1".
func partStem(partName string) string {
	base := path.Base(partName)
	return strings.TrimSuffix(base, path.Ext(base))
}
