package pptx

import (
	"encoding/xml"

	"github.com/tsawler/deckmine/model"
)

// decodeMasters walks the slide masters declared by the presentation
// part and the layouts each master owns. Every failure is local: a
// master or layout that cannot be decoded is skipped with a warning.
func (r *Reader) decodeMasters(pres *presentationXML) []model.Master {
	var parts []string
	if pres != nil && pres.SldMasterIdLst != nil {
		for _, entry := range pres.SldMasterIdLst.SldMasterId {
			if target, ok := r.pkg.ResolveRelationship(presentationPart, entry.RID); ok {
				parts = append(parts, target)
			}
		}
	}
	if len(parts) == 0 {
		parts = r.pkg.RelationshipsOfType(presentationPart, "slideMaster")
	}

	var masters []model.Master
	for _, partName := range parts {
		m, ok := r.decodeMaster(partName)
		if !ok {
			continue
		}
		masters = append(masters, m)
	}
	return masters
}

func (r *Reader) decodeMaster(partName string) (model.Master, bool) {
	data, err := r.pkg.ReadPart(partName)
	if err != nil {
		r.warnf("master %s: %v", partName, err)
		return model.Master{}, false
	}
	var mx masterXML
	if err := xml.Unmarshal(data, &mx); err != nil {
		r.warnf("master %s: malformed XML: %v", partName, err)
		return model.Master{}, false
	}

	m := model.Master{
		ID:   partStem(partName),
		Name: mx.CSld.Name,
	}
	if m.Name == "" {
		m.Name = m.ID
	}

	for _, layoutPart := range r.pkg.RelationshipsOfType(partName, "slideLayout") {
		if l, ok := r.decodeLayout(layoutPart); ok {
			m.Layouts = append(m.Layouts, l)
		}
	}
	return m, true
}

func (r *Reader) decodeLayout(partName string) (model.Layout, bool) {
	data, err := r.pkg.ReadPart(partName)
	if err != nil {
		r.warnf("layout %s: %v", partName, err)
		return model.Layout{}, false
	}
	var lx layoutXML
	if err := xml.Unmarshal(data, &lx); err != nil {
		r.warnf("layout %s: malformed XML: %v", partName, err)
		return model.Layout{}, false
	}

	l := model.Layout{
		ID:   partStem(partName),
		Name: lx.CSld.Name,
	}
	if l.Name == "" {
		l.Name = "Unknown"
	}

	for i := range lx.CSld.SpTree.Sp {
		sp := &lx.CSld.SpTree.Sp[i]
		if sp.NvSpPr == nil || sp.NvSpPr.NvPr.Ph == nil {
			continue
		}
		ph := model.Placeholder{
			Type:  sp.NvSpPr.NvPr.Ph.Type,
			Index: sp.NvSpPr.NvPr.Ph.Idx,
		}
		if ph.Type == "" {
			ph.Type = "body"
		}
		if sp.SpPr != nil {
			ph.Geometry = r.decodeGeometry(sp.SpPr.Xfrm)
		}
		l.Placeholders = append(l.Placeholders, ph)
	}
	return l, true
}
