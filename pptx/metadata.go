package pptx

import (
	"encoding/xml"

	"github.com/tsawler/deckmine/model"
)

// Property part paths.
const (
	corePropsPart   = "docProps/core.xml"
	appPropsPart    = "docProps/app.xml"
	customPropsPart = "docProps/custom.xml"
)

// decodeProvenance gathers authorship metadata from the core and
// extended property parts. Missing parts produce the documented
// defaults; custom.xml is genuinely optional and missing silently.
func (r *Reader) decodeProvenance() model.Provenance {
	prov := model.Provenance{
		Revision: "1",
		Language: "en-US",
	}

	if data, err := r.pkg.ReadPart(corePropsPart); err != nil {
		r.warnf("core properties: %v", err)
	} else {
		var core corePropsXML
		if err := xml.Unmarshal(data, &core); err != nil {
			r.warnf("core properties: malformed XML: %v", err)
		} else {
			prov.Author = core.Creator
			prov.CreatedDate = core.Created
			prov.ModifiedDate = core.Modified
			if core.Revision != "" {
				prov.Revision = core.Revision
			}
			if core.Language != "" {
				prov.Language = core.Language
			}
		}
	}

	if data, err := r.pkg.ReadPart(appPropsPart); err != nil {
		r.warnf("app properties: %v", err)
	} else {
		var app appPropsXML
		if err := xml.Unmarshal(data, &app); err != nil {
			r.warnf("app properties: malformed XML: %v", err)
		} else {
			prov.Company = app.Company
		}
	}

	return prov
}

// decodeCustomProperties extracts the string-typed entries of
// docProps/custom.xml, declaration order preserved.
func (r *Reader) decodeCustomProperties() []model.CustomProperty {
	data, err := r.pkg.ReadPart(customPropsPart)
	if err != nil {
		return nil
	}
	var custom customPropsXML
	if err := xml.Unmarshal(data, &custom); err != nil {
		r.warnf("custom properties: malformed XML: %v", err)
		return nil
	}

	var props []model.CustomProperty
	for _, p := range custom.Property {
		if p.Lpwstr == nil {
			continue
		}
		props = append(props, model.CustomProperty{Key: p.Name, Value: *p.Lpwstr})
	}
	return props
}
