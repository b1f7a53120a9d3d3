package pptx

import (
	"encoding/xml"

	"github.com/tsawler/deckmine/model"
)

const defaultThemePart = "ppt/theme/theme1.xml"

// themeSlotRoles maps the twelve fixed color scheme slots to their
// semantic roles, in declaration order.
var themeSlotRoles = []struct{ slot, role string }{
	{"dk1", "text1"},
	{"lt1", "background1"},
	{"dk2", "text2"},
	{"lt2", "background2"},
	{"accent1", "accent1"},
	{"accent2", "accent2"},
	{"accent3", "accent3"},
	{"accent4", "accent4"},
	{"accent5", "accent5"},
	{"accent6", "accent6"},
	{"hlink", "hyperlink"},
	{"folHlink", "followed_hyperlink"},
}

// decodeTheme extracts the presentation theme. A missing or malformed
// theme part degrades to the named default with a warning.
func (r *Reader) decodeTheme() model.Theme {
	theme := model.Theme{Name: "Default"}

	partName := defaultThemePart
	if targets := r.pkg.RelationshipsOfType(presentationPart, "theme"); len(targets) > 0 {
		partName = targets[0]
	}

	data, err := r.pkg.ReadPart(partName)
	if err != nil {
		r.warnf("theme: %v", err)
		return theme
	}
	var t themeXML
	if err := xml.Unmarshal(data, &t); err != nil {
		r.warnf("theme %s: malformed XML: %v", partName, err)
		return theme
	}

	if t.Name != "" {
		theme.Name = t.Name
	}

	scheme := t.ThemeElements.ClrScheme
	slots := map[string]*colorChoiceXML{
		"dk1": scheme.Dk1, "lt1": scheme.Lt1,
		"dk2": scheme.Dk2, "lt2": scheme.Lt2,
		"accent1": scheme.Accent1, "accent2": scheme.Accent2,
		"accent3": scheme.Accent3, "accent4": scheme.Accent4,
		"accent5": scheme.Accent5, "accent6": scheme.Accent6,
		"hlink": scheme.Hlink, "folHlink": scheme.FolHlink,
	}
	for _, entry := range themeSlotRoles {
		choice := slots[entry.slot]
		if choice == nil {
			continue
		}
		c := resolveColorChoice(*choice)
		if c == nil {
			continue
		}
		theme.Colors = append(theme.Colors, model.SchemeColor{
			Name:  entry.slot,
			Role:  entry.role,
			Color: *c,
		})
	}

	fonts := t.ThemeElements.FontScheme
	if fonts.MajorFont.Latin != nil {
		theme.MajorFont = fonts.MajorFont.Latin.Typeface
	}
	if fonts.MinorFont.Latin != nil {
		theme.MinorFont = fonts.MinorFont.Latin.Typeface
	}
	theme.EffectStyleCount = len(t.ThemeElements.FmtScheme.EffectStyleLst.EffectStyle)

	return theme
}
