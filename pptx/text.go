package pptx

import "github.com/tsawler/deckmine/model"

// Defaults applied when run or paragraph properties are absent. These
// mirror the application defaults the source files rely on.
const (
	defaultFontFamily = "Calibri"
	defaultFontSizePt = 18.0
	defaultBullet     = "•"
	defaultAlignment  = "left"
)

var alignmentNames = map[string]string{
	"l":    "left",
	"ctr":  "center",
	"r":    "right",
	"just": "justify",
}

// decodeTextBody converts a shape text body. The body language is
// taken from the first run that declares one.
func decodeTextBody(tx *txBodyXML) *model.TextBody {
	if tx == nil {
		return nil
	}
	body := &model.TextBody{}
	for i := range tx.P {
		p := decodeParagraph(&tx.P[i])
		body.Paragraphs = append(body.Paragraphs, p)
		if body.Language == "" {
			for _, r := range tx.P[i].R {
				if r.RPr != nil && r.RPr.Lang != "" {
					body.Language = r.RPr.Lang
					break
				}
			}
		}
	}
	return body
}

func decodeParagraph(p *pXML) model.Paragraph {
	out := model.Paragraph{
		Alignment: defaultAlignment,
		Bullet:    defaultBullet,
	}

	if pr := p.PPr; pr != nil {
		out.Level = pr.Lvl
		if name, ok := alignmentNames[pr.Algn]; ok {
			out.Alignment = name
		}
		switch {
		case pr.BuNone != nil:
			out.Bullet = ""
		case pr.BuChar != nil:
			out.Bullet = pr.BuChar.Char
		}
		if pr.LnSpc != nil && pr.LnSpc.SpcPct != nil {
			out.LineSpacing = float64(pr.LnSpc.SpcPct.Val) / 100000.0
		}
		if pr.SpcBef != nil && pr.SpcBef.SpcPts != nil {
			out.SpaceBefore = float64(pr.SpcBef.SpcPts.Val) / 100.0
		}
		if pr.SpcAft != nil && pr.SpcAft.SpcPts != nil {
			out.SpaceAfter = float64(pr.SpcAft.SpcPts.Val) / 100.0
		}
	}

	for i := range p.R {
		out.Runs = append(out.Runs, decodeRun(&p.R[i]))
	}

	// An empty paragraph that still carries an end-of-paragraph marker
	// keeps its place in the paragraph sequence as a single empty run.
	if len(out.Runs) == 0 && p.EndParaRPr != nil {
		r := runFromProps(p.EndParaRPr)
		r.Text = ""
		out.Runs = append(out.Runs, r)
	}

	return out
}

func decodeRun(r *rXML) model.Run {
	run := runFromProps(r.RPr)
	run.Text = r.T
	return run
}

func runFromProps(pr *rPrXML) model.Run {
	run := model.Run{
		FontFamily: defaultFontFamily,
		FontSizePt: defaultFontSizePt,
	}
	if pr == nil {
		return run
	}
	run.HasFont = true
	if pr.Latin != nil && pr.Latin.Typeface != "" {
		run.FontFamily = pr.Latin.Typeface
	}
	if pr.Sz > 0 {
		run.FontSizePt = float64(pr.Sz) / 100.0
	}
	run.Bold = xmlBool(pr.B)
	run.Italic = xmlBool(pr.I)
	run.Underline = pr.U != "" && pr.U != "none"
	run.Strike = pr.Strike != "" && pr.Strike != "noStrike"
	if pr.SolidFill != nil {
		run.Color = resolveColorChoice(pr.SolidFill.colorChoiceXML)
	}
	if pr.Spc != 0 {
		run.LetterSpacing = float64(pr.Spc) / 100.0
	}
	run.BaselineOffset = pr.Baseline
	return run
}

// xmlBool reads an OOXML boolean attribute, where "1" and "true" are
// the truthy spellings.
func xmlBool(v string) bool {
	return v == "1" || v == "true"
}
