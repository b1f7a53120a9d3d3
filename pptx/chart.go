package pptx

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/tsawler/deckmine/model"
)

// decodeChartRef resolves a chart relationship from a slide and decodes
// the chart part. Every failure degrades to a chart of unknown type so
// the owning element keeps its kind.
func (r *Reader) decodeChartRef(slidePart, rid string) *model.ChartDef {
	unknown := &model.ChartDef{Type: "unknown"}
	if rid == "" {
		return unknown
	}
	target, ok := r.pkg.ResolveRelationship(slidePart, rid)
	if !ok {
		r.warnf("slide %s: unresolved chart relationship %s", slidePart, rid)
		return unknown
	}
	data, err := r.pkg.ReadPart(target)
	if err != nil {
		r.warnf("chart %s: %v", target, err)
		return unknown
	}
	def, err := decodeChart(data)
	if err != nil {
		r.warnf("chart %s: %v", target, err)
		return unknown
	}
	return def
}

// decodeChart parses a chartSpace part. The chart type is the local
// name of the first plot-area child that names one (barChart,
// lineChart, pie3DChart, ...).
func decodeChart(data []byte) (*model.ChartDef, error) {
	var cs chartSpaceXML
	if err := xml.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("malformed XML: %w", err)
	}

	def := &model.ChartDef{Type: "unknown"}

	var plot *plotChildXML
	for i := range cs.Chart.PlotArea.Children {
		child := &cs.Chart.PlotArea.Children[i]
		if strings.Contains(child.XMLName.Local, "Chart") {
			plot = child
			break
		}
	}
	if plot != nil {
		def.Type = plot.XMLName.Local
		for i := range plot.Ser {
			name := chartText(plot.Ser[i].Tx)
			if name == "" {
				name = fmt.Sprintf("Series %d", i+1)
			}
			def.Series = append(def.Series, model.Series{Index: i, Name: name})
		}
	}

	if cs.Chart.Title != nil {
		def.Title = chartText(cs.Chart.Title.Tx)
	}

	if cs.Chart.Legend != nil {
		def.Legend = &model.Legend{Position: "r", Shown: true}
		if cs.Chart.Legend.LegendPos != nil && cs.Chart.Legend.LegendPos.Val != "" {
			def.Legend.Position = cs.Chart.Legend.LegendPos.Val
		}
	}

	return def, nil
}

// chartText flattens chart text, which arrives either as literal rich
// text or as a cached string reference into the source workbook.
func chartText(tx *chartTxXML) string {
	if tx == nil {
		return ""
	}
	if tx.Rich != nil {
		var b strings.Builder
		for _, p := range tx.Rich.P {
			for _, run := range p.R {
				b.WriteString(run.T)
			}
		}
		return b.String()
	}
	if tx.StrRef != nil && tx.StrRef.StrCache != nil && len(tx.StrRef.StrCache.Pt) > 0 {
		return tx.StrRef.StrCache.Pt[0].V
	}
	return tx.V
}
