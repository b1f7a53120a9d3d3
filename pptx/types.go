// Package pptx decodes PPTX (Office Open XML Presentation) containers
// into the normalized feature tree.
package pptx

import "encoding/xml"

// XML namespaces used by PPTX parts. Element matching below relies on
// local names, which is unambiguous for the parts decoded here; the
// URIs are needed for namespaced attributes such as r:id.
const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsChart          = "http://schemas.openxmlformats.org/drawingml/2006/chart"
)

// presentationXML represents ppt/presentation.xml.
type presentationXML struct {
	XMLName        xml.Name      `xml:"presentation"`
	SldMasterIdLst *masterIdList `xml:"sldMasterIdLst"`
	SldIdLst       *slideIdList  `xml:"sldIdLst"`
	SldSz          *slideSizeXML `xml:"sldSz"`
}

type masterIdList struct {
	SldMasterId []ridEntryXML `xml:"sldMasterId"`
}

type slideIdList struct {
	SldId []ridEntryXML `xml:"sldId"`
}

type ridEntryXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

type slideSizeXML struct {
	Cx int64 `xml:"cx,attr"` // width in EMUs
	Cy int64 `xml:"cy,attr"`
}

// slideXML represents a ppt/slides/slide*.xml part.
type slideXML struct {
	XMLName    xml.Name       `xml:"sld"`
	Show       string         `xml:"show,attr"` // "0" marks a hidden slide
	CSld       cSldXML        `xml:"cSld"`
	Transition *transitionXML `xml:"transition"`
}

type cSldXML struct {
	Name   string     `xml:"name,attr"`
	Bg     *bgXML     `xml:"bg"`
	SpTree spTreeXML  `xml:"spTree"`
}

type transitionXML struct {
	Spd string `xml:"spd,attr"`
	Dur string `xml:"dur,attr"`
}

type bgXML struct {
	BgPr *bgPrXML `xml:"bgPr"`
}

type bgPrXML struct {
	SolidFill *solidFillXML `xml:"solidFill"`
	GradFill  *gradFillXML  `xml:"gradFill"`
	BlipFill  *blipFillXML  `xml:"blipFill"`
}

// spTreeXML is the shape tree: all top-level content of a slide.
type spTreeXML struct {
	Sp           []spXML           `xml:"sp"`
	Pic          []picXML          `xml:"pic"`
	GraphicFrame []graphicFrameXML `xml:"graphicFrame"`
	GrpSp        []grpSpXML        `xml:"grpSp"`
}

type cNvPrXML struct {
	ID    string `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr"` // accessibility alt text
}

// spXML represents a shape. A shape without its non-visual property
// block carries no identity and is dropped by the extractor.
type spXML struct {
	NvSpPr *nvSpPrXML `xml:"nvSpPr"`
	SpPr   *spPrXML   `xml:"spPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type nvSpPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
	NvPr  nvPrXML  `xml:"nvPr"`
}

type nvPrXML struct {
	Ph *phXML `xml:"ph"`
}

type phXML struct {
	Type string `xml:"type,attr"`
	Idx  string `xml:"idx,attr"`
}

// spPrXML carries the transform, fill and outline of a shape. Fill
// variants are matched as direct children so an outline color is never
// mistaken for a shape fill.
type spPrXML struct {
	Xfrm      *xfrmXML      `xml:"xfrm"`
	NoFill    *struct{}     `xml:"noFill"`
	SolidFill *solidFillXML `xml:"solidFill"`
	GradFill  *gradFillXML  `xml:"gradFill"`
	PattFill  *struct{}     `xml:"pattFill"`
	BlipFill  *blipFillXML  `xml:"blipFill"`
	Ln        *lnXML        `xml:"ln"`
}

type xfrmXML struct {
	Rot   int64   `xml:"rot,attr"`
	FlipH string  `xml:"flipH,attr"`
	FlipV string  `xml:"flipV,attr"`
	Off   *offXML `xml:"off"`
	Ext   *extXML `xml:"ext"`
}

type offXML struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type extXML struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type lnXML struct {
	W         int64         `xml:"w,attr"`
	SolidFill *solidFillXML `xml:"solidFill"`
	PrstDash  *valAttrXML   `xml:"prstDash"`
}

type valAttrXML struct {
	Val string `xml:"val,attr"`
}

// colorChoiceXML is the union of color forms a fill or run can carry.
type colorChoiceXML struct {
	SrgbClr   *srgbClrXML   `xml:"srgbClr"`
	SchemeClr *schemeClrXML `xml:"schemeClr"`
	SysClr    *sysClrXML    `xml:"sysClr"`
	PrstClr   *prstClrXML   `xml:"prstClr"`
}

type srgbClrXML struct {
	Val string `xml:"val,attr"`
}

type schemeClrXML struct {
	Val string `xml:"val,attr"`
}

type sysClrXML struct {
	Val     string `xml:"val,attr"`
	LastClr string `xml:"lastClr,attr"`
}

type prstClrXML struct {
	Val string `xml:"val,attr"`
}

type solidFillXML struct {
	colorChoiceXML
}

type gradFillXML struct {
	GsLst *gsLstXML `xml:"gsLst"`
}

type gsLstXML struct {
	Gs []gsXML `xml:"gs"`
}

// gsXML is one gradient stop; Pos is in 1/1000 percent.
type gsXML struct {
	Pos int64 `xml:"pos,attr"`
	colorChoiceXML
}

type blipFillXML struct {
	Blip *blipXML `xml:"blip"`
}

type blipXML struct {
	Embed string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships embed,attr"`
}

// txBodyXML is the text content of a shape or table cell.
type txBodyXML struct {
	BodyPr *bodyPrXML `xml:"bodyPr"`
	P      []pXML     `xml:"p"`
}

type bodyPrXML struct {
	Anchor string `xml:"anchor,attr"`
}

type pXML struct {
	PPr        *pPrXML `xml:"pPr"`
	R          []rXML  `xml:"r"`
	EndParaRPr *rPrXML `xml:"endParaRPr"`
}

type pPrXML struct {
	Lvl       int           `xml:"lvl,attr"`
	Algn      string        `xml:"algn,attr"`
	LnSpc     *spacingXML   `xml:"lnSpc"`
	SpcBef    *spacingXML   `xml:"spcBef"`
	SpcAft    *spacingXML   `xml:"spcAft"`
	BuNone    *struct{}     `xml:"buNone"`
	BuChar    *buCharXML    `xml:"buChar"`
	BuAutoNum *buAutoNumXML `xml:"buAutoNum"`
}

type spacingXML struct {
	SpcPct *spcValXML `xml:"spcPct"`
	SpcPts *spcValXML `xml:"spcPts"`
}

type spcValXML struct {
	Val int64 `xml:"val,attr"`
}

type buCharXML struct {
	Char string `xml:"char,attr"`
}

type buAutoNumXML struct {
	Type string `xml:"type,attr"`
}

type rXML struct {
	RPr *rPrXML `xml:"rPr"`
	T   string  `xml:"t"`
}

// rPrXML carries run-level character formatting. Sz is hundredths of a
// point; Spc is hundredths of a point of letter spacing; Baseline is
// thousandths of a percent of baseline offset.
type rPrXML struct {
	Lang      string        `xml:"lang,attr"`
	Sz        int64         `xml:"sz,attr"`
	B         string        `xml:"b,attr"`
	I         string        `xml:"i,attr"`
	U         string        `xml:"u,attr"`
	Strike    string        `xml:"strike,attr"`
	Spc       int64         `xml:"spc,attr"`
	Baseline  int           `xml:"baseline,attr"`
	Latin     *latinXML     `xml:"latin"`
	SolidFill *solidFillXML `xml:"solidFill"`
}

type latinXML struct {
	Typeface string `xml:"typeface,attr"`
}

// picXML represents a picture element.
type picXML struct {
	NvPicPr  *nvPicPrXML  `xml:"nvPicPr"`
	BlipFill *blipFillXML `xml:"blipFill"`
	SpPr     *spPrXML     `xml:"spPr"`
}

type nvPicPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

// graphicFrameXML represents a chart, table or other graphic frame.
// Its transform is a direct p:xfrm child rather than living in spPr.
type graphicFrameXML struct {
	NvGraphicFramePr *nvGraphicFramePrXML `xml:"nvGraphicFramePr"`
	Xfrm             *xfrmXML             `xml:"xfrm"`
	Graphic          graphicXML           `xml:"graphic"`
}

type nvGraphicFramePrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

type graphicXML struct {
	GraphicData graphicDataXML `xml:"graphicData"`
}

type graphicDataXML struct {
	URI   string       `xml:"uri,attr"`
	Tbl   *tblXML      `xml:"tbl"`
	Chart *chartRefXML `xml:"chart"`
}

// chartRefXML points a graphic frame at its chart part.
type chartRefXML struct {
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

// tblXML represents an embedded table.
type tblXML struct {
	TblGrid tblGridXML `xml:"tblGrid"`
	Tr      []trXML    `xml:"tr"`
}

type tblGridXML struct {
	GridCol []struct{} `xml:"gridCol"`
}

type trXML struct {
	Tc []tcXML `xml:"tc"`
}

type tcXML struct {
	TxBody *txBodyXML `xml:"txBody"`
}

// grpSpXML represents a group of shapes; groups nest arbitrarily.
type grpSpXML struct {
	NvGrpSpPr *nvGrpSpPrXML `xml:"nvGrpSpPr"`
	GrpSpPr   *spPrXML      `xml:"grpSpPr"`
	Sp        []spXML       `xml:"sp"`
	Pic       []picXML      `xml:"pic"`
	GrpSp     []grpSpXML    `xml:"grpSp"`
}

type nvGrpSpPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

// themeXML represents ppt/theme/theme1.xml.
type themeXML struct {
	XMLName       xml.Name         `xml:"theme"`
	Name          string           `xml:"name,attr"`
	ThemeElements themeElementsXML `xml:"themeElements"`
}

type themeElementsXML struct {
	ClrScheme  clrSchemeXML  `xml:"clrScheme"`
	FontScheme fontSchemeXML `xml:"fontScheme"`
	FmtScheme  fmtSchemeXML  `xml:"fmtScheme"`
}

// clrSchemeXML fixes the twelve theme color slots.
type clrSchemeXML struct {
	Dk1      *colorChoiceXML `xml:"dk1"`
	Lt1      *colorChoiceXML `xml:"lt1"`
	Dk2      *colorChoiceXML `xml:"dk2"`
	Lt2      *colorChoiceXML `xml:"lt2"`
	Accent1  *colorChoiceXML `xml:"accent1"`
	Accent2  *colorChoiceXML `xml:"accent2"`
	Accent3  *colorChoiceXML `xml:"accent3"`
	Accent4  *colorChoiceXML `xml:"accent4"`
	Accent5  *colorChoiceXML `xml:"accent5"`
	Accent6  *colorChoiceXML `xml:"accent6"`
	Hlink    *colorChoiceXML `xml:"hlink"`
	FolHlink *colorChoiceXML `xml:"folHlink"`
}

type fontSchemeXML struct {
	MajorFont fontGroupXML `xml:"majorFont"`
	MinorFont fontGroupXML `xml:"minorFont"`
}

type fontGroupXML struct {
	Latin *latinXML `xml:"latin"`
}

type fmtSchemeXML struct {
	EffectStyleLst effectStyleLstXML `xml:"effectStyleLst"`
}

type effectStyleLstXML struct {
	EffectStyle []struct{} `xml:"effectStyle"`
}

// masterXML represents a ppt/slideMasters/slideMaster*.xml part.
// Layout discovery goes through its relationship manifest.
type masterXML struct {
	XMLName xml.Name `xml:"sldMaster"`
	CSld    cSldXML  `xml:"cSld"`
}

// layoutXML represents a ppt/slideLayouts/slideLayout*.xml part.
type layoutXML struct {
	XMLName xml.Name `xml:"sldLayout"`
	CSld    cSldXML  `xml:"cSld"`
}

// chartSpaceXML represents a ppt/charts/chart*.xml part.
type chartSpaceXML struct {
	XMLName xml.Name  `xml:"chartSpace"`
	Chart   chartXML  `xml:"chart"`
}

type chartXML struct {
	Title    *chartTxHolderXML `xml:"title"`
	PlotArea plotAreaXML       `xml:"plotArea"`
	Legend   *legendXML        `xml:"legend"`
}

// plotAreaXML captures the plot-type children generically; the chart
// type is the local name of the first child that looks like one
// (barChart, lineChart, pie3DChart, ...).
type plotAreaXML struct {
	Children []plotChildXML `xml:",any"`
}

type plotChildXML struct {
	XMLName xml.Name
	Ser     []serXML `xml:"ser"`
}

type serXML struct {
	Tx *chartTxXML `xml:"tx"`
}

type chartTxHolderXML struct {
	Tx *chartTxXML `xml:"tx"`
}

// chartTxXML is chart text: literal rich text or a cached string
// reference into the workbook.
type chartTxXML struct {
	Rich   *richTextXML `xml:"rich"`
	StrRef *strRefXML   `xml:"strRef"`
	V      string       `xml:"v"`
}

type richTextXML struct {
	P []pXML `xml:"p"`
}

type strRefXML struct {
	StrCache *strCacheXML `xml:"strCache"`
}

type strCacheXML struct {
	Pt []cachePtXML `xml:"pt"`
}

type cachePtXML struct {
	V string `xml:"v"`
}

type legendXML struct {
	LegendPos *valAttrXML `xml:"legendPos"`
}

// corePropsXML represents docProps/core.xml.
type corePropsXML struct {
	XMLName  xml.Name `xml:"coreProperties"`
	Creator  string   `xml:"creator"`
	Created  string   `xml:"created"`
	Modified string   `xml:"modified"`
	Revision string   `xml:"revision"`
	Language string   `xml:"language"`
}

// appPropsXML represents docProps/app.xml.
type appPropsXML struct {
	XMLName xml.Name `xml:"Properties"`
	Company string   `xml:"Company"`
}

// customPropsXML represents docProps/custom.xml; only string-typed
// properties are extracted.
type customPropsXML struct {
	XMLName  xml.Name        `xml:"Properties"`
	Property []customPropXML `xml:"property"`
}

type customPropXML struct {
	Name   string  `xml:"name,attr"`
	Lpwstr *string `xml:"lpwstr"`
}
