package pptx

import "encoding/xml"

// presentationXML represents the ppt/presentation.xml file structure.
type presentationXML struct {
	XMLName     xml.Name        `xml:"presentation"`
	SlideIdList *slideIdListXML `xml:"sldIdLst"`
	SlideSz     *slideSzXML     `xml:"sldSz"`
}

type slideIdListXML struct {
	SlideId []slideIdXML `xml:"sldId"`
}

type slideIdXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

type slideSzXML struct {
	Cx int64 `xml:"cx,attr"` // Width in EMUs
	Cy int64 `xml:"cy,attr"` // Height in EMUs
}

// slideXML represents a ppt/slides/slide*.xml file structure.
type slideXML struct {
	XMLName xml.Name `xml:"sld"`
	CSld    cSldXML  `xml:"cSld"`
}

type cSldXML struct {
	SpTree spTreeXML `xml:"spTree"`
}

// spTreeXML represents the shape tree containing all shapes on a slide.
// Children decode in document order, which downstream ordering uses as
// the tie-break when geometry cannot decide.
type spTreeXML struct {
	NvGrpSpPr nvGrpSpPrXML
	Shapes    []shapeNodeXML
}

// shapeNodeXML is one child of a shape tree. Exactly one field is set,
// according to the element name.
type shapeNodeXML struct {
	Sp           *spXML
	Pic          *picXML
	GraphicFrame *graphicFrameXML
	GrpSp        *grpSpXML
}

// decodeShapeNode decodes el when it is a shape element, reporting
// false for anything else.
func decodeShapeNode(d *xml.Decoder, el xml.StartElement) (shapeNodeXML, bool, error) {
	switch el.Name.Local {
	case "sp":
		var sp spXML
		err := d.DecodeElement(&sp, &el)
		return shapeNodeXML{Sp: &sp}, true, err
	case "pic":
		var pic picXML
		err := d.DecodeElement(&pic, &el)
		return shapeNodeXML{Pic: &pic}, true, err
	case "graphicFrame":
		var gf graphicFrameXML
		err := d.DecodeElement(&gf, &el)
		return shapeNodeXML{GraphicFrame: &gf}, true, err
	case "grpSp":
		var grp grpSpXML
		err := d.DecodeElement(&grp, &el)
		return shapeNodeXML{GrpSp: &grp}, true, err
	}
	return shapeNodeXML{}, false, nil
}

func (t *spTreeXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			node, ok, err := decodeShapeNode(d, el)
			if err != nil {
				return err
			}
			if ok {
				t.Shapes = append(t.Shapes, node)
				continue
			}
			if el.Name.Local == "nvGrpSpPr" {
				if err := d.DecodeElement(&t.NvGrpSpPr, &el); err != nil {
					return err
				}
				continue
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

type nvGrpSpPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

type cNvPrXML struct {
	ID    int    `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Title string `xml:"title,attr"`
	Descr string `xml:"descr,attr"` // authored alternative text
}

// spXML represents a shape element.
type spXML struct {
	NvSpPr nvSpPrXML  `xml:"nvSpPr"`
	SpPr   spPrXML    `xml:"spPr"`
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
	Type string `xml:"type,attr"` // title, body, subTitle, ctrTitle, ...
	Idx  int    `xml:"idx,attr"`
}

type spPrXML struct {
	Xfrm *xfrmXML `xml:"xfrm"`
}

type xfrmXML struct {
	Off   *offXML `xml:"off"`
	Ext   *extXML `xml:"ext"`
	ChOff *offXML `xml:"chOff"` // child coordinate origin, groups only
	ChExt *extXML `xml:"chExt"` // child coordinate extent, groups only
}

type offXML struct {
	X int64 `xml:"x,attr"` // EMUs
	Y int64 `xml:"y,attr"`
}

type extXML struct {
	Cx int64 `xml:"cx,attr"` // EMUs
	Cy int64 `xml:"cy,attr"`
}

// txBodyXML represents text body content.
type txBodyXML struct {
	BodyPr bodyPrXML `xml:"bodyPr"`
	P      []pXML    `xml:"p"`
}

type bodyPrXML struct {
	Anchor string `xml:"anchor,attr"`
}

// pXML represents a paragraph.
type pXML struct {
	PPr        *pPrXML  `xml:"pPr"`
	R          []rXML   `xml:"r"`
	Fld        []fldXML `xml:"fld"`
	EndParaRPr *rPrXML  `xml:"endParaRPr"`
}

type pPrXML struct {
	Lvl       int           `xml:"lvl,attr"`
	Algn      string        `xml:"algn,attr"` // l, ctr, r, just
	BuNone    *struct{}     `xml:"buNone"`
	BuChar    *buCharXML    `xml:"buChar"`
	BuAutoNum *buAutoNumXML `xml:"buAutoNum"`
}

type buCharXML struct {
	Char string `xml:"char,attr"`
}

type buAutoNumXML struct {
	Type    string `xml:"type,attr"`
	StartAt int    `xml:"startAt,attr"`
}

// rXML represents a text run.
type rXML struct {
	RPr *rPrXML `xml:"rPr"`
	T   string  `xml:"t"`
}

type rPrXML struct {
	Lang string `xml:"lang,attr"`
	Sz   int    `xml:"sz,attr"` // hundredths of a point
	B    *int   `xml:"b,attr"`
	I    *int   `xml:"i,attr"`
	U    string `xml:"u,attr"`
}

type fldXML struct {
	Type string `xml:"type,attr"` // slidenum, datetime, ...
	T    string `xml:"t"`
}

// picXML represents a picture element.
type picXML struct {
	NvPicPr  nvPicPrXML  `xml:"nvPicPr"`
	BlipFill blipFillXML `xml:"blipFill"`
	SpPr     spPrXML     `xml:"spPr"`
}

type nvPicPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

type blipFillXML struct {
	Blip blipXML `xml:"blip"`
}

type blipXML struct {
	Embed string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships embed,attr"`
}

// graphicFrameXML represents a graphic frame (tables, charts, diagrams).
type graphicFrameXML struct {
	NvGraphicFramePr nvGraphicFramePrXML `xml:"nvGraphicFramePr"`
	Xfrm             *xfrmXML            `xml:"xfrm"`
	Graphic          graphicXML          `xml:"graphic"`
}

type nvGraphicFramePrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

type graphicXML struct {
	GraphicData graphicDataXML `xml:"graphicData"`
}

type graphicDataXML struct {
	URI string  `xml:"uri,attr"`
	Tbl *tblXML `xml:"tbl"`
}

// tblXML represents a table.
type tblXML struct {
	TblGrid tblGridXML `xml:"tblGrid"`
	Tr      []trXML    `xml:"tr"`
}

type tblGridXML struct {
	GridCol []gridColXML `xml:"gridCol"`
}

type gridColXML struct {
	W int64 `xml:"w,attr"`
}

type trXML struct {
	H  int64   `xml:"h,attr"`
	Tc []tcXML `xml:"tc"`
}

type tcXML struct {
	TxBody   *txBodyXML `xml:"txBody"`
	RowSpan  int        `xml:"rowSpan,attr"`
	GridSpan int        `xml:"gridSpan,attr"`
	VMerge   *int       `xml:"vMerge,attr"`
	HMerge   *int       `xml:"hMerge,attr"`
}

// grpSpXML represents a group of shapes. Like the slide tree, its
// children decode in document order.
type grpSpXML struct {
	NvGrpSpPr nvGrpSpPrXML
	GrpSpPr   grpSpPrXML
	Shapes    []shapeNodeXML
}

func (g *grpSpXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			node, ok, err := decodeShapeNode(d, el)
			if err != nil {
				return err
			}
			if ok {
				g.Shapes = append(g.Shapes, node)
				continue
			}
			switch el.Name.Local {
			case "nvGrpSpPr":
				if err := d.DecodeElement(&g.NvGrpSpPr, &el); err != nil {
					return err
				}
			case "grpSpPr":
				if err := d.DecodeElement(&g.GrpSpPr, &el); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

type grpSpPrXML struct {
	Xfrm *xfrmXML `xml:"xfrm"`
}

// notesSlideXML represents a ppt/notesSlides/notesSlide*.xml file.
type notesSlideXML struct {
	XMLName xml.Name `xml:"notes"`
	CSld    cSldXML  `xml:"cSld"`
}

// relationshipsXML represents .rels files.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// corePropertiesXML represents docProps/core.xml.
type corePropertiesXML struct {
	XMLName     xml.Name `xml:"coreProperties"`
	Title       string   `xml:"title"`
	Subject     string   `xml:"subject"`
	Creator     string   `xml:"creator"`
	Keywords    string   `xml:"keywords"`
	Description string   `xml:"description"`
	Language    string   `xml:"language"`
}

// appPropertiesXML represents docProps/app.xml.
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Application string   `xml:"Application"`
	Company     string   `xml:"Company"`
	Slides      int      `xml:"Slides"`
	Notes       int      `xml:"Notes"`
}
