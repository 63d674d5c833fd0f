// Package pptx provides PPTX (Office Open XML Presentation) container
// parsing. It unpacks slides into raw shape trees with absolute
// millimetre geometry, resolves embedded images and authored alt text,
// and extracts speaker notes and document metadata. Semantic
// interpretation of the shapes happens downstream.
package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/tsawler/lectern/classify"
	"github.com/tsawler/lectern/model"
	"golang.org/x/text/language"
)

// PPTX geometry is expressed in English Metric Units.
const emusPerMM = 36000.0

// Reader provides access to PPTX presentation content.
type Reader struct {
	zipReader    *zip.ReadCloser
	presentation *presentationXML
	slides       []*Slide
	slideRels    map[int]*relationshipsXML
	coreProps    *corePropertiesXML
	appProps     *appPropertiesXML
	runLanguage  string // first run-level lang attribute seen

	widthMM  float64
	heightMM float64
}

// Open opens a PPTX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{
		zipReader: zr,
		slideRels: make(map[int]*relationshipsXML),
		widthMM:   model.DefaultSlideWidthMM,
		heightMM:  model.DefaultSlideHeightMM,
	}

	if err := r.validate(); err != nil {
		zr.Close()
		return nil, err
	}

	if err := r.parsePresentation(); err != nil {
		zr.Close()
		return nil, fmt.Errorf("parsing presentation: %w", err)
	}

	if err := r.parseSlides(); err != nil {
		zr.Close()
		return nil, fmt.Errorf("parsing slides: %w", err)
	}

	// Metadata is optional
	r.parseCoreProperties()
	r.parseAppProperties()

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

// validate checks that required PPTX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"ppt/presentation.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	hasSlide := false
	for name := range fileMap {
		if strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml") {
			hasSlide = true
			break
		}
	}
	if !hasSlide {
		return fmt.Errorf("no slides found in presentation")
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parsePresentation parses the main presentation file and picks up the
// slide size.
func (r *Reader) parsePresentation() error {
	data, err := r.getFileContent("ppt/presentation.xml")
	if err != nil {
		return err
	}

	r.presentation = &presentationXML{}
	if err := xml.Unmarshal(data, r.presentation); err != nil {
		return err
	}

	if sz := r.presentation.SlideSz; sz != nil && sz.Cx > 0 && sz.Cy > 0 {
		r.widthMM = float64(sz.Cx) / emusPerMM
		r.heightMM = float64(sz.Cy) / emusPerMM
	}
	return nil
}

// parseSlides parses all slide files in presentation order. Slides that
// fail to parse are skipped rather than failing the whole document.
func (r *Reader) parseSlides() error {
	slideFiles := make([]string, 0)
	for _, f := range r.zipReader.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			if !strings.Contains(f.Name, "_rels") {
				slideFiles = append(slideFiles, f.Name)
			}
		}
	}

	sort.Slice(slideFiles, func(i, j int) bool {
		return extractSlideNumber(slideFiles[i]) < extractSlideNumber(slideFiles[j])
	})

	r.slides = make([]*Slide, 0, len(slideFiles))

	for _, slidePath := range slideFiles {
		index := len(r.slides)
		r.parseSlideRelationships(slidePath, index)

		slide, err := r.parseSlide(slidePath, index)
		if err != nil {
			continue
		}

		r.parseSlideNotes(index, slide)
		r.slides = append(r.slides, slide)
	}

	if len(r.slides) == 0 {
		return fmt.Errorf("no slides could be parsed")
	}

	return nil
}

// extractSlideNumber extracts the slide number from a path like
// "ppt/slides/slide1.xml".
func extractSlideNumber(path string) int {
	name := strings.TrimPrefix(path, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	var num int
	fmt.Sscanf(name, "%d", &num)
	return num
}

// parseSlide parses a single slide file into raw shapes.
func (r *Reader) parseSlide(slidePath string, index int) (*Slide, error) {
	data, err := r.getFileContent(slidePath)
	if err != nil {
		return nil, err
	}

	var sx slideXML
	if err := xml.Unmarshal(data, &sx); err != nil {
		return nil, err
	}

	slide := &Slide{
		Number:   index + 1,
		WidthMM:  r.widthMM,
		HeightMM: r.heightMM,
	}
	slide.Shapes = r.extractShapes(&sx.CSld.SpTree, identityTransform(), r.slideRels[index])

	return slide, nil
}

// transform maps shape-local millimetre coordinates to absolute slide
// millimetres. Group shapes introduce an offset and scale for their
// children; top-level shapes use the identity.
type transform struct {
	offX, offY     float64
	scaleX, scaleY float64
}

func identityTransform() transform {
	return transform{scaleX: 1, scaleY: 1}
}

func (t transform) apply(x, y, w, h float64) model.BBox {
	return model.NewBBox(
		t.offX+x*t.scaleX,
		t.offY+y*t.scaleY,
		w*t.scaleX,
		h*t.scaleY,
	)
}

// bboxFromXfrm converts an OOXML transform to an absolute bounding box,
// or nil when the shape carries no geometry.
func bboxFromXfrm(xfrm *xfrmXML, t transform) *model.BBox {
	if xfrm == nil || xfrm.Off == nil || xfrm.Ext == nil {
		return nil
	}
	bbox := t.apply(
		float64(xfrm.Off.X)/emusPerMM,
		float64(xfrm.Off.Y)/emusPerMM,
		float64(xfrm.Ext.Cx)/emusPerMM,
		float64(xfrm.Ext.Cy)/emusPerMM,
	)
	return &bbox
}

// extractShapes walks a shape tree and returns raw shapes with absolute
// geometry, preserving the tree's document order. rels resolves
// embedded images for this slide.
func (r *Reader) extractShapes(tree *spTreeXML, t transform, rels *relationshipsXML) []classify.RawShape {
	var shapes []classify.RawShape
	for i := range tree.Shapes {
		if shape := r.shapeFromNode(&tree.Shapes[i], t, rels); shape != nil {
			shapes = append(shapes, *shape)
		}
	}
	return shapes
}

// shapeFromNode converts one shape tree child, or nil when it yields
// nothing readable.
func (r *Reader) shapeFromNode(node *shapeNodeXML, t transform, rels *relationshipsXML) *classify.RawShape {
	switch {
	case node.Sp != nil:
		return r.textShape(node.Sp, t)
	case node.Pic != nil:
		shape := r.pictureShape(node.Pic, t, rels)
		return &shape
	case node.GraphicFrame != nil:
		return r.frameShape(node.GraphicFrame, t)
	case node.GrpSp != nil:
		shape := r.groupShape(node.GrpSp, t, rels)
		return &shape
	}
	return nil
}

// groupShape converts a shape group, composing the group transform onto
// the children so their geometry comes out absolute.
func (r *Reader) groupShape(grp *grpSpXML, t transform, rels *relationshipsXML) classify.RawShape {
	shape := classify.RawShape{
		Kind: classify.ShapeGroup,
		ID:   fmt.Sprintf("%d", grp.NvGrpSpPr.CNvPr.ID),
		Name: grp.NvGrpSpPr.CNvPr.Name,
		BBox: bboxFromXfrm(grp.GrpSpPr.Xfrm, t),
	}

	childT := t
	if xfrm := grp.GrpSpPr.Xfrm; xfrm != nil && xfrm.Off != nil && xfrm.Ext != nil {
		outer := t.apply(
			float64(xfrm.Off.X)/emusPerMM,
			float64(xfrm.Off.Y)/emusPerMM,
			float64(xfrm.Ext.Cx)/emusPerMM,
			float64(xfrm.Ext.Cy)/emusPerMM,
		)

		chOffX, chOffY := float64(xfrm.Off.X)/emusPerMM, float64(xfrm.Off.Y)/emusPerMM
		chExtW, chExtH := float64(xfrm.Ext.Cx)/emusPerMM, float64(xfrm.Ext.Cy)/emusPerMM
		if xfrm.ChOff != nil {
			chOffX = float64(xfrm.ChOff.X) / emusPerMM
			chOffY = float64(xfrm.ChOff.Y) / emusPerMM
		}
		if xfrm.ChExt != nil {
			chExtW = float64(xfrm.ChExt.Cx) / emusPerMM
			chExtH = float64(xfrm.ChExt.Cy) / emusPerMM
		}

		scaleX, scaleY := 1.0, 1.0
		if chExtW > 0 {
			scaleX = outer.Width / chExtW
		}
		if chExtH > 0 {
			scaleY = outer.Height / chExtH
		}
		childT = transform{
			offX:   outer.X - chOffX*scaleX,
			offY:   outer.Y - chOffY*scaleY,
			scaleX: scaleX,
			scaleY: scaleY,
		}
	}

	for i := range grp.Shapes {
		if child := r.shapeFromNode(&grp.Shapes[i], childT, rels); child != nil {
			shape.Children = append(shape.Children, *child)
		}
	}

	return shape
}

// textShape converts a text-bearing shape. Shapes without a text body
// are dropped.
func (r *Reader) textShape(sp *spXML, t transform) *classify.RawShape {
	if sp.TxBody == nil {
		return nil
	}

	shape := &classify.RawShape{
		Kind: classify.ShapeText,
		ID:   fmt.Sprintf("%d", sp.NvSpPr.CNvPr.ID),
		Name: sp.NvSpPr.CNvPr.Name,
		BBox: bboxFromXfrm(sp.SpPr.Xfrm, t),
	}
	if sp.NvSpPr.NvPr.Ph != nil {
		shape.Placeholder = sp.NvSpPr.NvPr.Ph.Type
	}

	for i := range sp.TxBody.P {
		shape.Paragraphs = append(shape.Paragraphs, r.extractParagraph(&sp.TxBody.P[i]))
	}

	return shape
}

// extractParagraph converts a paragraph with its runs, list marker,
// alignment and indent level.
func (r *Reader) extractParagraph(p *pXML) model.Paragraph {
	para := model.Paragraph{}

	if p.PPr != nil {
		para.Level = p.PPr.Lvl
		para.Alignment = alignmentFor(p.PPr.Algn)

		if p.PPr.BuNone == nil {
			switch {
			case p.PPr.BuAutoNum != nil:
				para.Marker = model.ListNumbered
			case p.PPr.BuChar != nil:
				para.Marker = model.ListBullet
			case para.Level > 0:
				// indented items default to bullets in PowerPoint
				para.Marker = model.ListBullet
			}
		}
	}

	for _, run := range p.R {
		tr := model.TextRun{Text: run.T}
		if run.RPr != nil {
			tr.Bold = run.RPr.B != nil && *run.RPr.B == 1
			tr.Italic = run.RPr.I != nil && *run.RPr.I == 1
			tr.Underline = run.RPr.U != "" && run.RPr.U != "none"
			tr.FontSize = float64(run.RPr.Sz) / 100.0
			if r.runLanguage == "" && run.RPr.Lang != "" {
				r.runLanguage = run.RPr.Lang
			}
		}
		para.Runs = append(para.Runs, tr)
	}

	// Field values, such as rendered slide numbers, read like any other
	// run downstream.
	for _, fld := range p.Fld {
		if fld.T != "" {
			para.Runs = append(para.Runs, model.TextRun{Text: fld.T})
		}
	}

	return para
}

func alignmentFor(algn string) model.TextAlignment {
	switch algn {
	case "ctr":
		return model.AlignCenter
	case "r":
		return model.AlignRight
	case "just":
		return model.AlignJustify
	default:
		return model.AlignLeft
	}
}

// pictureShape converts a picture element, resolving the embedded image
// bytes through the slide's relationships.
func (r *Reader) pictureShape(pic *picXML, t transform, rels *relationshipsXML) classify.RawShape {
	shape := classify.RawShape{
		Kind:    classify.ShapePicture,
		ID:      fmt.Sprintf("%d", pic.NvPicPr.CNvPr.ID),
		Name:    pic.NvPicPr.CNvPr.Name,
		AltText: pic.NvPicPr.CNvPr.Descr,
		BBox:    bboxFromXfrm(pic.SpPr.Xfrm, t),
	}
	if shape.AltText == "" {
		shape.AltText = pic.NvPicPr.CNvPr.Title
	}

	if embed := pic.BlipFill.Blip.Embed; embed != "" && rels != nil {
		shape.ImageData, shape.ImageName = r.resolveImage(rels, embed)
	}

	return shape
}

// resolveImage follows a relationship ID to the embedded media file.
func (r *Reader) resolveImage(rels *relationshipsXML, embedID string) ([]byte, string) {
	for _, rel := range rels.Relationship {
		if rel.ID != embedID {
			continue
		}
		target := rel.Target
		if strings.HasPrefix(target, "../") {
			target = "ppt/" + strings.TrimPrefix(target, "../")
		} else if !strings.HasPrefix(target, "ppt/") {
			target = "ppt/slides/" + target
		}
		data, err := r.getFileContent(path.Clean(target))
		if err != nil {
			return nil, path.Base(target)
		}
		return data, path.Base(target)
	}
	return nil, ""
}

// frameShape converts a graphic frame: a table when it holds one, a
// chart shape for chart and diagram payloads, nothing otherwise.
func (r *Reader) frameShape(gf *graphicFrameXML, t transform) *classify.RawShape {
	shape := &classify.RawShape{
		ID:   fmt.Sprintf("%d", gf.NvGraphicFramePr.CNvPr.ID),
		Name: gf.NvGraphicFramePr.CNvPr.Name,
		BBox: bboxFromXfrm(gf.Xfrm, t),
	}

	switch {
	case gf.Graphic.GraphicData.Tbl != nil:
		shape.Kind = classify.ShapeTable
		shape.Table = r.extractTable(gf.Graphic.GraphicData.Tbl)
	case strings.Contains(gf.Graphic.GraphicData.URI, "/chart"),
		strings.Contains(gf.Graphic.GraphicData.URI, "/diagram"):
		shape.Kind = classify.ShapeChart
		shape.AltText = gf.NvGraphicFramePr.CNvPr.Descr
	default:
		return nil
	}

	return shape
}

// extractTable converts an OOXML table. Merge continuation cells come
// through as empty cells so row geometry stays rectangular; the spans on
// the origin cell describe the merge.
func (r *Reader) extractTable(tbl *tblXML) *model.Table {
	table := &model.Table{}

	for _, tr := range tbl.Tr {
		row := make([]model.TableCell, 0, len(tr.Tc))
		for _, tc := range tr.Tc {
			cell := model.TableCell{RowSpan: tc.RowSpan, ColSpan: tc.GridSpan}
			if cell.RowSpan < 1 {
				cell.RowSpan = 1
			}
			if cell.ColSpan < 1 {
				cell.ColSpan = 1
			}

			if tc.TxBody != nil && tc.VMerge == nil && tc.HMerge == nil {
				for i := range tc.TxBody.P {
					para := r.extractParagraph(&tc.TxBody.P[i])
					if !para.IsEmpty() {
						cell.Paragraphs = append(cell.Paragraphs, para)
					}
				}
			}

			row = append(row, cell)
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// parseSlideRelationships parses the relationships for a slide.
func (r *Reader) parseSlideRelationships(slidePath string, index int) {
	dir := path.Dir(slidePath)
	base := path.Base(slidePath)
	relsPath := path.Join(dir, "_rels", base+".rels")

	data, err := r.getFileContent(relsPath)
	if err != nil {
		return
	}

	rels := &relationshipsXML{}
	if err := xml.Unmarshal(data, rels); err != nil {
		return
	}

	r.slideRels[index] = rels
}

// parseSlideNotes parses speaker notes for a slide.
func (r *Reader) parseSlideNotes(index int, slide *Slide) {
	rels := r.slideRels[index]
	if rels == nil {
		return
	}

	var notesPath string
	for _, rel := range rels.Relationship {
		if strings.Contains(rel.Type, "notesSlide") {
			notesPath = rel.Target
			break
		}
	}
	if notesPath == "" {
		return
	}

	if strings.HasPrefix(notesPath, "../") {
		notesPath = "ppt/" + strings.TrimPrefix(notesPath, "../")
	} else if !strings.HasPrefix(notesPath, "ppt/") {
		notesPath = "ppt/slides/" + notesPath
	}

	data, err := r.getFileContent(notesPath)
	if err != nil {
		return
	}

	var notes notesSlideXML
	if err := xml.Unmarshal(data, &notes); err != nil {
		return
	}

	var text strings.Builder
	for i := range notes.CSld.SpTree.Shapes {
		sp := notes.CSld.SpTree.Shapes[i].Sp
		if sp == nil {
			continue
		}
		// The notes page mirrors the slide thumbnail and slide number;
		// only the body placeholder holds the spoken notes.
		if sp.NvSpPr.NvPr.Ph != nil {
			switch sp.NvSpPr.NvPr.Ph.Type {
			case "sldImg", "sldNum":
				continue
			}
		}
		if sp.TxBody == nil {
			continue
		}
		for j := range sp.TxBody.P {
			para := r.extractParagraph(&sp.TxBody.P[j])
			if para.IsEmpty() {
				continue
			}
			if text.Len() > 0 {
				text.WriteString("\n")
			}
			text.WriteString(para.Text())
		}
	}

	slide.Notes = strings.TrimSpace(text.String())
}

// parseCoreProperties parses Dublin Core metadata.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}

	r.coreProps = &corePropertiesXML{}
	xml.Unmarshal(data, r.coreProps)
}

// parseAppProperties parses application metadata.
func (r *Reader) parseAppProperties() {
	data, err := r.getFileContent("docProps/app.xml")
	if err != nil {
		return
	}

	r.appProps = &appPropertiesXML{}
	xml.Unmarshal(data, r.appProps)
}

// SlideCount returns the number of slides.
func (r *Reader) SlideCount() int {
	return len(r.slides)
}

// Slide returns the slide at the given index (0-indexed).
func (r *Reader) Slide(index int) (*Slide, error) {
	if index < 0 || index >= len(r.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(r.slides)-1)
	}
	return r.slides[index], nil
}

// Slides returns all slides in presentation order.
func (r *Reader) Slides() []*Slide {
	return r.slides
}

// SlideSize returns the slide dimensions in millimetres.
func (r *Reader) SlideSize() (width, height float64) {
	return r.widthMM, r.heightMM
}

// Language returns the presentation's primary language as a normalized
// BCP 47 tag. Document properties win over run-level language marks;
// an empty string means nothing usable was declared.
func (r *Reader) Language() string {
	candidates := []string{r.runLanguage}
	if r.coreProps != nil {
		candidates = []string{r.coreProps.Language, r.runLanguage}
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		tag, err := language.Parse(c)
		if err != nil {
			continue
		}
		base, conf := tag.Base()
		if conf == language.No {
			continue
		}
		return base.String()
	}
	return ""
}

// Metadata returns document metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{}
	if r.coreProps != nil {
		meta.Title = r.coreProps.Title
		meta.Author = r.coreProps.Creator
		meta.Subject = r.coreProps.Subject
		if r.coreProps.Keywords != "" {
			meta.Keywords = strings.Split(r.coreProps.Keywords, ",")
			for i, kw := range meta.Keywords {
				meta.Keywords[i] = strings.TrimSpace(kw)
			}
		}
	}
	if r.appProps != nil {
		meta.Creator = r.appProps.Application
	}
	if lang := r.Language(); lang != "" {
		meta.Language = lang
	}
	return meta
}
