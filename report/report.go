// Package report renders accessibility reports for optimized documents
// as Excel workbooks. The report gives remediation teams a worklist:
// which slides carry narrated tables, which figures still lack
// alternative text, and how much content the optimizer removed from the
// reading flow.
package report

import (
	"fmt"
	"io"

	"github.com/tsawler/lectern/model"
	"github.com/xuri/excelize/v2"
)

const (
	overviewSheet = "Overview"
	slidesSheet   = "Slides"
)

// Write renders the report workbook for doc and saves it to path.
func Write(doc *model.Document, path string) error {
	f, err := build(doc)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// WriteTo renders the report workbook for doc onto w.
func WriteTo(doc *model.Document, w io.Writer) error {
	f, err := build(doc)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func build(doc *model.Document) (*excelize.File, error) {
	if doc == nil {
		return nil, fmt.Errorf("report: nil document")
	}

	f := excelize.NewFile()

	if err := writeOverview(f, doc); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSlides(f, doc); err != nil {
		f.Close()
		return nil, err
	}

	// The workbook opens on the overview.
	index, err := f.GetSheetIndex(overviewSheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(index)

	return f, nil
}

func writeOverview(f *excelize.File, doc *model.Document) error {
	// Rename the default sheet rather than juggling sheet indices.
	if err := f.SetSheetName("Sheet1", overviewSheet); err != nil {
		return err
	}

	totals := tally(doc)

	rows := [][]interface{}{
		{"Title", doc.Metadata.Title},
		{"Author", doc.Metadata.Author},
		{"Subject", doc.Metadata.Subject},
		{"Generator", doc.Metadata.Creator},
		{"Language", doc.Metadata.Language},
		{"Source file", doc.SourceFile},
		{},
		{"Slides", len(doc.Slides)},
		{"Content blocks", totals.blocks},
		{"Narrated tables", totals.narratedTables},
		{"Figures", totals.figures},
		{"Figures lacking alt text", totals.figuresMissingAlt},
		{"Generated context blocks", totals.generatedContext},
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(overviewSheet, cell, &row); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(overviewSheet, "A1", fmt.Sprintf("A%d", len(rows)), bold); err != nil {
		return err
	}
	return f.SetColWidth(overviewSheet, "A", "A", 26)
}

func writeSlides(f *excelize.File, doc *model.Document) error {
	if _, err := f.NewSheet(slidesSheet); err != nil {
		return err
	}

	header := []interface{}{
		"Slide", "Title", "Blocks", "Narrated tables",
		"Figures", "Figures lacking alt text", "Has notes",
	}
	if err := f.SetSheetRow(slidesSheet, "A1", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastCol, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(slidesSheet, "A1", lastCol, bold); err != nil {
		return err
	}

	for i, slide := range doc.Slides {
		st := tallySlide(slide)
		row := []interface{}{
			slide.Number,
			slide.Title(),
			len(slide.Blocks),
			st.narratedTables,
			st.figures,
			st.figuresMissingAlt,
			slide.Notes != "",
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(slidesSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(slidesSheet, "B", "B", 40)
}

type stats struct {
	blocks            int
	narratedTables    int
	figures           int
	figuresMissingAlt int
	generatedContext  int
}

func tally(doc *model.Document) stats {
	var total stats
	for _, slide := range doc.Slides {
		st := tallySlide(slide)
		total.blocks += st.blocks
		total.narratedTables += st.narratedTables
		total.figures += st.figures
		total.figuresMissingAlt += st.figuresMissingAlt
		total.generatedContext += st.generatedContext
	}
	return total
}

func tallySlide(slide *model.Slide) stats {
	var st stats
	st.blocks = len(slide.Blocks)
	for _, b := range slide.Blocks {
		if b.Table() != nil && b.A11y.ScreenReaderText != "" {
			st.narratedTables++
		}
		if fig := b.Figure(); fig != nil {
			st.figures++
			if !fig.HasUsableAltText() {
				st.figuresMissingAlt++
			}
		}
		if b.A11y.Role == model.RoleContextual {
			st.generatedContext++
		}
	}
	return st
}
