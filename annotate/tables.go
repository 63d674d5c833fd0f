package annotate

import (
	"context"
	"fmt"
	"strings"

	"github.com/tsawler/lectern/analysis"
	"github.com/tsawler/lectern/enrich"
	"github.com/tsawler/lectern/model"
)

// Tables up to this size read better cell by cell than summarized.
const (
	maxDeterministicRows = 4
	maxDeterministicCols = 3
)

// naturalizeTables rewrites every table as narration stored in the
// block's ScreenReaderText. Small tables are linearized exactly; larger
// ones are summarized when a completion capability exists.
func (e *Engine) naturalizeTables(ctx context.Context, doc *model.Document) {
	e.applyTableStructures(doc)

	for _, slide := range doc.Slides {
		for _, block := range slide.Blocks {
			table := block.Table()
			if table == nil || len(table.Rows) == 0 {
				continue
			}

			if table.RowCount() <= maxDeterministicRows && table.ColumnCount() <= maxDeterministicCols {
				block.A11y.ScreenReaderText = e.linearizeTable(table)
				continue
			}

			if summary := e.summarizeTable(ctx, table); summary != "" {
				block.A11y.ScreenReaderText = summary
				continue
			}
			block.A11y.ScreenReaderText = e.linearizeTable(table)
		}
	}
}

// applyTableStructures copies header flags and spans from precomputed
// analysis onto table blocks. Structures match positionally: the n-th
// structure describes the n-th table in document order.
func (e *Engine) applyTableStructures(doc *model.Document) {
	if e.analysis == nil || len(e.analysis.Tables) == 0 {
		return
	}

	index := 0
	for _, slide := range doc.Slides {
		for _, block := range slide.Blocks {
			table := block.Table()
			if table == nil {
				continue
			}
			if index < len(e.analysis.Tables) {
				applyStructure(table, &e.analysis.Tables[index])
			}
			index++
		}
	}
}

func applyStructure(table *model.Table, structure *analysis.TableStructure) {
	for _, cell := range structure.Cells {
		if cell.Row >= len(table.Rows) || cell.Col >= len(table.Rows[cell.Row]) {
			continue
		}
		target := &table.Rows[cell.Row][cell.Col]
		target.IsHeader = cell.IsHeader
		if cell.RowSpan > 1 {
			target.RowSpan = cell.RowSpan
		}
		if cell.ColSpan > 1 {
			target.ColSpan = cell.ColSpan
		}
	}
}

// linearizeTable renders a table as deterministic narration:
//
//	Columns: Name, Value | Name: Q1; Value: 100 | Name: Q2; Value: 120
//
// Empty cells are omitted rather than spoken as pauses.
func (e *Engine) linearizeTable(table *model.Table) string {
	var parts []string
	if caption := strings.TrimSpace(table.Caption); caption != "" {
		parts = append(parts, e.lex.tableLabel+": "+caption)
	}

	var headers []string
	var dataRows [][]model.TableCell
	if table.HasHeader() {
		for _, cell := range table.Rows[0] {
			headers = append(headers, strings.TrimSpace(cell.Text()))
		}
		dataRows = table.Rows[1:]
	} else {
		for i := 0; i < table.ColumnCount(); i++ {
			headers = append(headers, fmt.Sprintf("%s %d", e.lex.columnWord, i+1))
		}
		dataRows = table.Rows
	}

	parts = append(parts, e.lex.columnsLabel+": "+strings.Join(headers, ", "))

	for _, row := range dataRows {
		var cells []string
		for i, cell := range row {
			value := strings.TrimSpace(cell.Text())
			if value == "" {
				continue
			}
			header := ""
			if i < len(headers) {
				header = headers[i]
			}
			if header == "" {
				cells = append(cells, value)
			} else {
				cells = append(cells, header+": "+value)
			}
		}
		if len(cells) > 0 {
			parts = append(parts, strings.Join(cells, "; "))
		}
	}

	return strings.Join(parts, " | ")
}

func (e *Engine) summarizeTable(ctx context.Context, table *model.Table) string {
	if e.capability == nil {
		return ""
	}

	prompt := fmt.Sprintf(
		"Summarize this table in two or three sentences for a screen reader, in %s. "+
			"Mention the column meanings and the most important values:\n\n%s",
		e.lex.noteLanguage, e.linearizeTable(table))

	raw, err := e.capability.CompleteText(ctx, prompt)
	if err != nil {
		return ""
	}
	summary := enrich.CleanResponse(raw)
	if len(summary) < 20 {
		return ""
	}
	return summary
}
