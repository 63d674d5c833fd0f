package annotate

import (
	"sort"

	"github.com/tsawler/lectern/analysis"
	"github.com/tsawler/lectern/model"
)

// Blocks the screen reader will skip sort to the end; their exact
// position stops mattering once cleanup removes them.
const skippedOrderBucket = 999

// minOverlapRatio is how much of a block an analysis element must cover
// before its reading-order index is trusted.
const minOverlapRatio = 0.5

// optimizeReadingOrder refines the geometric order semantically. When
// precomputed analysis covers a slide it drives the order; otherwise a
// priority heuristic does: title, context, headings, body text, lists,
// tables, figures.
func (e *Engine) optimizeReadingOrder(doc *model.Document) {
	for _, slide := range doc.Slides {
		if sa := e.slideAnalysis(slide.Number); sa != nil {
			if e.applyAnalyzedOrder(slide, sa) {
				continue
			}
		}
		heuristicOrder(slide)
	}
}

func (e *Engine) slideAnalysis(number int) *analysis.SlideAnalysis {
	if e.analysis == nil {
		return nil
	}
	return e.analysis.SlideByNumber(number)
}

// applyAnalyzedOrder matches blocks to analysis elements by bounding
// box overlap and adopts the element indices. Reports false when the
// analysis matched nothing, so the heuristic can take over.
func (e *Engine) applyAnalyzedOrder(slide *model.Slide, sa *analysis.SlideAnalysis) bool {
	if len(sa.ReadingOrder) == 0 {
		return false
	}

	matched := 0
	for _, block := range slide.Blocks {
		if block.BBox == nil {
			continue
		}
		bestRatio := 0.0
		bestIndex := 0
		for _, el := range sa.ReadingOrder {
			region := model.NewBBox(el.BBox[0], el.BBox[1], el.BBox[2], el.BBox[3])
			if ratio := block.BBox.OverlapRatio(region); ratio > bestRatio {
				bestRatio = ratio
				bestIndex = el.Index
			}
		}
		if bestRatio > minOverlapRatio {
			block.ReadingOrder = bestIndex
			matched++
		}
	}
	if matched == 0 {
		return false
	}

	renumber(slide)
	return true
}

// orderKey ranks a block for the heuristic order. Compared
// lexicographically.
type orderKey struct {
	group int
	sub   int
	y     float64
}

func (k orderKey) less(o orderKey) bool {
	if k.group != o.group {
		return k.group < o.group
	}
	if k.sub != o.sub {
		return k.sub < o.sub
	}
	return k.y < o.y
}

func heuristicKey(b *model.Block) orderKey {
	if b.A11y.Role == model.RoleDecorative || b.A11y.Role == model.RoleRedundant {
		return orderKey{group: skippedOrderBucket}
	}

	y := 0.0
	if b.BBox != nil {
		y = b.BBox.Y
	}

	switch {
	case b.IsTitle():
		return orderKey{group: 0}
	case b.A11y.Role == model.RoleContextual:
		return orderKey{group: 1}
	case b.Type == model.BlockHeading:
		return orderKey{group: 2, sub: b.HeadingLevel}
	case b.Type == model.BlockParagraph:
		return orderKey{group: 3, sub: 0, y: y}
	case b.Type == model.BlockList:
		return orderKey{group: 3, sub: 1, y: y}
	case b.Type == model.BlockTable:
		return orderKey{group: 4, y: y}
	case b.Type == model.BlockFigure:
		return orderKey{group: 5, y: y}
	default:
		return orderKey{group: 6}
	}
}

func heuristicOrder(slide *model.Slide) {
	blocks := make([]*model.Block, len(slide.Blocks))
	copy(blocks, slide.Blocks)
	sort.SliceStable(blocks, func(i, j int) bool {
		return heuristicKey(blocks[i]).less(heuristicKey(blocks[j]))
	})
	for i, b := range blocks {
		b.ReadingOrder = i + 1
	}
}

// renumber rewrites reading orders as 1..N preserving the current
// relative order.
func renumber(slide *model.Slide) {
	for i, b := range slide.SortedBlocks() {
		b.ReadingOrder = i + 1
	}
}
