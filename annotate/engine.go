package annotate

import (
	"context"
	"fmt"

	"github.com/tsawler/lectern/analysis"
	"github.com/tsawler/lectern/enrich"
	"github.com/tsawler/lectern/model"
)

// Engine runs the annotation phases over a document. Construct one per
// configuration; a single engine may optimize any number of documents.
type Engine struct {
	config     Config
	capability enrich.Capability // nil = heuristics only
	analysis   *analysis.Document
	lex        lexicon
}

// NewEngine creates an engine without AI capabilities. All phases that
// need one fall back to their heuristics or skip.
func NewEngine(config Config) *Engine {
	return NewEngineWithCapability(config, nil)
}

// NewEngineWithCapability creates an engine holding the single resolved
// capability. Rank and resolve providers with enrich.Resolve before
// construction; the engine never re-probes.
func NewEngineWithCapability(config Config, capability enrich.Capability) *Engine {
	return &Engine{
		config:     config,
		capability: capability,
		lex:        lexiconFor(config.Language),
	}
}

// SetAnalysis supplies precomputed layout analysis consumed by the
// reorder and table phases.
func (e *Engine) SetAnalysis(doc *analysis.Document) {
	e.analysis = doc
}

// runState carries the engine's per-run working data. A fresh state per
// Optimize call keeps engines reusable and runs independent.
type runState struct {
	// footnotes maps normalized markers to footnote text, last
	// definition wins.
	footnotes map[string]string

	// hashSlides maps content hashes to the slide numbers they occur
	// on, in encounter order.
	hashSlides map[string][]int

	// contactSeen records normalized contact strings already shown
	// anywhere in the document.
	contactSeen map[string]bool
}

func newRunState() *runState {
	return &runState{
		footnotes:   make(map[string]string),
		hashSlides:  make(map[string][]int),
		contactSeen: make(map[string]bool),
	}
}

// Optimize runs all enabled phases over the document in place. AI
// failures degrade to heuristics and are not reported; only a nil
// document is an error.
func (e *Engine) Optimize(ctx context.Context, doc *model.Document) error {
	if doc == nil {
		return fmt.Errorf("annotate: nil document")
	}

	st := newRunState()

	e.analyzeContent(doc, st)

	if e.config.DetectDecorative {
		e.markDecorative(ctx, doc)
	}
	if e.config.DetectRedundant {
		e.markRedundant(doc, st)
	}
	e.stripChrome(doc, st)
	if e.config.DetectComplexSlides && e.capability != nil {
		e.simplifyComplexSlides(ctx, doc)
	}
	if e.config.InlineFootnotes {
		e.inlineFootnotes(doc, st)
	}
	if e.config.UseSpeakerNotes {
		e.addNoteContext(ctx, doc)
	}
	if e.config.OptimizeReadingOrder {
		e.optimizeReadingOrder(doc)
	}
	if e.config.NaturalizeTables {
		e.naturalizeTables(ctx, doc)
	}
	if e.config.EnhanceChartAltText {
		e.enhanceChartDescriptions(ctx, doc)
	}
	if e.config.GenerateSummaries {
		e.generateSummaries(ctx, doc)
	}
	if e.config.RemoveSkippable {
		e.cleanup(doc)
	}

	return nil
}
