package lectern

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/lectern/analysis"
	"github.com/tsawler/lectern/annotate"
	"github.com/tsawler/lectern/classify"
	"github.com/tsawler/lectern/enrich"
	"github.com/tsawler/lectern/model"
	"github.com/tsawler/lectern/order"
	"github.com/tsawler/lectern/pptx"
	"github.com/tsawler/lectern/report"
)

// Warning describes a non-fatal issue encountered during processing.
// The pipeline degrades rather than fails: a warning means the document
// was produced but one enhancement could not be applied in full.
type Warning struct {
	Code    string
	Message string
}

// Warning codes.
const (
	WarnAltText  = "alt-text"
	WarnAnalysis = "analysis"
	WarnCache    = "cache"
)

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// Pipeline provides a fluent interface for turning a PPTX file into an
// optimized document. Each configuration method returns a new Pipeline
// instance, making it safe for concurrent use and allowing method
// chaining.
type Pipeline struct {
	// Source
	filename string
	reader   *pptx.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options PipelineOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Pipeline with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		filename:     p.filename,
		reader:       p.reader,
		ownsReader:   p.ownsReader,
		readerOpened: p.readerOpened,
		options:      p.options.clone(),
		err:          p.err,
		warnings:     append([]Warning(nil), p.warnings...),
	}
}

// ensureReader opens the reader if not already open.
func (p *Pipeline) ensureReader() error {
	if p.readerOpened {
		return nil
	}
	if p.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	r, err := pptx.Open(p.filename)
	if err != nil {
		return fmt.Errorf("failed to open PPTX: %w", err)
	}
	p.reader = r
	p.ownsReader = true
	p.readerOpened = true
	return nil
}

// Close releases resources associated with the Pipeline.
// It is safe to call Close multiple times.
func (p *Pipeline) Close() error {
	if p.ownsReader && p.reader != nil {
		err := p.reader.Close()
		p.reader = nil
		p.ownsReader = false
		return err
	}
	return nil
}

func (p *Pipeline) warn(code, message string) {
	p.warnings = append(p.warnings, Warning{Code: code, Message: message})
}

// ============================================================================
// Configuration Methods (return new Pipeline instance)
// ============================================================================

// Language overrides the output language (BCP 47 base tag such as "en"
// or "de"). By default the language is detected from the file.
//
// Example:
//
//	doc, _, err := lectern.Open("deck.pptx").Language("de").Optimize(ctx)
func (p *Pipeline) Language(tag string) *Pipeline {
	newPipe := p.clone()
	newPipe.options.language = tag
	return newPipe
}

// Providers supplies AI capabilities in rank order. The first provider
// that answers an availability probe is used for the whole run; with no
// available provider every phase falls back to its heuristics.
// Multiple calls are cumulative.
//
// Example:
//
//	doc, _, err := lectern.Open("deck.pptx").
//	    Providers(visionService, completionService).
//	    Optimize(ctx)
func (p *Pipeline) Providers(providers ...enrich.Capability) *Pipeline {
	newPipe := p.clone()
	newPipe.options.providers = append(newPipe.options.providers, providers...)
	return newPipe
}

// ClassifyConfig replaces the shape classifier configuration.
func (p *Pipeline) ClassifyConfig(cfg classify.Config) *Pipeline {
	newPipe := p.clone()
	newPipe.options.classify = cfg
	return newPipe
}

// OrderConfig replaces the reading order resolver configuration.
func (p *Pipeline) OrderConfig(cfg order.Config) *Pipeline {
	newPipe := p.clone()
	newPipe.options.order = cfg
	return newPipe
}

// AnnotateConfig replaces the annotation engine configuration, selecting
// which optimization phases run. The engine language always follows the
// document language; use Language to override it.
//
// Example:
//
//	cfg := annotate.DefaultConfig()
//	cfg.GenerateSummaries = false
//	doc, _, err := lectern.Open("deck.pptx").AnnotateConfig(cfg).Optimize(ctx)
func (p *Pipeline) AnnotateConfig(cfg annotate.Config) *Pipeline {
	newPipe := p.clone()
	newPipe.options.annotate = cfg
	return newPipe
}

// AnalysisFile supplies precomputed layout analysis (JSON) consumed by
// the reading order and table phases.
func (p *Pipeline) AnalysisFile(path string) *Pipeline {
	newPipe := p.clone()
	newPipe.options.analysisFile = path
	return newPipe
}

// DescriptionCache enables the persistent image description cache at
// path, so repeated figures are described once across runs. Use
// ":memory:" for an ephemeral cache.
func (p *Pipeline) DescriptionCache(path string) *Pipeline {
	newPipe := p.clone()
	newPipe.options.cacheFile = path
	return newPipe
}

// OCRFallback enables the OCR fallback for figure descriptions with the
// given Tesseract language string (e.g. "eng+deu"). Only effective in
// builds with the ocr tag.
func (p *Pipeline) OCRFallback(langs string) *Pipeline {
	newPipe := p.clone()
	newPipe.options.ocrLangs = langs
	return newPipe
}

// SlideCount returns the number of slides in the presentation.
// Note: This does NOT close the reader, allowing further operations.
//
// Example:
//
//	pipe := lectern.Open("deck.pptx")
//	defer pipe.Close()
//	count, err := pipe.SlideCount()
func (p *Pipeline) SlideCount() (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	if err := p.ensureReader(); err != nil {
		return 0, err
	}
	return p.reader.SlideCount(), nil
}

// ============================================================================
// Terminal Operations (execute the pipeline and return results)
// ============================================================================

// Document parses, classifies and orders the presentation without
// running the annotation phases. The result is the raw semantic model:
// every block the file contains, in geometric reading order.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	doc, warnings, err := lectern.Open("deck.pptx").Document()
func (p *Pipeline) Document() (*model.Document, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	if err := p.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer p.Close()

	return p.buildDocument(), p.warnings, nil
}

// Optimize runs the full pipeline: parse, classify, order, generate
// alternative text, and annotate. AI providers are probed once at the
// start; enhancement failures degrade to heuristics and surface as
// warnings rather than errors.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	doc, warnings, err := lectern.Open("deck.pptx").
//	    Providers(vision).
//	    Optimize(ctx)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", lectern.FormatWarnings(warnings))
//	}
func (p *Pipeline) Optimize(ctx context.Context) (*model.Document, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	if err := p.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer p.Close()

	doc := p.buildDocument()

	capability := enrich.Resolve(ctx, p.options.providers...)

	var cache *enrich.Cache
	if p.options.cacheFile != "" {
		c, err := enrich.OpenCache(p.options.cacheFile)
		if err != nil {
			p.warn(WarnCache, err.Error())
		} else {
			cache = c
			defer cache.Close()
		}
	}

	generator := enrich.NewAltTextGenerator(capability, cache, doc.Metadata.Language)
	if p.options.ocrLangs != "" {
		generator.EnableOCRFallback(p.options.ocrLangs)
	}
	if err := generator.GenerateAll(ctx, doc); err != nil {
		p.warn(WarnAltText, err.Error())
	}

	cfg := p.options.annotate
	cfg.Language = doc.Metadata.Language
	engine := annotate.NewEngineWithCapability(cfg, capability)

	if p.options.analysisFile != "" {
		if a, err := p.loadAnalysis(); err != nil {
			p.warn(WarnAnalysis, err.Error())
		} else {
			engine.SetAnalysis(a)
		}
	}

	if err := engine.Optimize(ctx, doc); err != nil {
		return nil, p.warnings, err
	}

	return doc, p.warnings, nil
}

// Report runs Optimize and writes the accessibility report workbook to
// reportPath. The optimized document is returned for further use.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	doc, warnings, err := lectern.Open("deck.pptx").
//	    Report(ctx, "deck-report.xlsx")
func (p *Pipeline) Report(ctx context.Context, reportPath string) (*model.Document, []Warning, error) {
	doc, warnings, err := p.Optimize(ctx)
	if err != nil {
		return nil, warnings, err
	}
	if err := report.Write(doc, reportPath); err != nil {
		return nil, warnings, err
	}
	return doc, warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// buildDocument converts the parsed presentation into the semantic model
// and resolves geometric reading order.
func (p *Pipeline) buildDocument() *model.Document {
	doc := model.NewDocument()
	doc.SourceFile = p.filename

	meta := p.reader.Metadata()
	if meta.Language == "" {
		meta.Language = "en"
	}
	if p.options.language != "" {
		meta.Language = p.options.language
	}
	doc.Metadata = meta

	classifier := classify.NewClassifierWithConfig(p.options.classify)
	for _, src := range p.reader.Slides() {
		slide := model.NewSlide(0)
		slide.Notes = src.Notes
		if src.WidthMM > 0 && src.HeightMM > 0 {
			slide.WidthMM = src.WidthMM
			slide.HeightMM = src.HeightMM
		}
		slide.Blocks = classifier.ClassifyAll(src.Shapes)
		doc.AddSlide(slide)
	}

	order.NewResolverWithConfig(p.options.order).ResolveDocument(doc)
	return doc
}

func (p *Pipeline) loadAnalysis() (*analysis.Document, error) {
	data, err := os.ReadFile(p.options.analysisFile)
	if err != nil {
		return nil, fmt.Errorf("reading analysis file: %w", err)
	}
	return analysis.Decode(data)
}
