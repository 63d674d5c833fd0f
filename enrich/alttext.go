package enrich

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tsawler/lectern/model"
	"github.com/tsawler/lectern/ocr"
)

const describePrompt = "Describe this image for a blind reader in one or two short sentences. " +
	"Focus on the information it conveys, not its visual style. " +
	"Do not start with 'The image shows'."

const polishPromptFormat = "Rewrite the following image description as concise alternative text " +
	"for a screen reader, at most 200 characters, in %s:\n\n%s"

// prefixes that rule-based polishing strips when no completion
// capability is available for the second stage.
var altPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(an?\s+)?(image|picture|photo|photograph|graphic|drawing)\s+(of|showing|with)\s+`),
	regexp.MustCompile(`(?i)^(ein\s+)?(bild|foto)\s+(von|mit)\s+`),
}

const maxAltTextLen = 300

// AltTextGenerator produces alternative text for figures that need it:
// cache first, then vision description polished by a completion pass,
// then OCR as a last resort.
type AltTextGenerator struct {
	capability Capability // may be nil
	cache      *Cache     // may be nil
	language   string
	ocrLangs   string // empty disables the OCR fallback
}

// NewAltTextGenerator creates a generator. capability and cache may be
// nil; language is a BCP 47 tag used for the polish stage.
func NewAltTextGenerator(capability Capability, cache *Cache, language string) *AltTextGenerator {
	return &AltTextGenerator{
		capability: capability,
		cache:      cache,
		language:   language,
	}
}

// EnableOCRFallback turns on the OCR fallback with the given Tesseract
// language string (e.g. "eng+deu"). Only effective in builds with the
// ocr tag; otherwise the fallback quietly reports no text.
func (g *AltTextGenerator) EnableOCRFallback(langs string) {
	g.ocrLangs = langs
}

// GenerateAll fills in alt text for every figure in the document that
// needs one. Individual failures skip the figure; the first error is
// returned for reporting but never aborts the loop.
func (g *AltTextGenerator) GenerateAll(ctx context.Context, doc *model.Document) error {
	var firstErr error
	for _, ref := range doc.FiguresNeedingAltText() {
		if err := g.Generate(ctx, ref.Figure); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("slide %d: %w", ref.SlideNumber, err)
		}
	}
	return firstErr
}

// Generate fills in alt text for one figure. The figure is left
// unchanged when no source can describe it.
func (g *AltTextGenerator) Generate(ctx context.Context, fig *model.Figure) error {
	hash := fig.ContentHash()

	if text, ok := g.cache.Get(hash); ok {
		fig.AltText = text
		fig.NeedsAltText = false
		fig.AltTextConfidence = 0.8
		return nil
	}

	text, err := g.describe(ctx, fig)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	fig.AltText = text
	fig.NeedsAltText = false
	fig.AltTextConfidence = 0.8
	if err := g.cache.Put(hash, text); err != nil {
		return err
	}
	return nil
}

func (g *AltTextGenerator) describe(ctx context.Context, fig *model.Figure) (string, error) {
	if g.capability != nil && g.capability.CanDescribeImages() && len(fig.Data) > 0 {
		raw, err := g.capability.DescribeImage(ctx, fig.Data, describePrompt)
		if err == nil {
			if text := g.polish(ctx, CleanResponse(raw)); text != "" {
				return text, nil
			}
		}
	}

	if g.ocrLangs != "" && len(fig.Data) > 0 {
		if text := g.recognize(fig.Data); text != "" {
			return text, nil
		}
	}

	return "", nil
}

// polish runs the second stage: a completion pass tightening the raw
// description, falling back to rule-based cleanup.
func (g *AltTextGenerator) polish(ctx context.Context, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if g.capability != nil {
		prompt := fmt.Sprintf(polishPromptFormat, g.language, raw)
		if out, err := g.capability.CompleteText(ctx, prompt); err == nil {
			if cleaned := CleanResponse(out); len(cleaned) > 3 {
				return truncate(cleaned, maxAltTextLen)
			}
		}
	}

	return truncate(PolishAltText(raw), maxAltTextLen)
}

// PolishAltText applies rule-based cleanup: strips "image of" style
// prefixes, capitalizes, and ensures terminal punctuation.
func PolishAltText(s string) string {
	s = strings.TrimSpace(s)
	for _, p := range altPrefixes {
		s = p.ReplaceAllString(s, "")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	s = string(runes)

	if !strings.ContainsAny(s[len(s)-1:], ".!?") {
		s += "."
	}
	return s
}

func (g *AltTextGenerator) recognize(data []byte) string {
	client, err := ocr.New()
	if err != nil {
		return ""
	}
	defer client.Close()

	if err := client.SetLanguage(g.ocrLangs); err != nil {
		return ""
	}
	text, err := client.RecognizeImage(data)
	if err != nil || len(strings.TrimSpace(text)) <= 3 {
		return ""
	}
	return "Image containing text: " + truncate(whitespaceRun.ReplaceAllString(text, " "), 200)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
