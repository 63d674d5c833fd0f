package annotate

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/tsawler/lectern/enrich"
	"github.com/tsawler/lectern/model"
)

// Source prefixes of blocks the engine generates. They make generated
// blocks recognizable on re-runs, keeping the engine idempotent.
const (
	narrativeSourcePrefix = "narrative:"
	noteSourcePrefix      = "notes:"
	summarySourcePrefix   = "summary:"
)

// Layout vocabulary, bilingual. Each family is a set of indicator
// patterns; a family contributes 1 to its archetype's score when any of
// its members matches, no matter how often. Presence scoring keeps a
// single word repeated across bullets from carrying a whole archetype.
var (
	yearPattern = regexp.MustCompile(`\b20\d{2}\b`)

	arrowPattern = regexp.MustCompile(`(→|➔|➜|▶|►|⇒|->|=>)`)

	timelineIndicators = []*regexp.Regexp{
		yearPattern,
		regexp.MustCompile(`\bq[1-4]\b`),
		regexp.MustCompile(`\b(phase|schritt|step)\s*\d`),
		regexp.MustCompile(`\b(roadmap|timeline|zeitachse|zeitplan|zeitstrahl|meilenstein|milestone)\b`),
		arrowPattern,
	}
	flowchartIndicators = []*regexp.Regexp{
		arrowPattern,
		regexp.MustCompile(`\b(start|ende|end)\b`),
		regexp.MustCompile(`\b(entscheidung|decision)\b`),
		regexp.MustCompile(`\b(prozess|process|ablauf|workflow)\b`),
		regexp.MustCompile(`\b(wenn|dann|if|then)\b`),
		regexp.MustCompile(`(ja/nein|yes/no)`),
	}
	orgIndicators = []*regexp.Regexp{
		regexp.MustCompile(`\b(organigramm|organisation|organization|org chart|struktur)\b`),
		regexp.MustCompile(`\b(abteilung|department|bereich)\b`),
		regexp.MustCompile(`\b(geschäftsführung|vorstand|leitung|ceo|cfo|cto|coo)\b`),
		regexp.MustCompile(`\b(berichtet an|reports to)\b`),
	}
	comparisonIndicators = []*regexp.Regexp{
		regexp.MustCompile(`\b(vs|versus|vergleich|comparison|compared)\b`),
		regexp.MustCompile(`\b(vorteile?|nachteile?|pros?|cons|advantages?|disadvantages?)\b`),
		regexp.MustCompile(`\b(vorher|nachher|before|after)\b`),
		regexp.MustCompile(`\b(option|variante)\s*\w\b`),
	}
)

// Scattered-layout gate for infographics.
const (
	infographicMinBlocks    = 8
	scatterMinPositioned    = 4
	scatterMinXRangeMM      = 150.0
	scatterClusterHeightMM  = 50.0
	scatterMinYClusters     = 3
	minNarrativeLen         = 40
	maxNarrativeItems       = 20
	maxNarrativeExcerptLen  = 150
)

// simplifyComplexSlides rewrites visually structured slides (timelines,
// flowcharts, dense infographics) as linear prose. A slide is only
// rewritten when narration succeeds; failures leave it untouched.
func (e *Engine) simplifyComplexSlides(ctx context.Context, doc *model.Document) {
	for _, slide := range doc.Slides {
		if hasGeneratedBlock(slide, narrativeSourcePrefix) {
			continue
		}
		slideType := detectSlideType(slide)
		if slideType == SlideSimple || !e.config.complexTypeEnabled(slideType) {
			continue
		}

		narrative := e.narrateSlide(ctx, slide, slideType)
		if narrative == "" {
			continue
		}
		e.replaceWithNarrative(slide, narrative)
	}
}

// detectSlideType scores the slide's text and geometry against layout
// archetypes.
func detectSlideType(slide *model.Slide) SlideType {
	var sb strings.Builder
	for _, b := range slide.Blocks {
		sb.WriteString(strings.ToLower(b.Text()))
		sb.WriteString("\n")
	}
	text := sb.String()

	timelineScore := familyScore(text, timelineIndicators)
	years := yearPattern.FindAllString(text, -1)
	if len(distinctStrings(years)) >= 3 {
		timelineScore += 3
	}
	if timelineScore >= 3 {
		return SlideTimeline
	}

	if familyScore(text, flowchartIndicators) >= 3 {
		return SlideFlowchart
	}
	if familyScore(text, orgIndicators) >= 2 {
		return SlideOrgChart
	}
	if familyScore(text, comparisonIndicators) >= 2 {
		return SlideComparison
	}
	if len(slide.Blocks) >= infographicMinBlocks && hasScatteredLayout(slide) {
		return SlideInfographic
	}
	return SlideSimple
}

// hasScatteredLayout reports whether positioned blocks spread widely
// enough that geometric reading order stops being meaningful.
func hasScatteredLayout(slide *model.Slide) bool {
	var xs, ys []float64
	for _, b := range slide.Blocks {
		if b.BBox != nil {
			xs = append(xs, b.BBox.X)
			ys = append(ys, b.BBox.Y)
		}
	}
	if len(xs) < scatterMinPositioned {
		return false
	}

	minX, maxX := xs[0], xs[0]
	for _, x := range xs {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}
	if maxX-minX <= scatterMinXRangeMM {
		return false
	}

	clusters := make(map[int]bool)
	for _, y := range ys {
		clusters[int(y/scatterClusterHeightMM)] = true
	}
	return len(clusters) >= scatterMinYClusters
}

func (e *Engine) narrateSlide(ctx context.Context, slide *model.Slide, slideType SlideType) string {
	useVision := e.config.UseVisionForComplexSlides &&
		len(slide.Image) > 0 &&
		e.capability.CanDescribeImages()

	var raw string
	var err error
	if useVision {
		raw, err = e.capability.DescribeImage(ctx, slide.Image, visionNarrativePrompt(slideType))
	} else {
		raw, err = e.capability.CompleteText(ctx, textNarrativePrompt(slideType, slideExcerpts(slide)))
	}
	if err != nil {
		return ""
	}

	narrative := enrich.CleanResponse(raw)
	if len(narrative) < minNarrativeLen {
		return ""
	}
	return narrative
}

// slideExcerpts returns the slide's text fragments in visual order,
// capped for prompt size.
func slideExcerpts(slide *model.Slide) []string {
	blocks := make([]*model.Block, len(slide.Blocks))
	copy(blocks, slide.Blocks)
	sort.SliceStable(blocks, func(i, j int) bool {
		yi, xi := positionOf(blocks[i])
		yj, xj := positionOf(blocks[j])
		if yi != yj {
			return yi < yj
		}
		return xi < xj
	})

	var items []string
	for _, b := range blocks {
		text := b.TrimmedText()
		if text == "" {
			continue
		}
		text = truncateRunes(text, maxNarrativeExcerptLen)
		items = append(items, text)
		if len(items) == maxNarrativeItems {
			break
		}
	}
	return items
}

func positionOf(b *model.Block) (y, x float64) {
	if b.BBox == nil {
		return 1e9, 1e9
	}
	return b.BBox.Y, b.BBox.X
}

func visionNarrativePrompt(slideType SlideType) string {
	return fmt.Sprintf(
		"This slide is a %s. Describe its content as two or three flowing sentences "+
			"a screen reader can speak, preserving the sequence of the information. "+
			"Do not describe visual styling.", slideType)
}

func textNarrativePrompt(slideType SlideType, items []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb,
		"The following text fragments come from a %s slide, in visual order. "+
			"Rewrite them as two or three flowing sentences a screen reader can speak, "+
			"preserving their sequence:\n\n", slideType)
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return sb.String()
}

// replaceWithNarrative reduces the slide to its title plus one
// narrative paragraph carrying the generated prose.
func (e *Engine) replaceWithNarrative(slide *model.Slide, narrative string) {
	var title *model.Block
	var replaced []string
	for _, b := range slide.Blocks {
		if title == nil && b.IsTitle() {
			title = b
			continue
		}
		replaced = append(replaced, b.Source)
	}

	block := model.NewTextBlock(model.BlockParagraph, model.NewParagraph(narrative))
	block.Source = narrativeSourcePrefix + uuid.NewString()
	block.ReadingOrder = 1
	block.A11y.RelatedBlocks = replaced

	if title != nil {
		title.ReadingOrder = 0
		title.A11y.Role = model.RoleEssential
		title.A11y.SkipReason = ""
		slide.Blocks = []*model.Block{title, block}
	} else {
		slide.Blocks = []*model.Block{block}
	}
}

func hasGeneratedBlock(slide *model.Slide, prefix string) bool {
	for _, b := range slide.Blocks {
		if strings.HasPrefix(b.Source, prefix) {
			return true
		}
	}
	return false
}

// familyScore counts how many indicator families match the text. A
// family matching many times still scores 1.
func familyScore(text string, indicators []*regexp.Regexp) int {
	score := 0
	for _, p := range indicators {
		if p.MatchString(text) {
			score++
		}
	}
	return score
}

// truncateRunes shortens s to at most n runes, never splitting a
// multi-byte character.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func distinctStrings(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
