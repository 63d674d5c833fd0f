package annotate

// SlideType labels the layout archetype detected for a slide.
type SlideType string

const (
	SlideSimple      SlideType = "simple"
	SlideTimeline    SlideType = "timeline"
	SlideFlowchart   SlideType = "flowchart"
	SlideOrgChart    SlideType = "org_chart"
	SlideComparison  SlideType = "comparison"
	SlideInfographic SlideType = "infographic"
)

// Config controls which phases run and their thresholds.
type Config struct {
	// Language is the BCP 47 tag used for generated phrases such as
	// table narration and context prefixes. Detection vocabularies are
	// bilingual regardless.
	Language string

	DetectFootnotes           bool
	DetectDecorative          bool
	DetectRedundant           bool
	StripPageNumbers          bool
	StripBoilerplate          bool
	StripPlaceholders         bool
	StripNavigationHints      bool
	DeduplicateContacts       bool
	DetectComplexSlides       bool
	UseVisionForComplexSlides bool
	InlineFootnotes           bool
	UseSpeakerNotes           bool
	OptimizeReadingOrder      bool
	NaturalizeTables          bool
	EnhanceChartAltText       bool
	GenerateSummaries         bool
	RemoveSkippable           bool

	// ComplexSlideThreshold is the readable-block count from which a
	// slide gets a generated summary.
	ComplexSlideThreshold int

	// RedundancyThreshold is the number of distinct slides a content
	// hash must appear on before copies are marked redundant.
	RedundancyThreshold int

	// ComplexSlideTypes lists the slide types eligible for narrative
	// rewriting.
	ComplexSlideTypes []SlideType
}

// DefaultConfig enables every phase with the standard thresholds.
func DefaultConfig() Config {
	return Config{
		Language:                  "en",
		DetectFootnotes:           true,
		DetectDecorative:          true,
		DetectRedundant:           true,
		StripPageNumbers:          true,
		StripBoilerplate:          true,
		StripPlaceholders:         true,
		StripNavigationHints:      true,
		DeduplicateContacts:       true,
		DetectComplexSlides:       true,
		UseVisionForComplexSlides: true,
		InlineFootnotes:           true,
		UseSpeakerNotes:           true,
		OptimizeReadingOrder:      true,
		NaturalizeTables:          true,
		EnhanceChartAltText:       true,
		GenerateSummaries:         true,
		RemoveSkippable:           true,
		ComplexSlideThreshold:     6,
		RedundancyThreshold:       2,
		ComplexSlideTypes: []SlideType{
			SlideTimeline, SlideFlowchart, SlideOrgChart,
			SlideComparison, SlideInfographic,
		},
	}
}

func (c Config) complexTypeEnabled(t SlideType) bool {
	for _, ct := range c.ComplexSlideTypes {
		if ct == t {
			return true
		}
	}
	return false
}
