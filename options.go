package lectern

import (
	"github.com/tsawler/lectern/annotate"
	"github.com/tsawler/lectern/classify"
	"github.com/tsawler/lectern/enrich"
	"github.com/tsawler/lectern/order"
)

// PipelineOptions holds configuration for the optimization pipeline.
type PipelineOptions struct {
	// Language override (BCP 47 base tag). Empty means detect from the
	// file, falling back to English.
	language string

	// Per-stage configuration
	classify classify.Config
	order    order.Config
	annotate annotate.Config

	// AI capabilities in rank order; the first that answers a probe is
	// used for the whole run.
	providers []enrich.Capability

	// Optional inputs
	analysisFile string // precomputed layout analysis (JSON)
	cacheFile    string // image description cache; "" disables
	ocrLangs     string // Tesseract languages; "" disables the OCR fallback
}

// defaultPipelineOptions returns the default pipeline options.
func defaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		classify: classify.DefaultConfig(),
		order:    order.DefaultConfig(),
		annotate: annotate.DefaultConfig(),
	}
}

// clone creates a deep copy of PipelineOptions.
func (o PipelineOptions) clone() PipelineOptions {
	newOpts := o

	// Deep copy the slices shared between instances
	if o.providers != nil {
		newOpts.providers = make([]enrich.Capability, len(o.providers))
		copy(newOpts.providers, o.providers)
	}
	if o.annotate.ComplexSlideTypes != nil {
		newOpts.annotate.ComplexSlideTypes = append([]annotate.SlideType(nil), o.annotate.ComplexSlideTypes...)
	}

	return newOpts
}
