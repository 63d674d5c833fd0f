package order

import (
	"sort"

	"github.com/tsawler/lectern/model"
)

// Config holds resolver tuning parameters.
type Config struct {
	// BandHeightMM groups blocks into horizontal bands of this height
	// before comparing x positions. Blocks whose vertical centers fall
	// in the same band read left to right.
	BandHeightMM float64
}

// DefaultConfig returns the standard resolver configuration.
func DefaultConfig() Config {
	return Config{BandHeightMM: 20}
}

// Resolver computes geometric reading order.
type Resolver struct {
	config Config
}

// NewResolver creates a resolver with the default configuration.
func NewResolver() *Resolver {
	return NewResolverWithConfig(DefaultConfig())
}

// NewResolverWithConfig creates a resolver with a custom configuration.
func NewResolverWithConfig(config Config) *Resolver {
	return &Resolver{config: config}
}

// sortKey buckets a block: the title first, then positioned blocks by
// band and x, then blocks without geometry.
type sortKey struct {
	bucket int
	band   int
	x      float64
}

func (k sortKey) less(o sortKey) bool {
	if k.bucket != o.bucket {
		return k.bucket < o.bucket
	}
	if k.band != o.band {
		return k.band < o.band
	}
	return k.x < o.x
}

func (r *Resolver) keyFor(b *model.Block) sortKey {
	if b.IsTitle() {
		return sortKey{bucket: 0}
	}
	if b.BBox != nil {
		return sortKey{
			bucket: 1,
			band:   int(b.BBox.Y / r.config.BandHeightMM),
			x:      b.BBox.X,
		}
	}
	return sortKey{bucket: 2}
}

// Resolve assigns reading orders 1..N to the slide's blocks. The sort is
// stable: blocks with equal keys keep their document order.
func (r *Resolver) Resolve(slide *model.Slide) {
	blocks := make([]*model.Block, len(slide.Blocks))
	copy(blocks, slide.Blocks)

	sort.SliceStable(blocks, func(i, j int) bool {
		return r.keyFor(blocks[i]).less(r.keyFor(blocks[j]))
	})

	for i, b := range blocks {
		b.ReadingOrder = i + 1
	}
}

// ResolveDocument resolves every slide in the document.
func (r *Resolver) ResolveDocument(doc *model.Document) {
	for _, slide := range doc.Slides {
		r.Resolve(slide)
	}
}
