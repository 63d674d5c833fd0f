package annotate

import "github.com/tsawler/lectern/model"

// markRedundant annotates blocks whose content hash appears on several
// slides. The copy on the lowest-numbered slide stays readable; every
// later copy is skipped.
func (e *Engine) markRedundant(doc *model.Document, st *runState) {
	threshold := e.config.RedundancyThreshold
	if threshold < 2 {
		threshold = 2
	}

	firstSlide := make(map[string]int)
	for hash, slides := range st.hashSlides {
		if len(distinct(slides)) < threshold {
			continue
		}
		minSlide := slides[0]
		for _, n := range slides[1:] {
			if n < minSlide {
				minSlide = n
			}
		}
		firstSlide[hash] = minSlide
	}
	if len(firstSlide) == 0 {
		return
	}

	for _, slide := range doc.Slides {
		for _, block := range slide.Blocks {
			hash := contentHash(block)
			if hash == "" {
				continue
			}
			first, ok := firstSlide[hash]
			if ok && slide.Number != first {
				setRole(block, model.RoleRedundant, "repeated content, first read on an earlier slide")
			}
		}
	}
}

func distinct(nums []int) []int {
	seen := make(map[int]bool, len(nums))
	var out []int
	for _, n := range nums {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
