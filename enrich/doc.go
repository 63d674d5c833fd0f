// Package enrich connects the pipeline to external AI capabilities and
// keeps it useful when none are reachable.
//
// A Capability is anything that can complete text prompts and, usually,
// describe images. Resolve probes a ranked list of capabilities once and
// returns the first healthy one; the annotation engine holds that single
// capability for its whole run. Every enrichment call is advisory: on
// error the caller keeps heuristic output, never fails the pipeline.
//
// The package also carries the alt-text workflow recovered figures go
// through: a persistent hash-keyed cache, a describe-then-polish two
// stage generation, and an OCR fallback for builds with the ocr tag.
package enrich
