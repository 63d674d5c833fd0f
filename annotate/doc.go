// Package annotate implements the accessibility annotation engine.
//
// The engine runs a fixed sequence of phases over a classified,
// geometrically ordered document:
//
//	analyze        collect footnote definitions and content hashes
//	decorative     mark spacer images, backgrounds, divider text
//	redundant      mark content repeated across slides
//	strip          mark page numbers, boilerplate, placeholders, contacts
//	complex        rewrite timeline/flowchart/infographic slides as prose
//	footnotes      inline footnote markers into their text
//	notes          inject context extracted from speaker notes
//	reorder        refine reading order semantically
//	tables         naturalize tables into narration
//	charts         upgrade chart alt text via vision
//	summary        prepend a summary to dense slides
//	cleanup        drop skippable blocks, renumber contiguously
//
// Phases degrade gracefully: any AI capability failure leaves heuristic
// output in place. The result is a fixed point; running the engine again
// on its own output changes no roles and removes nothing, provided
// capability availability is unchanged.
package annotate
