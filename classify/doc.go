// Package classify turns raw presentation shapes into typed semantic
// blocks.
//
// The classifier applies a fixed priority ladder: pictures become figures,
// tables become table blocks, charts become figures with a placeholder
// description, and text shapes are split into headings, lists and
// paragraphs using placeholder roles, bullet properties and font sizes.
// Grouped shapes are flattened recursively; their children arrive with
// absolute slide coordinates and classify like top-level shapes.
package classify
