// Package model defines the semantic document model for slide decks.
//
// A Document holds Slides, and each Slide holds Blocks: typed content
// units (headings, paragraphs, lists, tables, figures) with geometry in
// millimetres, a reading order, and an accessibility annotation that the
// optimization pipeline fills in.
//
// The model is the contract between the stages of the pipeline:
//
//	pptx reader -> classifier -> reading-order resolver -> annotation engine
//
// Blocks carry their content as a BlockContent union. Text-bearing blocks
// hold a *TextContent, tables a *Table, figures a *Figure. Accessors on
// Block (Paragraphs, Table, Figure) return zero values when the block is
// of a different kind, so callers can probe without type switches.
//
// Every block has an Annotation. Its zero value is RoleEssential, meaning
// "read this aloud"; the annotation engine downgrades blocks to
// decorative, redundant, boilerplate, placeholder or navigation roles and
// attaches rewritten narration in ScreenReaderText where needed.
package model
