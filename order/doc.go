// Package order assigns the initial geometric reading order to slide
// blocks.
//
// Blocks are sorted top-to-bottom in 20 mm horizontal bands, left to
// right within a band. The slide title always sorts first and blocks
// without geometry sort last. The annotation engine later refines this
// order semantically; this package only establishes a sane baseline.
package order
