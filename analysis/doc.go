// Package analysis defines the data exchanged with an external document
// layout analysis service.
//
// The service examines the original container with its own layout models
// and returns, per slide, a reading order over positioned elements, plus
// structural information for every table in the document. The annotation
// engine treats this data as advisory: elements are matched to blocks by
// bounding-box overlap, tables by their occurrence index, and any failure
// falls back to built-in heuristics.
//
// Decode validates incoming JSON against an embedded schema before
// unmarshalling, so malformed service output can never steer the
// pipeline.
package analysis
