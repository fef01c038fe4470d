// Package pipeline streams dot-bracket records through a Shaper on a bounded
// worker pool and hands results to a visit callback in input order.
//
// The only contract to implement is Shaper. This keeps the pipeline
// swappable and testable.
package pipeline
