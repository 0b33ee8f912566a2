// Package span implements the span analyzer and unrolling engine: it
// classifies, bounds-normalizes, defragments, and re-synthesizes a set
// of partial index assignments into a minimal canonical partition of a
// fixed-width aggregate, and can re-emit that partition as a single
// concatenation expression.
//
// The engine is single-threaded and synchronous. It never parses HDL
// source text, never emits textual output, and owns none of the
// expression tree it analyzes — every Value it retains is a clone of a
// borrowed input, obtained through the capability interfaces in
// pkg/hdlval.
package span
