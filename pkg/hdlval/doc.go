// Package hdlval defines the minimal capability interfaces the span
// analyzer requires of a caller-owned HDL AST. The analyzer never
// parses source text, never emits textual output, and never owns the
// expression tree it analyzes: it borrows, clones, or takes ownership
// of Value nodes through the accessors declared here.
//
// Implementations live outside this module (a VHDL or SystemC front
// end, or — for tests — internal/fakesem). hdlval only describes the
// shape those implementations must have.
package hdlval
