// Package compiler turns a catalog, a stage and an environment tier into a
// [plan.Plan].
//
// Compile runs the stages in a fixed order: input validation, stage gate,
// explicit overrides, dependency graph (cascade and ordering), sizing,
// naming and output aggregation. It performs no I/O, reads no clock and uses
// no randomness, so equal inputs always give equal plans. Errors are terminal:
// retrying a failed compilation yields the same error.
package compiler
