// Package catalog holds the static table of resource kinds a plan can contain.
//
// Each [ResourceSpec] declares the first curriculum stage that unlocks it, the
// kinds it depends on, a sizing rule per environment tier, a naming policy and
// one output. A [Catalog] is validated eagerly by [New]: unknown or
// self-referencing dependencies, statically declared cycles, partial sizing
// rules and duplicate outputs are rejected with a [ConfigurationError] before
// any plan is compiled. Once built, a Catalog is read-only and safe for
// concurrent use.
//
// [Builtin] returns the workshop catalog embedded in the binary; [LoadFile]
// and [Parse] read a YAML catalog.
package catalog
