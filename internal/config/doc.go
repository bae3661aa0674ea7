// Package config loads the tierplan.yaml deployment file and attendee rosters.
//
// A [Spec] names the stage, environment tier, base name, suffix, location and
// tags of one workshop deployment, plus the catalog to compile against. It is
// validated with [Spec.Validate], may be overridden from TIERPLAN_*
// environment variables, and converts to a [compiler.Input] with
// [Spec.ToInput].
package config
