// Package handlers implements the business logic for tierplan CLI commands.
//
// Each handler loads the deployment configuration, runs the compiler and
// renders the result as styled text, JSON or YAML. External dependencies
// are held in package-level function variables so tests can replace them.
package handlers
