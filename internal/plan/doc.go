// Package plan defines the compiled provisioning plan.
//
// A [Plan] is produced once per compilation and never mutated afterwards.
// Its Outputs map always holds one entry per catalog kind; consumers branch on
// [OutputValue.Present], never on whether a key exists.
package plan
