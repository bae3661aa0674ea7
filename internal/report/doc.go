// Package report turns compiled plans into structured log events.
//
// The compiler never logs; callers pass its plans and errors to an
// [Observer]. [LogrObserver] writes events through a logr.Logger, which the
// CLI creates with [NewLogger] and carries in the context.
package report
