package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Event represents a structured reporting event.
type Event struct {
	Type     EventType         // Type of event
	Kind     string            // Catalog kind if applicable
	Resource string            // Resource name if applicable
	Message  string            // Human-readable message
	Err      error             // Set for failure events
	Fields   map[string]string // Additional contextual fields
}

// EventType represents the type of reporting event.
type EventType string

const (
	// EventCatalogLoaded indicates a catalog was loaded and validated.
	EventCatalogLoaded EventType = "catalog.loaded"
	// EventPlanCompiled indicates a plan compiled successfully.
	EventPlanCompiled EventType = "plan.compiled"
	// EventPlanFailed indicates compilation failed.
	EventPlanFailed EventType = "plan.failed"
	// EventPlanStored indicates a plan was persisted.
	EventPlanStored EventType = "plan.stored"

	// EventResourcePlanned indicates an active resource in a plan.
	EventResourcePlanned EventType = "resource.planned"
	// EventResourceInactive indicates a resource the stage has not unlocked.
	EventResourceInactive EventType = "resource.inactive"

	// EventCascadeWarning indicates a resource deactivated by cascade.
	EventCascadeWarning EventType = "cascade.warning"
	// EventSizingWarning indicates a sizing lint finding.
	EventSizingWarning EventType = "sizing.warning"
	// EventStageWarning indicates a dependency on a later stage.
	EventStageWarning EventType = "stage.warning"
	// EventOverride indicates an explicit override was applied.
	EventOverride EventType = "override.noted"
)

// verbosity of each event type; 0 is always shown.
var verbosity = map[EventType]int{
	EventResourcePlanned:  1,
	EventResourceInactive: 2,
	EventCatalogLoaded:    1,
}

// Observer receives reporting events.
type Observer interface {
	// Event emits a structured event
	Event(event Event)

	// WithFields returns a new Observer with additional context fields
	WithFields(fields map[string]string) Observer
}

// LogrObserver implements Observer on a logr.Logger.
type LogrObserver struct {
	logger logr.Logger
	fields map[string]string
}

// NewLogrObserver creates an observer writing to logger.
func NewLogrObserver(logger logr.Logger) *LogrObserver {
	return &LogrObserver{logger: logger, fields: map[string]string{}}
}

// FromContext returns an observer on the context's logger, or a discarding
// one when the context has none.
func FromContext(ctx context.Context) *LogrObserver {
	return NewLogrObserver(logr.FromContextOrDiscard(ctx))
}

// Event implements Observer.
func (o *LogrObserver) Event(event Event) {
	kv := []any{"event", string(event.Type)}
	if event.Kind != "" {
		kv = append(kv, "kind", event.Kind)
	}
	if event.Resource != "" {
		kv = append(kv, "resource", event.Resource)
	}
	kv = append(kv, sortedFields(o.fields, event.Fields)...)

	if event.Err != nil {
		o.logger.Error(event.Err, event.Message, kv...)
		return
	}
	o.logger.V(verbosity[event.Type]).Info(event.Message, kv...)
}

// WithFields implements Observer.
func (o *LogrObserver) WithFields(fields map[string]string) Observer {
	merged := make(map[string]string, len(o.fields)+len(fields))
	for k, v := range o.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &LogrObserver{logger: o.logger, fields: merged}
}

// sortedFields flattens context and event fields; event fields win.
func sortedFields(context, event map[string]string) []any {
	merged := make(map[string]string, len(context)+len(event))
	for k, v := range context {
		merged[k] = v
	}
	for k, v := range event {
		merged[k] = v
	}
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	kv := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		kv = append(kv, k, merged[k])
	}
	return kv
}

// NewLogger returns a logr.Logger writing one line per entry to w.
func NewLogger(w io.Writer, v int) logr.Logger {
	var mu sync.Mutex
	return funcr.New(func(prefix, args string) {
		mu.Lock()
		defer mu.Unlock()
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: v})
}

// Recorder is an Observer that keeps events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	fields map[string]string
	parent *Recorder
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Event implements Observer.
func (r *Recorder) Event(event Event) {
	root := r
	for root.parent != nil {
		root = root.parent
	}
	if len(r.fields) > 0 {
		merged := make(map[string]string, len(r.fields)+len(event.Fields))
		for k, v := range r.fields {
			merged[k] = v
		}
		for k, v := range event.Fields {
			merged[k] = v
		}
		event.Fields = merged
	}
	root.mu.Lock()
	defer root.mu.Unlock()
	root.events = append(root.events, event)
}

// WithFields implements Observer.
func (r *Recorder) WithFields(fields map[string]string) Observer {
	merged := make(map[string]string, len(r.fields)+len(fields))
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Recorder{fields: merged, parent: r}
}

// Events returns the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// OfType returns the recorded events of type t.
func (r *Recorder) OfType(t EventType) []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
