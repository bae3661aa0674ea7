package report

import (
	"fmt"
	"strconv"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/plan"
)

var diagnosticEvents = map[string]EventType{
	plan.CodeCascade:        EventCascadeWarning,
	plan.CodeSizingLint:     EventSizingWarning,
	plan.CodeStageInversion: EventStageWarning,
	plan.CodeOverride:       EventOverride,
}

// Plan emits one event per resource and diagnostic, then a summary.
func Plan(o Observer, p *plan.Plan) {
	o = o.WithFields(map[string]string{
		"base":        p.BaseName,
		"environment": string(p.Environment),
		"stage":       strconv.Itoa(p.Stage),
	})

	for _, r := range p.Resources {
		if !r.Active {
			o.Event(Event{Type: EventResourceInactive, Kind: string(r.Kind), Resource: r.Name, Message: "not unlocked"})
			continue
		}
		o.Event(Event{
			Type:     EventResourcePlanned,
			Kind:     string(r.Kind),
			Resource: r.Name,
			Message:  "planned",
			Fields: map[string]string{
				"sku":      r.Properties[plan.PropertySKU],
				"capacity": r.Properties[plan.PropertyCapacity],
				"replicas": r.Properties[plan.PropertyReplicas],
				"level":    strconv.Itoa(r.Level),
			},
		})
	}

	for _, d := range p.Diagnostics {
		t, ok := diagnosticEvents[d.Code]
		if !ok {
			t = EventType(d.Code)
		}
		e := Event{Type: t, Kind: string(d.Kind), Message: d.Message}
		if d.Cause != "" {
			e.Fields = map[string]string{"cause": string(d.Cause)}
		}
		o.Event(e)
	}

	o.Event(Event{
		Type:    EventPlanCompiled,
		Message: fmt.Sprintf("%d of %d resources active", len(p.Active()), len(p.Resources)),
		Fields: map[string]string{
			"levels":      strconv.Itoa(len(p.Levels)),
			"diagnostics": strconv.Itoa(len(p.Diagnostics)),
			"fingerprint": p.Fingerprint()[:12],
		},
	})
}

// Failure emits a plan.failed event.
func Failure(o Observer, err error) {
	o.Event(Event{Type: EventPlanFailed, Message: "compilation failed", Err: err})
}

// Catalog emits a catalog.loaded event and the catalog's warnings.
func Catalog(o Observer, source string, cat *catalog.Catalog) {
	o.Event(Event{
		Type:    EventCatalogLoaded,
		Message: "catalog loaded",
		Fields: map[string]string{
			"source":    source,
			"kinds":     strconv.Itoa(cat.Len()),
			"max_stage": strconv.Itoa(cat.MaxStage()),
		},
	})
	for _, w := range cat.Warnings() {
		t, ok := diagnosticEvents[w.Code]
		if !ok {
			t = EventType(w.Code)
		}
		o.Event(Event{Type: t, Kind: string(w.Kind), Message: w.Message})
	}
}
