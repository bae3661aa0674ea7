package plan

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/util/ptr"
)

// Property keys set on every active resource.
const (
	PropertyType     = "type"
	PropertyLocation = "location"
	PropertySKU      = "sku"
	PropertyCapacity = "capacity"
	PropertyReplicas = "replicas"
)

// ResolvedResource is one catalog kind resolved for a stage and tier.
// Inactive resources keep their name and carry no properties.
type ResolvedResource struct {
	Kind           catalog.ResourceKind `json:"kind"`
	Type           string               `json:"type,omitempty"`
	Name           string               `json:"name"`
	Active         bool                 `json:"active"`
	Level          int                  `json:"level"`
	Properties     map[string]string    `json:"properties"`
	Tags           map[string]string    `json:"tags,omitempty"`
	DependsOnNames []string             `json:"dependsOnNames"`
}

// OutputValue is the value of one output. Value is nil when Present is false.
type OutputValue struct {
	Present bool    `json:"present"`
	Value   *string `json:"value"`
}

// Present returns an output holding v.
func Present(v string) OutputValue {
	return OutputValue{Present: true, Value: ptr.String(v)}
}

// Absent returns the output of an inactive resource.
func Absent() OutputValue {
	return OutputValue{}
}

// Get returns the value and whether it is present.
func (o OutputValue) Get() (string, bool) {
	if !o.Present || o.Value == nil {
		return "", false
	}
	return *o.Value, true
}

// Severity of a diagnostic.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Diagnostic codes.
const (
	CodeCascade        = "cascade"
	CodeSizingLint     = "sizing-lint"
	CodeStageInversion = "stage-inversion"
	CodeOverride       = "override"
)

// Diagnostic is a non-fatal finding attached to a successful plan.
type Diagnostic struct {
	Severity Severity             `json:"severity"`
	Code     string               `json:"code"`
	Kind     catalog.ResourceKind `json:"kind,omitempty"`
	Cause    catalog.ResourceKind `json:"cause,omitempty"`
	Message  string               `json:"message"`
}

// Plan is the result of one compilation. Resources list active kinds in
// dependency order, then inactive kinds in catalog order.
type Plan struct {
	Stage       int                      `json:"stage"`
	Environment sizing.Tier              `json:"environment"`
	BaseName    string                   `json:"baseName"`
	Suffix      string                   `json:"suffix,omitempty"`
	Location    string                   `json:"location"`
	Resources   []ResolvedResource       `json:"resources"`
	Levels      [][]catalog.ResourceKind `json:"levels"`
	Outputs     map[string]OutputValue   `json:"outputs"`
	Diagnostics []Diagnostic             `json:"diagnostics"`
}

// Active returns the active resources in dependency order.
func (p *Plan) Active() []ResolvedResource {
	var out []ResolvedResource
	for _, r := range p.Resources {
		if r.Active {
			out = append(out, r)
		}
	}
	return out
}

// Inactive returns the inactive resources in catalog order.
func (p *Plan) Inactive() []ResolvedResource {
	var out []ResolvedResource
	for _, r := range p.Resources {
		if !r.Active {
			out = append(out, r)
		}
	}
	return out
}

// Lookup returns the resource of kind.
func (p *Plan) Lookup(kind catalog.ResourceKind) (ResolvedResource, bool) {
	for _, r := range p.Resources {
		if r.Kind == kind {
			return r, true
		}
	}
	return ResolvedResource{}, false
}

// Output returns the output under key. Unknown keys read as absent.
func (p *Plan) Output(key string) OutputValue {
	return p.Outputs[key]
}

// DiagnosticsWithCode filters diagnostics by code.
func (p *Plan) DiagnosticsWithCode(code string) []Diagnostic {
	var out []Diagnostic
	for _, d := range p.Diagnostics {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

// CascadeWarnings returns the cascade deactivations.
func (p *Plan) CascadeWarnings() []Diagnostic {
	return p.DiagnosticsWithCode(CodeCascade)
}

// Names returns the names of all resources in plan order.
func (p *Plan) Names() []string {
	out := make([]string, len(p.Resources))
	for i, r := range p.Resources {
		out[i] = r.Name
	}
	return out
}

// Fingerprint returns a hex digest of the plan. Equal plans have equal
// fingerprints.
func (p *Plan) Fingerprint() string {
	// encoding/json sorts map keys, so the encoding is canonical.
	data, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
