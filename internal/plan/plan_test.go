package plan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
)

func resource(kind, name string, active bool, sku string) ResolvedResource {
	r := ResolvedResource{Kind: catalog.ResourceKind(kind), Name: name, Active: active, Level: -1, Properties: map[string]string{}}
	if active {
		r.Level = 0
		r.Properties = map[string]string{PropertySKU: sku, PropertyCapacity: "1", PropertyReplicas: "1"}
	}
	return r
}

func samplePlan() *Plan {
	return &Plan{
		Stage:       16,
		Environment: sizing.TierDev,
		BaseName:    "workshop",
		Location:    "eastus",
		Resources: []ResolvedResource{
			resource("resource-group", "workshop-rg-dev", true, "standard"),
			resource("search-service", "workshop-srch-dev", true, "basic"),
			resource("search-index", "workshop-idx-dev", false, ""),
		},
		Outputs: map[string]OutputValue{
			"resourceGroupName": Present("workshop-rg-dev"),
			"searchEndpoint":    Present("https://workshop-srch-dev.search.windows.net"),
			"searchIndexName":   Absent(),
		},
		Diagnostics: []Diagnostic{
			{Severity: SeverityWarning, Code: CodeCascade, Kind: "search-index", Cause: "model-deployment", Message: "deactivated"},
			{Severity: SeverityWarning, Code: CodeSizingLint, Kind: "cosmos-db", Message: "weak prod"},
		},
	}
}

func TestOutputValue(t *testing.T) {
	t.Parallel()

	v, ok := Present("x").Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = Absent().Get()
	assert.False(t, ok)
	assert.Empty(t, v)

	data, err := json.Marshal(Absent())
	require.NoError(t, err)
	assert.JSONEq(t, `{"present":false,"value":null}`, string(data))

	data, err = json.Marshal(Present("endpoint"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"present":true,"value":"endpoint"}`, string(data))
}

func TestPlan_Accessors(t *testing.T) {
	t.Parallel()
	p := samplePlan()

	active := p.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "workshop-rg-dev", active[0].Name)
	require.Len(t, p.Inactive(), 1)

	r, ok := p.Lookup("search-service")
	require.True(t, ok)
	assert.Equal(t, "basic", r.Properties[PropertySKU])
	_, ok = p.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"workshop-rg-dev", "workshop-srch-dev", "workshop-idx-dev"}, p.Names())

	cascades := p.CascadeWarnings()
	require.Len(t, cascades, 1)
	assert.Equal(t, "search-index", string(cascades[0].Kind))

	assert.False(t, p.Output("searchIndexName").Present)
	assert.False(t, p.Output("unknown").Present)
}

func TestPlan_Fingerprint(t *testing.T) {
	t.Parallel()
	a, b := samplePlan(), samplePlan()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.Fingerprint(), 64)

	b.Resources[1].Properties[PropertySKU] = "standard"
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestDiff(t *testing.T) {
	t.Parallel()
	from := samplePlan()

	to := samplePlan()
	to.Resources[1] = resource("search-service", "workshop-srch-prd", true, "standard2")
	to.Resources[2] = resource("search-index", "workshop-idx-dev", true, "vector")
	to.Resources[0].Active = false

	changes := Diff(from, to)
	assert.Equal(t, Changes{
		{Type: ChangeRenamed, Kind: "search-service", From: "workshop-srch-dev", To: "workshop-srch-prd"},
		{Type: ChangeResized, Kind: "search-service", From: "basic x1 (cap 1)", To: "standard2 x1 (cap 1)"},
		{Type: ChangeAdded, Kind: "search-index", To: "workshop-idx-dev"},
		{Type: ChangeRemoved, Kind: "resource-group", From: "workshop-rg-dev"},
	}, changes)
	assert.Equal(t, 1, changes.Count(ChangeAdded))
	assert.False(t, changes.Empty())

	assert.True(t, Diff(from, samplePlan()).Empty())
}
