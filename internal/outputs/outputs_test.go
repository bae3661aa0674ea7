package outputs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/plan"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	rule := sizing.Rule{
		sizing.TierDev:     {SKU: "basic"},
		sizing.TierStaging: {SKU: "standard"},
		sizing.TierProd:    {SKU: "premium"},
	}
	cat, err := catalog.New([]catalog.ResourceSpec{
		{Kind: "resource-group", Sizing: rule, Output: catalog.OutputSpec{Key: "resourceGroupName"}},
		{Kind: "search-service", MinStage: 16, Sizing: rule,
			Output: catalog.OutputSpec{Key: "searchEndpoint", Format: "https://{name}.search.windows.net"}},
		{Kind: "container-app", MinStage: 24, Sizing: rule,
			Output: catalog.OutputSpec{Format: "{name}.{location}.{environment}.{sku}.{kind}"}},
	})
	require.NoError(t, err)
	return cat
}

func TestAggregate(t *testing.T) {
	t.Parallel()
	cat := testCatalog(t)
	resources := []plan.ResolvedResource{
		{Kind: "resource-group", Name: "ws-rg-dev", Active: true},
		{Kind: "search-service", Name: "ws-srch-dev", Active: true},
		{Kind: "container-app", Name: "ws-ca-dev", Active: false},
	}

	out := Aggregate(cat, resources, Context{Location: "eastus", Environment: "dev"})
	require.Len(t, out, cat.Len())

	v, ok := out["resourceGroupName"].Get()
	require.True(t, ok)
	assert.Equal(t, "ws-rg-dev", v)

	v, ok = out["searchEndpoint"].Get()
	require.True(t, ok)
	assert.Equal(t, "https://ws-srch-dev.search.windows.net", v)

	absent := out["container-app"]
	assert.False(t, absent.Present)
	assert.Nil(t, absent.Value)
}

func TestAggregate_MissingResourceIsAbsent(t *testing.T) {
	t.Parallel()
	cat := testCatalog(t)
	out := Aggregate(cat, nil, Context{})
	require.Len(t, out, 3)
	for key, v := range out {
		assert.False(t, v.Present, key)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()
	r := plan.ResolvedResource{
		Kind:       "container-app",
		Name:       "ws-ca-prd",
		Active:     true,
		Properties: map[string]string{plan.PropertySKU: "Consumption"},
	}
	got := Render("{name}.{location}.{environment}.{sku}.{kind}", r, Context{Location: "westeurope", Environment: "prod"})
	assert.Equal(t, "ws-ca-prd.westeurope.prod.Consumption.container-app", got)

	r.Properties[plan.PropertyLocation] = "northeurope"
	assert.Equal(t, "northeurope", Render("{location}", r, Context{Location: "westeurope"}))
	assert.Equal(t, "literal", Render("literal", r, Context{}))
}
