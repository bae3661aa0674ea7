package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTier_IsValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		tier Tier
		want bool
	}{
		{"dev", TierDev, true},
		{"staging", TierStaging, true},
		{"prod", TierProd, true},
		{"empty", Tier(""), false},
		{"unknown", Tier("qa"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.tier.IsValid())
		})
	}
}

func TestParseTier(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Tier
		wantErr bool
	}{
		{"dev", TierDev, false},
		{"PROD", TierProd, false},
		{" staging ", TierStaging, false},
		{"stg", TierStaging, false},
		{"production", TierProd, false},
		{"qa", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTier(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTier_RankAndShort(t *testing.T) {
	t.Parallel()
	assert.Less(t, TierDev.Rank(), TierStaging.Rank())
	assert.Less(t, TierStaging.Rank(), TierProd.Rank())
	assert.Equal(t, -1, Tier("qa").Rank())

	assert.Equal(t, "dev", TierDev.Short())
	assert.Equal(t, "stg", TierStaging.Short())
	assert.Equal(t, "prd", TierProd.Short())
}

func TestResolve(t *testing.T) {
	t.Parallel()
	rule := Rule{
		TierDev:     {SKU: "Basic", Capacity: 1, ReplicaCount: 1},
		TierStaging: {SKU: "S1", Capacity: 2, ReplicaCount: 1},
		TierProd:    {SKU: "S2", Capacity: 4, ReplicaCount: 3},
	}

	got, err := Resolve(rule, TierProd)
	require.NoError(t, err)
	assert.Equal(t, Sizing{SKU: "S2", Capacity: 4, ReplicaCount: 3}, got)

	got, err = Resolve(rule, TierDev)
	require.NoError(t, err)
	assert.Equal(t, "Basic", got.SKU)

	_, err = Resolve(rule, Tier("qa"))
	assert.Error(t, err)

	partial := Rule{TierDev: {SKU: "Basic"}}
	_, err = Resolve(partial, TierProd)
	assert.Error(t, err)
	assert.False(t, partial.IsTotal())
	assert.Equal(t, []Tier{TierStaging, TierProd}, partial.Missing())
	assert.True(t, rule.IsTotal())
}

func TestRule_Clone(t *testing.T) {
	t.Parallel()
	rule := Rule{TierDev: {SKU: "Basic"}}
	clone := rule.Clone()
	clone[TierProd] = Sizing{SKU: "Premium"}

	assert.Len(t, rule, 1)
	assert.Len(t, clone, 2)
}

func TestLadder_Rank(t *testing.T) {
	t.Parallel()
	l := DefaultLadder()

	tests := []struct {
		weaker   string
		stronger string
	}{
		{"Free", "Basic"},
		{"Basic", "Standard"},
		{"B1", "S1"},
		{"S1", "S2"},
		{"S3", "P1v3"},
		{"P1v3", "P2v3"},
		{"Standard_D2s_v5", "Standard_D4s_v5"},
		{"Standard", "GlobalStandard"},
		{"Standard_LRS", "Premium_LRS"},
		{"developer", "premium"},
	}

	for _, tt := range tests {
		t.Run(tt.weaker+"<"+tt.stronger, func(t *testing.T) {
			t.Parallel()
			w, okW := l.Rank(tt.weaker)
			s, okS := l.Rank(tt.stronger)
			require.True(t, okW, "weaker SKU should be ranked")
			require.True(t, okS, "stronger SKU should be ranked")
			assert.Less(t, w, s)
		})
	}

	_, ok := l.Rank("gpt-4o")
	assert.False(t, ok)
	_, ok = l.Rank("")
	assert.False(t, ok)
}

func TestLadderFromNames(t *testing.T) {
	t.Parallel()
	l := LadderFromNames([]string{"Consumption", " ", "Dedicated"})
	require.Len(t, l, 2)

	c, ok := l.Rank("Consumption")
	require.True(t, ok)
	d, ok := l.Rank("dedicated-v2")
	require.True(t, ok)
	assert.Less(t, c, d)
}

func TestLint(t *testing.T) {
	t.Parallel()

	t.Run("ordered rule passes", func(t *testing.T) {
		t.Parallel()
		rule := Rule{
			TierDev:     {SKU: "Basic", Capacity: 1, ReplicaCount: 1},
			TierStaging: {SKU: "Standard", Capacity: 1, ReplicaCount: 2},
			TierProd:    {SKU: "Premium", Capacity: 3, ReplicaCount: 3},
		}
		assert.Empty(t, Lint("search-service", rule, DefaultLadder()))
	})

	t.Run("prod weaker than dev", func(t *testing.T) {
		t.Parallel()
		rule := Rule{
			TierDev:     {SKU: "Premium", Capacity: 4, ReplicaCount: 2},
			TierStaging: {SKU: "Premium", Capacity: 4, ReplicaCount: 2},
			TierProd:    {SKU: "Standard", Capacity: 2, ReplicaCount: 1},
		}
		violations := Lint("cosmos-db", rule, DefaultLadder())
		require.NotEmpty(t, violations)

		fields := map[string]bool{}
		for _, v := range violations {
			assert.Equal(t, "cosmos-db", v.Kind)
			assert.Equal(t, TierProd, v.Stronger)
			fields[v.Field] = true
		}
		assert.True(t, fields["capacity"])
		assert.True(t, fields["replicas"])
		assert.True(t, fields["sku"])
	})

	t.Run("unrankable skus are not compared", func(t *testing.T) {
		t.Parallel()
		rule := Rule{
			TierDev:     {SKU: "gpt-4o", Capacity: 10, ReplicaCount: 1},
			TierStaging: {SKU: "gpt-4o-mini", Capacity: 10, ReplicaCount: 1},
			TierProd:    {SKU: "gpt-4o", Capacity: 30, ReplicaCount: 1},
		}
		assert.Empty(t, Lint("model-deployment", rule, DefaultLadder()))
	})

	t.Run("missing tiers are skipped", func(t *testing.T) {
		t.Parallel()
		rule := Rule{TierProd: {SKU: "Basic"}}
		assert.Empty(t, Lint("partial", rule, DefaultLadder()))
	})
}
