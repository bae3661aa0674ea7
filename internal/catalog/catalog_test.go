package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
)

func flatRule(sku string) sizing.Rule {
	return sizing.Rule{
		sizing.TierDev:     {SKU: sku, Capacity: 1, ReplicaCount: 1},
		sizing.TierStaging: {SKU: sku, Capacity: 1, ReplicaCount: 1},
		sizing.TierProd:    {SKU: sku, Capacity: 1, ReplicaCount: 1},
	}
}

func spec(kind string, minStage int, deps ...string) ResourceSpec {
	s := ResourceSpec{Kind: ResourceKind(kind), MinStage: minStage, Sizing: flatRule("standard")}
	for _, d := range deps {
		s.DependsOn = append(s.DependsOn, ResourceKind(d))
	}
	return s
}

func TestNew_Valid(t *testing.T) {
	t.Parallel()
	cat, err := New([]ResourceSpec{
		spec("search-index", 17, "search-service"),
		spec("search-service", 16, "resource-group"),
		spec("resource-group", 0),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, []ResourceKind{"search-index", "search-service", "resource-group"}, cat.Kinds())
	assert.Equal(t, 17, cat.MaxStage())
	assert.Equal(t, []int{0, 16, 17}, cat.Stages())
	assert.Empty(t, cat.Warnings())

	// Dependencies come before dependents.
	assert.Equal(t, []int{2, 1, 0}, cat.TopologicalIndices())

	i, ok := cat.Index("search-service")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, []int{1}, cat.DependencyIndices(0))

	s, ok := cat.Lookup("search-index")
	require.True(t, ok)
	assert.Equal(t, 17, s.MinStage)
	_, ok = cat.Lookup("missing")
	assert.False(t, ok)
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()
	specs := []ResourceSpec{spec("a", 0), spec("b", 0, "a")}
	cat, err := New(specs)
	require.NoError(t, err)

	specs[1].DependsOn[0] = "mutated"
	specs[0].Sizing[sizing.TierProd] = sizing.Sizing{SKU: "changed"}

	got, _ := cat.Lookup("b")
	assert.Equal(t, []ResourceKind{"a"}, got.DependsOn)
	got, _ = cat.Lookup("a")
	assert.Equal(t, "standard", got.Sizing[sizing.TierProd].SKU)

	// Accessors hand out copies as well.
	out := cat.Specs()
	out[0].Sizing[sizing.TierDev] = sizing.Sizing{SKU: "changed"}
	got, _ = cat.Lookup("a")
	assert.Equal(t, "standard", got.Sizing[sizing.TierDev].SKU)
}

func TestNew_Rejects(t *testing.T) {
	t.Parallel()

	partial := spec("partial", 0)
	partial.Sizing = sizing.Rule{sizing.TierDev: {SKU: "basic"}}

	negative := spec("negative", 0)
	negative.Sizing[sizing.TierProd] = sizing.Sizing{SKU: "premium", Capacity: -1}

	unknownTier := spec("qa-tier", 0)
	unknownTier.Sizing["qa"] = sizing.Sizing{SKU: "basic"}

	badStyle := spec("bad-style", 0)
	badStyle.Naming.Style = "camel"

	outA := spec("out-a", 0)
	outA.Output.Key = "endpoint"
	outB := spec("out-b", 0)
	outB.Output.Key = "endpoint"

	tests := []struct {
		name    string
		specs   []ResourceSpec
		wantMsg string
	}{
		{"empty kind", []ResourceSpec{spec("", 0)}, "kind is required"},
		{"duplicate kind", []ResourceSpec{spec("a", 0), spec("a", 1)}, "declared more than once"},
		{"negative min stage", []ResourceSpec{spec("a", -1)}, "min stage must not be negative"},
		{"unknown dependency", []ResourceSpec{spec("a", 0, "ghost")}, `unknown kind "ghost"`},
		{"self dependency", []ResourceSpec{spec("a", 0, "a")}, "depends on itself"},
		{"cycle", []ResourceSpec{spec("a", 0, "c"), spec("b", 0, "a"), spec("c", 0, "b")}, "dependency cycle: a -> c -> b -> a"},
		{"partial sizing", []ResourceSpec{partial}, "sizing is not defined for [staging prod]"},
		{"negative sizing", []ResourceSpec{negative}, "prod sizing must not be negative"},
		{"unknown tier", []ResourceSpec{unknownTier}, `unknown tier "qa"`},
		{"bad style", []ResourceSpec{badStyle}, `unknown naming style "camel"`},
		{"duplicate output key", []ResourceSpec{outA, outB}, `output key "endpoint" already used by out-a`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cat, err := New(tt.specs)
			require.Error(t, err)
			assert.Nil(t, cat)
			assert.True(t, IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNew_CollectsAllProblems(t *testing.T) {
	t.Parallel()
	_, err := New([]ResourceSpec{spec("a", -1, "ghost"), spec("b", 0, "b")})
	require.Error(t, err)

	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Len(t, ce.Problems, 3)
}

func TestNew_DuplicateDependencyIsIgnored(t *testing.T) {
	t.Parallel()
	cat, err := New([]ResourceSpec{spec("a", 0), spec("b", 0, "a", "a")})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, cat.DependencyIndices(1))
}

func TestNew_StageInversion(t *testing.T) {
	t.Parallel()
	specs := []ResourceSpec{spec("d", 20), spec("c", 18, "d")}

	t.Run("lenient records a warning", func(t *testing.T) {
		t.Parallel()
		cat, err := New(specs)
		require.NoError(t, err)

		warnings := cat.Warnings()
		require.Len(t, warnings, 1)
		assert.Equal(t, WarningStageInversion, warnings[0].Code)
		assert.Equal(t, ResourceKind("c"), warnings[0].Kind)
		assert.Equal(t, ResourceKind("d"), warnings[0].Cause)
	})

	t.Run("strict rejects", func(t *testing.T) {
		t.Parallel()
		_, err := New(specs, WithStrictStageOrder())
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
		assert.Contains(t, err.Error(), "c (min stage 18) depends on d (min stage 20)")
	})
}

func TestNew_SizingLintWarnings(t *testing.T) {
	t.Parallel()
	weak := spec("weak-prod", 0)
	weak.Sizing = sizing.Rule{
		sizing.TierDev:     {SKU: "premium", Capacity: 2, ReplicaCount: 2},
		sizing.TierStaging: {SKU: "premium", Capacity: 2, ReplicaCount: 2},
		sizing.TierProd:    {SKU: "basic", Capacity: 2, ReplicaCount: 2},
	}

	cat, err := New([]ResourceSpec{weak})
	require.NoError(t, err)

	warnings := cat.Warnings()
	require.NotEmpty(t, warnings)
	for _, w := range warnings {
		assert.Equal(t, WarningSizingLint, w.Code)
		assert.Equal(t, ResourceKind("weak-prod"), w.Kind)
	}

	// A ladder that ranks basic above premium makes the rule consistent.
	cat, err = New([]ResourceSpec{weak}, WithLadder(sizing.LadderFromNames([]string{"premium", "basic"})))
	require.NoError(t, err)
	assert.Empty(t, cat.Warnings())
}

func TestResourceSpec_Defaults(t *testing.T) {
	t.Parallel()
	s := spec("storage-account", 0)
	assert.Equal(t, "storage-account", s.Discriminator())
	assert.Equal(t, "storage-account", s.OutputKey())
	assert.Equal(t, "{name}", s.OutputFormat())
	assert.Equal(t, StyleHyphenated, s.NameStyle())

	s.Naming = NamingPolicy{Abbreviation: "st", Style: StyleCompact}
	s.Output = OutputSpec{Key: "storageAccountEndpoint", Format: "https://{name}.blob.core.windows.net/"}
	assert.Equal(t, "st", s.Discriminator())
	assert.Equal(t, "storageAccountEndpoint", s.OutputKey())
	assert.Equal(t, "https://{name}.blob.core.windows.net/", s.OutputFormat())
	assert.Equal(t, StyleCompact, s.NameStyle())
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		cat, err := Parse([]byte(`
sku_ladder: [consumption, dedicated]
resources:
  - kind: resource-group
    min_stage: 0
    sizing:
      dev: { sku: consumption, capacity: 1, replicas: 1 }
      staging: { sku: consumption, capacity: 1, replicas: 1 }
      prod: { sku: dedicated, capacity: 1, replicas: 1 }
  - kind: search-service
    min_stage: 16
    depends_on: [resource-group]
    naming: { abbreviation: srch, max_length: 60 }
    sizing:
      dev: { sku: consumption, capacity: 1, replicas: 1 }
      staging: { sku: consumption, capacity: 1, replicas: 2 }
      prod: { sku: dedicated, capacity: 2, replicas: 3 }
`))
		require.NoError(t, err)
		assert.Equal(t, 2, cat.Len())
		assert.Len(t, cat.Ladder(), 2)

		s, ok := cat.Lookup("search-service")
		require.True(t, ok)
		assert.Equal(t, "srch", s.Naming.Abbreviation)
		assert.Equal(t, 60, s.Naming.MaxLength)
		assert.Equal(t, 3, s.Sizing[sizing.TierProd].ReplicaCount)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		_, err := Parse([]byte("resources:\n  - kind: a\n    min_stag: 1\n"))
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		_, err := Parse(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog is empty")
	})

	t.Run("strict flag from document", func(t *testing.T) {
		t.Parallel()
		_, err := Parse([]byte(`
strict_stage_order: true
resources:
  - kind: d
    min_stage: 20
    sizing:
      dev: { sku: basic }
      staging: { sku: basic }
      prod: { sku: basic }
  - kind: c
    min_stage: 18
    depends_on: [d]
    sizing:
      dev: { sku: basic }
      staging: { sku: basic }
      prod: { sku: basic }
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "depends on d")
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, BuiltinSource(), 0o600))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Positive(t, cat.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file")
}

func TestBuiltin(t *testing.T) {
	t.Parallel()
	cat, err := Builtin(WithStrictStageOrder())
	require.NoError(t, err, "embedded catalog must be valid even under strict stage order")

	assert.Empty(t, cat.Warnings(), "embedded catalog must not trip the sizing lint")
	assert.LessOrEqual(t, cat.MaxStage(), 30)

	for _, kind := range []ResourceKind{"resource-group", "search-index", "model-deployment", "autoscale-group", "aks-node-pool"} {
		_, ok := cat.Lookup(kind)
		assert.True(t, ok, "builtin catalog should declare %s", kind)
	}

	idx, _ := cat.Lookup("search-index")
	assert.ElementsMatch(t, []ResourceKind{"search-service", "storage-account", "model-deployment"}, idx.DependsOn)

	st, _ := cat.Lookup("storage-account")
	assert.Equal(t, StyleCompact, st.NameStyle())
	assert.Equal(t, 24, st.Naming.MaxLength)
}
