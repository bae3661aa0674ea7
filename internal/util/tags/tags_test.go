package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilder(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		baseName string
	}{
		{"simple base name", "workshop"},
		{"with numbers", "workshop-01"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tags := NewBuilder(tt.baseName).Build()
			assert.Equal(t, tt.baseName, tags[KeyBase])
			assert.Equal(t, ManagedByTierplan, tags[KeyManagedBy])
			assert.Len(t, tags, 2)
		})
	}
}

func TestBuilder_Chain(t *testing.T) {
	t.Parallel()
	tags := NewBuilder("workshop").
		WithEnvironment("prod").
		WithStage(17).
		WithKind("search-index").
		WithManagedBy("ci").
		Build()

	assert.Equal(t, map[string]string{
		KeyBase:        "workshop",
		KeyManagedBy:   "ci",
		KeyEnvironment: "prod",
		KeyStage:       "17",
		KeyKind:        "search-index",
	}, tags)
}

func TestBuilder_UserTagsNeverOverrideStandardKeys(t *testing.T) {
	t.Parallel()
	user := map[string]string{
		"owner":        "team-a",
		KeyEnvironment: "dev",
		KeyManagedBy:   "terraform",
	}
	tags := NewBuilder("workshop").WithEnvironment("prod").Merge(user).Build()

	assert.Equal(t, "team-a", tags["owner"])
	assert.Equal(t, "prod", tags[KeyEnvironment])
	assert.Equal(t, ManagedByTierplan, tags[KeyManagedBy])
	assert.Equal(t, []string{KeyEnvironment, KeyManagedBy}, Overridden(user))
}

func TestBuilder_BuildReturnsCopy(t *testing.T) {
	t.Parallel()
	b := NewBuilder("workshop")
	first := b.Build()
	first["mutated"] = "yes"

	assert.NotContains(t, b.Build(), "mutated")
}

func TestIsStandardKey(t *testing.T) {
	t.Parallel()
	assert.True(t, IsStandardKey(KeyKind))
	assert.False(t, IsStandardKey("owner"))
}
