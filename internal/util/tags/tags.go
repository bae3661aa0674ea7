package tags

import (
	"strconv"
)

// Standard tag keys.
const (
	// KeyManagedBy identifies the tool that produced the plan
	KeyManagedBy = "managed-by"

	// KeyBase identifies the deployment by its base name
	KeyBase = "tierplan-base"

	// KeyEnvironment holds the environment tier
	KeyEnvironment = "tierplan-environment"

	// KeyStage holds the stage that unlocks the resource
	KeyStage = "tierplan-stage"

	// KeyKind holds the catalog kind
	KeyKind = "tierplan-kind"
)

// ManagedByTierplan is the default managed-by value.
const ManagedByTierplan = "tierplan"

var standardKeys = map[string]bool{
	KeyManagedBy:   true,
	KeyBase:        true,
	KeyEnvironment: true,
	KeyStage:       true,
	KeyKind:        true,
}

// IsStandardKey reports whether key is reserved.
func IsStandardKey(key string) bool {
	return standardKeys[key]
}

// Builder provides a fluent interface for building resource tags.
type Builder struct {
	tags map[string]string
	user map[string]string
}

// NewBuilder creates a builder with the base name and managed-by preset.
func NewBuilder(baseName string) *Builder {
	return &Builder{
		tags: map[string]string{
			KeyBase:      baseName,
			KeyManagedBy: ManagedByTierplan,
		},
		user: map[string]string{},
	}
}

// WithEnvironment sets the environment tier tag.
func (b *Builder) WithEnvironment(env string) *Builder {
	b.tags[KeyEnvironment] = env
	return b
}

// WithStage sets the unlocking stage tag.
func (b *Builder) WithStage(stage int) *Builder {
	b.tags[KeyStage] = strconv.Itoa(stage)
	return b
}

// WithKind sets the kind tag.
func (b *Builder) WithKind(kind string) *Builder {
	b.tags[KeyKind] = kind
	return b
}

// WithManagedBy overrides the managed-by value.
func (b *Builder) WithManagedBy(manager string) *Builder {
	if manager != "" {
		b.tags[KeyManagedBy] = manager
	}
	return b
}

// Merge adds user tags. Standard keys in extra are ignored.
func (b *Builder) Merge(extra map[string]string) *Builder {
	for k, v := range extra {
		b.user[k] = v
	}
	return b
}

// Build returns a fresh map with user tags first and standard tags on top.
func (b *Builder) Build() map[string]string {
	result := make(map[string]string, len(b.tags)+len(b.user))
	for k, v := range b.user {
		if !IsStandardKey(k) {
			result[k] = v
		}
	}
	for k, v := range b.tags {
		result[k] = v
	}
	return result
}

// Overridden returns the user keys that collide with standard keys, sorted.
func Overridden(user map[string]string) []string {
	var out []string
	for _, k := range []string{KeyBase, KeyEnvironment, KeyKind, KeyManagedBy, KeyStage} {
		if _, ok := user[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
