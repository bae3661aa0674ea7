package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/plan"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
)

func testPlan(base string, env sizing.Tier, stage int) *plan.Plan {
	return &plan.Plan{
		Stage:       stage,
		Environment: env,
		BaseName:    base,
		Suffix:      "ab12",
		Location:    "eastus",
		Resources: []plan.ResolvedResource{{
			Kind:       "resource-group",
			Type:       "Microsoft.Resources/resourceGroups",
			Name:       "rg-" + base + "-" + string(env) + "-ab12",
			Active:     true,
			Properties: map[string]string{plan.PropertySKU: "standard"},
		}},
		Levels: [][]catalog.ResourceKind{{"resource-group"}},
		Outputs: map[string]plan.OutputValue{
			"resourceGroupName": plan.Present("rg-" + base),
		},
	}
}

func TestKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "contoso/dev/stage-03.json", Key(testPlan("contoso", sizing.TierDev, 3)))
	assert.Equal(t, "contoso/prod/stage-29.json", StageKey("contoso", "prod", 29))
}

func TestValidateKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key     string
		wantErr bool
	}{
		{"contoso/dev/stage-00.json", false},
		{"", true},
		{"/etc/passwd", true},
		{"../outside.json", true},
		{"a/../../b.json", true},
		{"a//b.json", true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			err := validateKey(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// exercise runs the behaviour every PlanStore must share.
func exercise(t *testing.T, s PlanStore) {
	t.Helper()
	ctx := context.Background()

	dev := testPlan("contoso", sizing.TierDev, 3)
	prod := testPlan("contoso", sizing.TierProd, 3)
	other := testPlan("fabrikam", sizing.TierDev, 0)
	for _, p := range []*plan.Plan{prod, dev, other} {
		require.NoError(t, s.Put(ctx, Key(p), p))
	}

	got, err := s.Get(ctx, Key(dev))
	require.NoError(t, err)
	assert.Equal(t, dev.Fingerprint(), got.Fingerprint())
	assert.Equal(t, "rg-contoso", *got.Output("resourceGroupName").Value)

	keys, err := s.List(ctx, "contoso/")
	require.NoError(t, err)
	assert.Equal(t, []string{"contoso/dev/stage-03.json", "contoso/prod/stage-03.json"}, keys)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, s.Delete(ctx, Key(dev)))
	_, err = s.Get(ctx, Key(dev))
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
	assert.True(t, errors.Is(s.Delete(ctx, Key(dev)), ErrNotFound))

	assert.Error(t, s.Put(ctx, "../escape.json", dev))
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exercise(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "plans")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Root())
	exercise(t, s)
	assert.FileExists(t, filepath.Join(dir, "contoso", "prod", "stage-03.json"))
}

func TestMemoryStore_PutCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()
	p := testPlan("contoso", sizing.TierDev, 1)
	require.NoError(t, s.Put(ctx, Key(p), p))

	p.Resources[0].Name = "changed"
	got, err := s.Get(ctx, Key(p))
	require.NoError(t, err)
	assert.Equal(t, "rg-contoso-dev-ab12", got.Resources[0].Name)
}

func TestOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		url     string
		want    any
		wantErr string
	}{
		{name: "memory", url: "mem://", want: &MemoryStore{}},
		{name: "file url", url: "file://" + dir, want: &FileStore{}},
		{name: "bare path", url: filepath.Join(dir, "bare"), want: &FileStore{}},
		{name: "s3", url: "s3://plans/workshop?region=eu-west-1&endpoint=http://127.0.0.1:9000", want: &S3Store{}},
		{name: "s3 without bucket", url: "s3:///prefix", wantErr: "has no bucket"},
		{name: "unknown scheme", url: "ftp://host/x", wantErr: "unsupported store scheme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := Open(ctx, tt.url)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
		})
	}
}

func TestOpen_S3Prefix(t *testing.T) {
	t.Parallel()
	s, err := Open(context.Background(), "s3://plans/workshop/2026/?region=eu-west-1")
	require.NoError(t, err)
	s3s := s.(*S3Store)
	assert.Equal(t, "plans", s3s.bucket)
	assert.Equal(t, "workshop/2026", s3s.prefix)
	assert.Equal(t, "workshop/2026/contoso/dev/stage-01.json", s3s.objectKey("contoso/dev/stage-01.json"))
}
