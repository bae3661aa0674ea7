// Package store persists compiled plans.
//
// Plans are stored as JSON documents under keys of the form
// <base>/<environment>/stage-NN.json. Backends are selected by URL with
// [Open]: mem://, file:///path and s3://bucket/prefix.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/plan"
)

// ErrNotFound is returned by Get and Delete for unknown keys.
var ErrNotFound = errors.New("plan not found")

// PlanStore saves and loads compiled plans.
type PlanStore interface {
	Put(ctx context.Context, key string, p *plan.Plan) error
	Get(ctx context.Context, key string) (*plan.Plan, error)
	// List returns the keys under prefix in lexical order.
	List(ctx context.Context, prefix string) ([]string, error)
	Delete(ctx context.Context, key string) error
}

// Key returns the storage key of a plan.
func Key(p *plan.Plan) string {
	return StageKey(p.BaseName, string(p.Environment), p.Stage)
}

// StageKey returns the key for a base name, environment and stage.
func StageKey(base, environment string, stage int) string {
	return fmt.Sprintf("%s/%s/stage-%02d.json", base, environment, stage)
}

// validateKey rejects keys that would escape a store's root.
func validateKey(key string) error {
	if key == "" {
		return errors.New("key is required")
	}
	if strings.HasPrefix(key, "/") || path.Clean(key) != key || strings.HasPrefix(key, "..") {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}

func encode(p *plan.Plan) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}
	return append(data, '\n'), nil
}

func decode(key string, data []byte) (*plan.Plan, error) {
	var p plan.Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode plan %s: %w", key, err)
	}
	return &p, nil
}

// Open returns the store described by rawURL.
func Open(ctx context.Context, rawURL string) (PlanStore, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid store URL %q: %w", rawURL, err)
	}
	switch u.Scheme {
	case "mem":
		return NewMemoryStore(), nil
	case "file", "":
		dir := u.Path
		if u.Scheme == "" {
			dir = rawURL
		} else if u.Host != "" {
			dir = u.Host + u.Path
		}
		if dir == "" {
			return nil, fmt.Errorf("store URL %q has no path", rawURL)
		}
		return NewFileStore(dir)
	case "s3":
		if u.Host == "" {
			return nil, fmt.Errorf("store URL %q has no bucket", rawURL)
		}
		return NewS3Store(ctx, S3Options{
			Bucket:   u.Host,
			Prefix:   strings.Trim(u.Path, "/"),
			Endpoint: u.Query().Get("endpoint"),
			Region:   u.Query().Get("region"),
		})
	default:
		return nil, fmt.Errorf("unsupported store scheme %q", u.Scheme)
	}
}
