package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/plan"
)

// FileStore keeps plans as JSON files below a root directory.
type FileStore struct {
	root string
}

// NewFileStore creates root if needed and returns a store on it.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{root: root}, nil
}

// Root returns the store directory.
func (f *FileStore) Root() string {
	return f.root
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.root, filepath.FromSlash(key))
}

// Put implements PlanStore.
func (f *FileStore) Put(_ context.Context, key string, p *plan.Plan) error {
	if err := validateKey(key); err != nil {
		return err
	}
	data, err := encode(p)
	if err != nil {
		return err
	}
	target := f.path(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", key, err)
	}
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("failed to write plan %s: %w", key, err)
	}
	return nil
}

// Get implements PlanStore.
func (f *FileStore) Get(_ context.Context, key string) (*plan.Plan, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read plan %s: %w", key, err)
	}
	return decode(key, data)
}

// List implements PlanStore.
func (f *FileStore) List(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(f.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}
		rel, err := filepath.Rel(f.root, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Delete implements PlanStore.
func (f *FileStore) Delete(_ context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := os.Remove(f.path(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return fmt.Errorf("failed to delete plan %s: %w", key, err)
	}
	return nil
}
