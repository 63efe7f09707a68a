// Package storage provides the snapshot persistence backends behind
// store.Repository: a local JSON file (default) and Redis.
package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/htechvn/htech-store/internal/store"
)

// FileRepo keeps the whole snapshot as one human-readable JSON document
// on disk. Writes go through a temp file and rename so a crashed write
// never leaves a truncated snapshot behind.
type FileRepo struct {
	path string
}

func NewFileRepo(path string) *FileRepo {
	return &FileRepo{path: path}
}

func (r *FileRepo) Load(ctx context.Context) (*store.Snapshot, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read snapshot %s", r.path)
	}
	var snap store.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, errors.Wrapf(err, "decode snapshot %s", r.path)
	}
	return &snap, nil
}

func (r *FileRepo) Save(ctx context.Context, snap *store.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".htech-store-*")
	if err != nil {
		return errors.Wrap(err, "create temp snapshot")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write temp snapshot")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "flush temp snapshot")
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return errors.Wrapf(err, "replace snapshot %s", r.path)
	}
	return nil
}

func (r *FileRepo) Close() error { return nil }
