// Package kvfile persists named JSON collections as blob files in a local
// directory, standing in for the device key-value storage the app state
// lives in. One file per collection key; a write replaces the whole value.
package kvfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/apperrors"
	"github.com/spf13/afero"
)

// Store is the storage accessor. It is backed by an afero filesystem so
// tests can run against an in-memory fs.
type Store struct {
	fs  afero.Fs
	dir string
}

// NewStore creates the backing directory if needed and returns a Store.
func NewStore(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %v: %w", dir, err, apperrors.ErrStorage)
	}
	return &Store{fs: fs, dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the raw value stored under key. A key that was never written
// yields apperrors.ErrNotFound; callers treat that as the empty collection.
// Any other failure is an apperrors.ErrStorage.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := afero.ReadFile(s.fs, s.path(key))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("key %q: %w", key, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read key %q: %v: %w", key, err, apperrors.ErrStorage)
	}
	return raw, nil
}

// Set replaces the value stored under key. The value is written to a
// temporary file and renamed into place so a single collection file is never
// left half-written; there is still no guarantee across two Set calls.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp := s.path(key) + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, value, 0o644); err != nil {
		return fmt.Errorf("write key %q: %v: %w", key, err, apperrors.ErrStorage)
	}
	if err := s.fs.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("commit key %q: %v: %w", key, err, apperrors.ErrStorage)
	}
	return nil
}

// readCollection decodes the JSON array stored under key into records.
// A missing key is the empty collection; malformed JSON is rejected here at
// the storage boundary rather than at point of use.
func readCollection[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []T{}, nil
		}
		return nil, err
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode collection %q: %v: %w", key, err, apperrors.ErrStorage)
	}
	return records, nil
}

// writeCollection replaces the collection stored under key with records.
func writeCollection[T any](ctx context.Context, s *Store, key string, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %q: %v: %w", key, err, apperrors.ErrStorage)
	}
	return s.Set(ctx, key, raw)
}
