// Package kvstore provides the process-wide key-value store backing all
// persisted state. The whole store is one JSON document on disk; every
// mutation runs inside Update and is flushed with a temp-file write plus
// rename, so writes that belong together commit together or not at all.
package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/acmebank/acmebank/internal/apperrors"
	"github.com/spf13/afero"
)

// Store is a string-keyed store of JSON-serializable values. All access is
// serialized behind one mutex; there is exactly one logical writer.
type Store struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
	data map[string]json.RawMessage
}

// Open loads the document at path, creating parent directories as needed. A
// missing file yields an empty store; a corrupt one is a storage failure.
func Open(fs afero.Fs, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: creating store directory: %v", apperrors.ErrStorageFailure, err)
		}
	}

	s := &Store{fs: fs, path: path, data: make(map[string]json.RawMessage)}

	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("%w: reading store file: %v", apperrors.ErrStorageFailure, err)
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("%w: decoding store file: %v", apperrors.ErrStorageFailure, err)
	}
	return s, nil
}

// Get unmarshals the value under key into out. It reports whether the key was
// present.
func (s *Store) Get(key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("%w: decoding key %q: %v", apperrors.ErrStorageFailure, key, err)
	}
	return true, nil
}

// Update runs fn against a working copy of the store. If fn returns nil the
// copy is flushed to disk atomically and becomes the live state; any error
// leaves both the file and the in-memory state untouched.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := make(map[string]json.RawMessage, len(s.data))
	for k, v := range s.data {
		working[k] = v
	}

	tx := &Tx{data: working}
	if err := fn(tx); err != nil {
		return err
	}

	if err := s.flush(working); err != nil {
		return err
	}
	s.data = working
	return nil
}

func (s *Store) flush(data map[string]json.RawMessage) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: encoding store: %v", apperrors.ErrStorageFailure, err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, encoded, 0o644); err != nil {
		return fmt.Errorf("%w: writing store file: %v", apperrors.ErrStorageFailure, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: replacing store file: %v", apperrors.ErrStorageFailure, err)
	}
	return nil
}

// Tx is the working view handed to Update callbacks. Mutations stay private
// to the callback until the commit succeeds.
type Tx struct {
	data map[string]json.RawMessage
}

// Get unmarshals the staged value under key into out, reporting presence.
func (tx *Tx) Get(key string, out any) (bool, error) {
	raw, ok := tx.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("%w: decoding key %q: %v", apperrors.ErrStorageFailure, key, err)
	}
	return true, nil
}

// Set stages value under key.
func (tx *Tx) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encoding key %q: %v", apperrors.ErrStorageFailure, key, err)
	}
	tx.data[key] = raw
	return nil
}

// Delete stages removal of key.
func (tx *Tx) Delete(key string) {
	delete(tx.data, key)
}
