// Package localstore provides KeyValueStore implementations that live on the
// local machine: a file-backed store (one file per key) and an in-memory
// store. Both follow the containment policy: storage failures are logged and
// swallowed, never returned.
package localstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// FileStore persists each key as a file under Dir. It is the closest analog
// to per-origin browser storage: a handful of named collections, serialized
// text, no schema.
type FileStore struct {
	dir string
	log zerolog.Logger
}

// NewFileStore creates the backing directory if needed. A directory that
// cannot be created is logged; the store then degrades to absence on every
// read and a no-op on every write.
func NewFileStore(dir string, log zerolog.Logger) *FileStore {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("localstore: cannot create storage directory")
	}
	return &FileStore{dir: dir, log: log}
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Error().Err(err).Str("key", key).Msg("localstore: read failed")
		}
		return "", false
	}
	return string(data), true
}

func (s *FileStore) Set(_ context.Context, key, value string) {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("localstore: write failed")
		return
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("localstore: rename failed")
	}
}

func (s *FileStore) Remove(_ context.Context, key string) {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Error().Err(err).Str("key", key).Msg("localstore: remove failed")
	}
}

func (s *FileStore) Clear(_ context.Context) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Error().Err(err).Str("dir", s.dir).Msg("localstore: clear failed")
		return
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			s.log.Error().Err(err).Str("file", e.Name()).Msg("localstore: clear failed")
		}
	}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, sanitize(key)+".json")
}

// sanitize keeps keys usable as file names. Logical keys are short fixed
// identifiers, so this only guards against separators.
func sanitize(key string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, key)
}
