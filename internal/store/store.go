package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Storage keys. Each key holds one JSON-serialized array in its own file.
const (
	DraftsKey = "l27-dca-drafts"
	EventsKey = "l27-dca-calendar"
)

// FileStore persists named JSON arrays under a directory. It degrades
// instead of failing: a missing, unreadable, or non-array entry loads as an
// empty collection, and write failures are logged and skipped. Callers never
// see a storage error.
type FileStore struct {
	dir string
	log *logrus.Logger
}

func New(dir string, log *logrus.Logger) *FileStore {
	if err := os.MkdirAll(dir, 0o755); err != nil && log != nil {
		log.WithError(err).Warn("store directory unavailable, persistence disabled")
	}
	return &FileStore{dir: dir, log: log}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the key into out, which must be a pointer to a slice. out is
// left untouched on any failure, so an empty slice stays empty.
func (s *FileStore) Load(key string, out interface{}) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		if s.log != nil {
			s.log.WithError(err).WithField("key", key).Warn("discarding unreadable stored value")
		}
	}
}

// Save writes the collection under the key. Failures are swallowed.
func (s *FileStore) Save(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		if s.log != nil {
			s.log.WithError(err).WithField("key", key).Warn("store write skipped")
		}
		return
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		if s.log != nil {
			s.log.WithError(err).WithField("key", key).Warn("store write skipped")
		}
	}
}
