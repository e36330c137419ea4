package sessionsvc

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/schoolmed/console/core/auth"
)

// FileStore persists the session as a JSON file, mode 0600 (it holds the
// bearer token).
type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ auth.Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (auth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return auth.Session{}, nil
		}
		return auth.Session{}, errors.Wrap(err, "reading session file")
	}
	var sess auth.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return auth.Session{}, errors.Wrap(err, "decoding session file")
	}
	return sess, nil
}

func (s *FileStore) Save(sess auth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "creating session dir")
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "encoding session")
	}
	return errors.Wrap(os.WriteFile(s.path, data, 0o600), "writing session file")
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session file")
	}
	return nil
}
