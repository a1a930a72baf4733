package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/stubhub/pkg/stubhub"
)

// FileSessionStore keeps sessions in a YAML file readable only by the
// owner. All keys share one file.
type FileSessionStore struct {
	path string
	mu   sync.Mutex
}

// NewFileSessionStore returns a store backed by path. The file and its
// directory are created on first save.
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

// Path returns the backing file.
func (s *FileSessionStore) Path() string {
	return s.path
}

// LoadSession implements SessionStore.
func (s *FileSessionStore) LoadSession(_ context.Context, key string) (stubhub.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.read()
	if err != nil {
		return stubhub.Session{}, err
	}
	sess, ok := sessions[key]
	if !ok {
		return stubhub.Session{}, ErrNotFound
	}
	return sess, nil
}

// SaveSession implements SessionStore.
func (s *FileSessionStore) SaveSession(_ context.Context, key string, sess stubhub.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.read()
	if err != nil {
		return err
	}
	sessions[key] = sess
	return s.write(sessions)
}

// DeleteSession implements SessionStore. Deleting a missing key is not an
// error.
func (s *FileSessionStore) DeleteSession(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := sessions[key]; !ok {
		return nil
	}
	delete(sessions, key)
	return s.write(sessions)
}

func (s *FileSessionStore) read() (map[string]stubhub.Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]stubhub.Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}

	sessions := map[string]stubhub.Session{}
	if err := yaml.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}
	return sessions, nil
}

// write replaces the file atomically so a crash never leaves a truncated
// session behind.
func (s *FileSessionStore) write(sessions map[string]stubhub.Session) error {
	data, err := yaml.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encoding sessions: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.yaml")
	if err != nil {
		return fmt.Errorf("creating session file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing session file: %w", err)
	}
	return nil
}
