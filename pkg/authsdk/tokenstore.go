package authsdk

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists a session token between runs, playing the role the
// browser's localStorage plays for the web client. An empty string means no
// session is stored.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a file with owner-only permissions.
type FileTokenStore struct {
	Path string
}

// NewFileTokenStore creates a token store at the conventional location under
// the user config dir, falling back to the working directory when the config
// dir cannot be resolved.
func NewFileTokenStore() *FileTokenStore {
	dir, err := os.UserConfigDir()
	if err != nil {
		return &FileTokenStore{Path: ".edusupport-token"}
	}
	return &FileTokenStore{Path: filepath.Join(dir, "edusupport", "token")}
}

func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token+"\n"), 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryTokenStore holds the token in memory. Useful in tests and for
// processes that should not persist sessions.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
