package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore keeps the token in a small JSON file with owner-only
// permissions. This is the durable-storage analogue for a terminal client.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

type tokenFile struct {
	Token string `json:"token"`
}

func (s *FileStore) Token() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}

	var f tokenFile
	if err := json.Unmarshal(data, &f); err != nil {
		return ""
	}
	return f.Token
}

func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(tokenFile{Token: token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
