package session

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileStore keeps the credential as a JSON file, readable by the current user only.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Credential(context.Context) (Credential, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Credential{}, false
	}
	return decode(data)
}

func (s *FileStore) Save(_ context.Context, cred Credential) error {
	data, err := encode(cred)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "creating session directory")
	}

	// write then rename so that readers never see a partial file
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "writing session")
	}
	return errors.Wrap(os.Rename(tmp, s.path), "writing session")
}

func (s *FileStore) Clear(context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "clearing session")
	}
	return nil
}
