package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store is the object-storage surface the controllers depend on: save a blob
// under a key and get back a public URL, or remove a previously stored blob
// by that URL.
type Store interface {
	Save(key string, r io.Reader) (string, error)
	Remove(publicURL string) error
}

// DiskStore keeps uploads on the local filesystem and serves them through a
// static route mounted at BaseURL.
type DiskStore struct {
	Dir     string
	BaseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{Dir: dir, BaseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *DiskStore) Save(key string, r io.Reader) (string, error) {
	key = strings.TrimPrefix(key, "/")
	dest := filepath.Join(s.Dir, filepath.FromSlash(key))

	// Keys are built server-side, but refuse traversal outright.
	if !strings.HasPrefix(dest, filepath.Clean(s.Dir)+string(os.PathSeparator)) {
		return "", errors.New("storage: invalid key")
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dest)
		return "", err
	}

	return s.BaseURL + "/" + key, nil
}

func (s *DiskStore) Remove(publicURL string) error {
	if !strings.HasPrefix(publicURL, s.BaseURL+"/") {
		return errors.New("storage: url not served by this store")
	}
	key := strings.TrimPrefix(publicURL, s.BaseURL+"/")
	return os.Remove(filepath.Join(s.Dir, filepath.FromSlash(key)))
}
