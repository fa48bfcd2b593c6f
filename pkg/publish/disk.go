package publish

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DiskStore publishes artifacts to a local directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a store rooted at dir, creating it if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Put writes an artifact file under the store directory.
func (s *DiskStore) Put(ctx context.Context, name, key, contentType string, r io.Reader) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		os.Remove(path)
		return nil, err
	}

	return &Artifact{
		ID:          uuid.NewString(),
		Name:        name,
		Key:         key,
		ContentType: contentType,
		Size:        written,
		URL:         "file://" + path,
		PublishedAt: time.Now(),
	}, nil
}

// Keys lists the relative paths of all stored artifacts.
func (s *DiskStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := filepath.Walk(s.dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.dir, p)
		if err != nil {
			return err
		}
		keys = append(keys, strings.ReplaceAll(rel, string(filepath.Separator), "/"))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

// Remove deletes an artifact file.
func (s *DiskStore) Remove(ctx context.Context, key string) error {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}
