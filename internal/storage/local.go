package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalImageStore keeps images on the local filesystem under root and serves
// them from baseURL
type LocalImageStore struct {
	root    string
	baseURL string
	prefix  string
}

var _ ImageStore = (*LocalImageStore)(nil)

// NewLocalImageStore creates a filesystem-backed image store
func NewLocalImageStore(root, baseURL, prefix string) *LocalImageStore {
	return &LocalImageStore{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		prefix:  prefix,
	}
}

// Root returns the directory images are written to
func (s *LocalImageStore) Root() string {
	return s.root
}

// Save writes the image under a new key and returns the key
func (s *LocalImageStore) Save(ctx context.Context, img *Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := objectKey(s.prefix, img)
	full := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}
	if err := os.WriteFile(full, img.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return key, nil
}

// Delete removes the image; a missing file is not an error
func (s *LocalImageStore) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := cleanKey(ref)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// URL returns the public URL of ref
func (s *LocalImageStore) URL(ref string) string {
	if ref == "" {
		return ""
	}
	return s.baseURL + "/" + ref
}

// cleanKey rejects references that would escape the media root
func cleanKey(ref string) (string, error) {
	key := path.Clean("/" + ref)[1:]
	if key == "" || key != ref {
		return "", fmt.Errorf("invalid image reference %q", ref)
	}
	return key, nil
}
