// Package filestore manages the upload root: staged multipart uploads,
// promotion into the date/collection layout after the row commit, and
// best-effort removal of superseded files.
package filestore

import (
	"os"
	"path/filepath"

	"k8s.io/klog/v2"
)

const stagingDirName = ".staging"

// Store is the upload root. Stored paths are always slash-separated and
// relative to the root, e.g. 20240101/news/photo123456789012345.png.
type Store struct {
	root string
}

func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Join(root, stagingDirName), 0755); err != nil {
		return nil, err
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string {
	return s.root
}

// Abs maps a stored relative path onto the filesystem.
func (s *Store) Abs(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

// Remove deletes a single stored file.
func (s *Store) Remove(rel string) error {
	return os.Remove(s.Abs(rel))
}

// RemoveAll deletes each path independently and returns the paths that could
// not be removed, so callers can log or retry instead of losing the failure.
func (s *Store) RemoveAll(rels []string) []string {
	var failed []string
	for _, rel := range rels {
		if err := s.Remove(rel); err != nil {
			klog.V(6).Infof("파일 삭제 실패: path=%s, error=%v", rel, err)
			failed = append(failed, rel)
		}
	}
	return failed
}
