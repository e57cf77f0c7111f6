package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"k8s.io/klog/v2"
)

// Recover finishes interrupted promotions and sweeps abandoned staging
// directories. A leftover journal means the process died between the row
// commit and Apply; replaying it restores the invariant that committed rows
// only reference files present under the upload root. Staging directories
// without a journal belong to requests that never committed and are removed
// once older than maxAge.
func (s *Store) Recover(maxAge time.Duration) error {
	stagingRoot := filepath.Join(s.root, stagingDirName)
	entries, err := os.ReadDir(stagingRoot)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".journal.json") {
			continue
		}
		token := strings.TrimSuffix(entry.Name(), ".journal.json")
		if err := s.replayJournal(stagingRoot, token); err != nil {
			klog.Errorf("저널 복구 실패: token=%s, error=%v", token, err)
		}
	}

	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		dir := filepath.Join(stagingRoot, entry.Name())
		if err := os.RemoveAll(dir); err != nil {
			klog.V(6).Infof("오래된 스테이징 디렉터리 정리 실패: %s, error=%v", dir, err)
		} else {
			klog.V(6).Infof("오래된 스테이징 디렉터리 정리: %s", entry.Name())
		}
	}
	return nil
}

func (s *Store) replayJournal(stagingRoot, token string) error {
	journalPath := filepath.Join(stagingRoot, token+".journal.json")
	data, err := os.ReadFile(journalPath)
	if err != nil {
		return err
	}

	var files []StagedFile
	if err := json.Unmarshal(data, &files); err != nil {
		return err
	}

	for _, f := range files {
		src := filepath.Join(stagingRoot, token, filepath.FromSlash(f.RelPath))
		if _, err := os.Stat(src); err != nil {
			// 이미 승격되었거나 파일이 없는 경우
			continue
		}
		dst := s.Abs(f.RelPath)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		if err := os.Rename(src, dst); err != nil {
			return err
		}
		klog.V(6).Infof("미완료 업로드 승격: %s", f.RelPath)
	}

	os.Remove(journalPath)
	return os.RemoveAll(filepath.Join(stagingRoot, token))
}
