package filestore

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// StagedFile is one upload written to the staging area. RelPath is the final
// path the file will occupy under the upload root once promoted.
type StagedFile struct {
	Field   string `json:"field"`
	RelPath string `json:"relPath"`
}

// Batch collects the file-store mutations of a single request: staged
// uploads plus deletions of superseded files. Staged files only become
// visible under the upload root when Apply promotes them, after the row
// transaction has committed; until then Discard undoes everything.
type Batch struct {
	store   *Store
	token   string
	files   []StagedFile
	deletes []string
}

func (s *Store) NewBatch() *Batch {
	return &Batch{store: s, token: uuid.NewString()}
}

func (b *Batch) Token() string {
	return b.token
}

func (b *Batch) stagingDir() string {
	return filepath.Join(b.store.root, stagingDirName, b.token)
}

func (b *Batch) journalPath() string {
	return filepath.Join(b.store.root, stagingDirName, b.token+".journal.json")
}

// Stage writes one multipart file into the staging area and records its
// final relative path.
func (b *Batch) Stage(field, collection string, fh *multipart.FileHeader) (StagedFile, error) {
	rel := newRelPath(collection, fh.Filename)
	dst := filepath.Join(b.stagingDir(), filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return StagedFile{}, err
	}

	src, err := fh.Open()
	if err != nil {
		return StagedFile{}, err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return StagedFile{}, err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return StagedFile{}, err
	}

	sf := StagedFile{Field: field, RelPath: rel}
	b.files = append(b.files, sf)
	return sf, nil
}

func (b *Batch) Files() []StagedFile {
	return b.files
}

// RelPaths returns the final paths staged for one form field, in upload order.
func (b *Batch) RelPaths(field string) []string {
	var rels []string
	for _, f := range b.files {
		if f.Field == field {
			rels = append(rels, f.RelPath)
		}
	}
	return rels
}

// First returns the first staged file of a field, for single-file fields.
func (b *Batch) First(field string) (StagedFile, bool) {
	for _, f := range b.files {
		if f.Field == field {
			return f, true
		}
	}
	return StagedFile{}, false
}

// ScheduleDelete defers removal of stored files until Apply, after the row
// commit. Deleting before the commit was the old ordering risk: a failed
// validation or rollback could no longer restore the files.
func (b *Batch) ScheduleDelete(rels ...string) {
	b.deletes = append(b.deletes, rels...)
}

// WriteJournal persists the promotion intent. Called before the row commit
// so startup recovery can finish a promotion the process did not live to
// apply; replaying a journal is idempotent.
func (b *Batch) WriteJournal() error {
	if len(b.files) == 0 {
		return nil
	}
	data, err := json.Marshal(b.files)
	if err != nil {
		return err
	}
	return os.WriteFile(b.journalPath(), data, 0644)
}

// Apply promotes staged files into the upload root and carries out scheduled
// deletions. It returns the paths that failed to delete; promotion errors
// are returned as err. Call only after the row transaction committed.
//
// On a promotion error the journal and the remaining staged files stay in
// place: the row is already committed, so startup recovery must be able to
// replay the journal and finish the promotion. Cleanup happens only once
// every file is in its final location.
func (b *Batch) Apply() (failedDeletes []string, err error) {
	for _, f := range b.files {
		src := filepath.Join(b.stagingDir(), filepath.FromSlash(f.RelPath))
		dst := b.store.Abs(f.RelPath)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return nil, err
		}
		if err := os.Rename(src, dst); err != nil {
			return nil, err
		}
	}

	failedDeletes = b.store.RemoveAll(b.deletes)

	os.Remove(b.journalPath())
	if rmErr := os.RemoveAll(b.stagingDir()); rmErr != nil {
		klog.V(6).Infof("스테이징 디렉터리 정리 실패: token=%s, error=%v", b.token, rmErr)
	}
	return failedDeletes, nil
}

// Discard drops every staged file and the journal. Used whenever the request
// fails before the commit; scheduled deletions are abandoned untouched.
func (b *Batch) Discard() {
	os.Remove(b.journalPath())
	if err := os.RemoveAll(b.stagingDir()); err != nil {
		klog.V(6).Infof("스테이징 디렉터리 삭제 실패: token=%s, error=%v", b.token, err)
	}
}
