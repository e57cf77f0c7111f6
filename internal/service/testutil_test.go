package service

import (
	"bytes"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/venturebase/backoffice/config"
	"github.com/venturebase/backoffice/internal/eventbus"
	"github.com/venturebase/backoffice/internal/model"
	"github.com/venturebase/backoffice/internal/pkg/filestore"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Collections: config.CollectionsConfig{
			Portfolio: config.CollectionRules{
				Categories: []string{"Consulting", "Investment", "Education", "Networking"},
				Required:   []string{"category", "name", "content", "logo"},
			},
			News: config.CollectionRules{
				Categories: []string{"Consulting", "Investment", "Education", "Networking", "Notice", "Press"},
				Required:   []string{"title", "content"},
				MaxImages:  10,
			},
			Program: config.CollectionRules{
				Categories: []string{"Consulting", "Investment", "Education", "Networking"},
				Required:   []string{"title", "content"},
				MaxImages:  10,
			},
		},
	}
}

type testEnv struct {
	cfg   *config.Config
	db    *gorm.DB
	store *filestore.Store
	bus   *eventbus.Bus
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(&model.Portfolio{}, &model.News{}, &model.Program{}); err != nil {
		t.Fatalf("migrate error: %v", err)
	}

	store, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("filestore error: %v", err)
	}

	return &testEnv{cfg: testConfig(), db: db, store: store, bus: eventbus.NewBus()}
}

func makeFileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile error: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("ReadForm error: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File[field][0]
}

// stage 업로드 파일 하나를 배치에 넣는다
func stage(t *testing.T, batch *filestore.Batch, field, collection, filename string) filestore.StagedFile {
	t.Helper()
	sf, err := batch.Stage(field, collection, makeFileHeader(t, field, filename, "data-"+filename))
	if err != nil {
		t.Fatalf("Stage error: %v", err)
	}
	return sf
}

// storedFileCount 업로드 루트에 남아 있는 일반 파일 수 (스테이징 포함)
func storedFileCount(t *testing.T, store *filestore.Store) int {
	t.Helper()
	count := 0
	err := filepath.WalkDir(store.Root(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk error: %v", err)
	}
	return count
}

func fileExists(store *filestore.Store, rel string) bool {
	_, err := os.Stat(store.Abs(rel))
	return err == nil
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
