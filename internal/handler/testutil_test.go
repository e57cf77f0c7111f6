package handler

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/venturebase/backoffice/config"
	"github.com/venturebase/backoffice/internal/eventbus"
	"github.com/venturebase/backoffice/internal/model"
	"github.com/venturebase/backoffice/internal/pkg/filestore"
	"github.com/venturebase/backoffice/internal/repository"
	"github.com/venturebase/backoffice/internal/service"
	"gorm.io/gorm"
)

func testConfig(uploadDir string) *config.Config {
	return &config.Config{
		Upload: config.UploadConfig{
			Dir:         uploadDir,
			MaxFileSize: 50 << 20,
		},
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
				MaxImages:  2,
			},
		},
	}
}

type testStack struct {
	router    *gin.Engine
	db        *gorm.DB
	uploadDir string
}

// newTestStack wires the real handler stack (sqlite, filestore, services)
// behind a plain gin router, matching the production route layout.
func newTestStack(t *testing.T) *testStack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(&model.Portfolio{}, &model.News{}, &model.Program{}); err != nil {
		t.Fatalf("migrate error: %v", err)
	}

	uploadDir := t.TempDir()
	store, err := filestore.New(uploadDir)
	if err != nil {
		t.Fatalf("filestore error: %v", err)
	}

	cfg := testConfig(uploadDir)
	bus := eventbus.NewBus()

	portfolioRepo := repository.NewPortfolioRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	programRepo := repository.NewProgramRepository(db)

	mainHandler := NewMainHandler(service.NewMainService(portfolioRepo, newsRepo))
	portfolioHandler := NewPortfolioHandler(service.NewPortfolioService(cfg, portfolioRepo, store, bus), store, cfg)
	newsHandler := NewNewsHandler(service.NewNewsService(cfg, newsRepo, store, bus), store, cfg)
	programHandler := NewProgramHandler(service.NewProgramService(cfg, programRepo, store, bus), store, cfg)

	r := gin.New()
	r.GET("/", mainHandler.Get)

	portfolio := r.Group("/portfolio")
	{
		portfolio.GET("", portfolioHandler.List)
		portfolio.GET("/:id", portfolioHandler.Get)
		portfolio.POST("/new", portfolioHandler.Create)
		portfolio.PATCH("/:id", portfolioHandler.Update)
		portfolio.DELETE("/:id", portfolioHandler.Delete)
	}

	news := r.Group("/news")
	{
		news.GET("", newsHandler.List)
		news.GET("/:id", newsHandler.Get)
		news.GET("/:id/update", newsHandler.GetUpdate)
		news.POST("/new", newsHandler.Create)
		news.PATCH("/:id", newsHandler.Update)
		news.DELETE("/:id", newsHandler.Delete)
	}

	program := r.Group("/program")
	{
		program.GET("", programHandler.List)
		program.GET("/:id", programHandler.Get)
		program.GET("/:id/update", programHandler.GetUpdate)
		program.POST("/new", programHandler.Create)
		program.PATCH("/:id", programHandler.Update)
		program.DELETE("/:id", programHandler.Delete)
	}

	return &testStack{router: r, db: db, uploadDir: uploadDir}
}

func (s *testStack) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// multipartRequest builds a multipart/form-data request. files maps a form
// field to the file names attached under it; file contents are a fixed blob.
func multipartRequest(t *testing.T, method, url string, fields map[string]string, files map[string][]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatalf("write field error: %v", err)
		}
	}
	for field, names := range files {
		for _, name := range names {
			fw, err := mw.CreateFormFile(field, name)
			if err != nil {
				t.Fatalf("create form file error: %v", err)
			}
			if _, err := fw.Write([]byte("file-content")); err != nil {
				t.Fatalf("write file error: %v", err)
			}
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer error: %v", err)
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body error: %v (body=%s)", err, w.Body.String())
	}
	return body
}

// storedFileCount counts promoted files under the upload root, ignoring the
// staging area.
func storedFileCount(t *testing.T, uploadDir string) int {
	t.Helper()
	count := 0
	err := filepath.WalkDir(uploadDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".staging" {
				return filepath.SkipDir
			}
			return nil
		}
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("walk error: %v", err)
	}
	return count
}

func errMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, w)
	msg, _ := body["error"].(string)
	return msg
}
