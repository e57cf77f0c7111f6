package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/venturebase/backoffice/config"
	"github.com/venturebase/backoffice/internal/pkg/filestore"
	"github.com/venturebase/backoffice/internal/repository"
	"github.com/venturebase/backoffice/internal/service"
)

type ProgramHandler struct {
	service *service.ProgramService
	store   *filestore.Store
	cfg     *config.Config
}

func NewProgramHandler(svc *service.ProgramService, store *filestore.Store, cfg *config.Config) *ProgramHandler {
	return &ProgramHandler{service: svc, store: store, cfg: cfg}
}

func (h *ProgramHandler) fileLimits() map[string]int {
	maxImages := h.cfg.Collections.Program.MaxImages
	if maxImages <= 0 {
		maxImages = 10
	}
	return map[string]int{"thumbnail": 1, "image": maxImages}
}

func (h *ProgramHandler) List(c *gin.Context) {
	f := repository.ListFilter{
		Category: c.Query("category"),
		Keyword:  c.Query("title"),
		Page:     pageNum(c),
		PageSize: listPageSize,
	}
	list, err := h.service.List(f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "programList": list})
}

func (h *ProgramHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	p, err := h.service.Get(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "programDetail": p})
}

// GetUpdate 수정 화면 프리필용 필드 subset
func (h *ProgramHandler) GetUpdate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	p, err := h.service.Get(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "program": gin.H{
		"category":  p.Category,
		"title":     p.Title,
		"createdAt": p.CreatedAt,
		"content":   p.Content,
		"thumbnail": p.Thumbnail,
		"image":     p.Image,
		"shortcut":  p.Shortcut,
		"link":      p.Link,
		"visible":   p.Visible,
	}})
}

func (h *ProgramHandler) Create(c *gin.Context) {
	form, err := parseMultipartForm(c)
	if err != nil {
		writeError(c, err)
		return
	}

	batch := h.store.NewBatch()
	if err := stageFiles(batch, form, "program", h.cfg.Upload.MaxFileSize, h.fileLimits()); err != nil {
		batch.Discard()
		writeError(c, err)
		return
	}

	req, err := contentFields(form)
	if err != nil {
		batch.Discard()
		writeError(c, err)
		return
	}
	if err := h.service.Create(req, batch); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProgramHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	form, err := parseMultipartForm(c)
	if err != nil {
		writeError(c, err)
		return
	}

	batch := h.store.NewBatch()
	if err := stageFiles(batch, form, "program", h.cfg.Upload.MaxFileSize, h.fileLimits()); err != nil {
		batch.Discard()
		writeError(c, err)
		return
	}

	req, err := contentFields(form)
	if err != nil {
		batch.Discard()
		writeError(c, err)
		return
	}
	if err := h.service.Update(uint(id), req, batch); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProgramHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
