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

type NewsHandler struct {
	service *service.NewsService
	store   *filestore.Store
	cfg     *config.Config
}

func NewNewsHandler(svc *service.NewsService, store *filestore.Store, cfg *config.Config) *NewsHandler {
	return &NewsHandler{service: svc, store: store, cfg: cfg}
}

func (h *NewsHandler) fileLimits() map[string]int {
	maxImages := h.cfg.Collections.News.MaxImages
	if maxImages <= 0 {
		maxImages = 10
	}
	return map[string]int{"thumbnail": 1, "image": maxImages}
}

func (h *NewsHandler) List(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"success": true, "newsList": list})
}

func (h *NewsHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	n, err := h.service.Get(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "newsDetail": n})
}

// GetUpdate 수정 화면 프리필용 필드 subset
func (h *NewsHandler) GetUpdate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	n, err := h.service.Get(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "news": gin.H{
		"category":  n.Category,
		"title":     n.Title,
		"createdAt": n.CreatedAt,
		"content":   n.Content,
		"thumbnail": n.Thumbnail,
		"image":     n.Image,
		"shortcut":  n.Shortcut,
		"link":      n.Link,
		"visible":   n.Visible,
	}})
}

func (h *NewsHandler) Create(c *gin.Context) {
	form, err := parseMultipartForm(c)
	if err != nil {
		writeError(c, err)
		return
	}

	batch := h.store.NewBatch()
	if err := stageFiles(batch, form, "news", h.cfg.Upload.MaxFileSize, h.fileLimits()); err != nil {
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

func (h *NewsHandler) Update(c *gin.Context) {
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
	if err := stageFiles(batch, form, "news", h.cfg.Upload.MaxFileSize, h.fileLimits()); err != nil {
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

func (h *NewsHandler) Delete(c *gin.Context) {
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
