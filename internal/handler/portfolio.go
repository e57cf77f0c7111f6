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

type PortfolioHandler struct {
	service *service.PortfolioService
	store   *filestore.Store
	cfg     *config.Config
}

func NewPortfolioHandler(svc *service.PortfolioService, store *filestore.Store, cfg *config.Config) *PortfolioHandler {
	return &PortfolioHandler{service: svc, store: store, cfg: cfg}
}

func (h *PortfolioHandler) fileLimits() map[string]int {
	return map[string]int{"logo": 1}
}

func (h *PortfolioHandler) List(c *gin.Context) {
	f := repository.ListFilter{
		Category: c.Query("category"),
		Keyword:  c.Query("name"),
	}
	list, err := h.service.List(f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "portfolioList": list})
}

func (h *PortfolioHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"success": true, "portfolioDetail": p})
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	form, err := parseMultipartForm(c)
	if err != nil {
		writeError(c, err)
		return
	}

	batch := h.store.NewBatch()
	if err := stageFiles(batch, form, "logo", h.cfg.Upload.MaxFileSize, h.fileLimits()); err != nil {
		batch.Discard()
		writeError(c, err)
		return
	}

	req := service.PortfolioFields{
		Category: form.str("category"),
		Name:     form.str("name"),
		Content:  form.str("content"),
	}
	if err := h.service.Create(req, batch); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PortfolioHandler) Update(c *gin.Context) {
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
	if err := stageFiles(batch, form, "logo", h.cfg.Upload.MaxFileSize, h.fileLimits()); err != nil {
		batch.Discard()
		writeError(c, err)
		return
	}

	req := service.PortfolioFields{
		Category: form.str("category"),
		Name:     form.str("name"),
		Content:  form.str("content"),
	}
	if err := h.service.Update(uint(id), req, batch); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
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
