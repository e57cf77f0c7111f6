package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/venturebase/backoffice/internal/service"
)

type MainHandler struct {
	service *service.MainService
}

func NewMainHandler(svc *service.MainService) *MainHandler {
	return &MainHandler{service: svc}
}

// Get 메인 화면: 최신 포트폴리오 로고 15건 + 최신 뉴스 3건
func (h *MainHandler) Get(c *gin.Context) {
	portfolios, news, err := h.service.Overview()
	if err != nil {
		writeError(c, err)
		return
	}

	portfolioList := make([]gin.H, 0, len(portfolios))
	for _, p := range portfolios {
		portfolioList = append(portfolioList, gin.H{"id": p.ID, "logo": p.Logo})
	}

	newsList := make([]gin.H, 0, len(news))
	for _, n := range news {
		newsList = append(newsList, gin.H{
			"id":        n.ID,
			"thumbnail": n.Thumbnail,
			"category":  n.Category,
			"title":     n.Title,
			"content":   n.Content,
			"createdAt": n.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"portfolioList": portfolioList,
		"newsList":      newsList,
	})
}
