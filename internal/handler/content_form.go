package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/venturebase/backoffice/internal/service"
	"github.com/venturebase/backoffice/internal/utils"
)

// 뉴스/프로그램 목록은 페이지당 3건 고정
const listPageSize = 3

func contentFields(f *multipartForm) (service.ContentFields, error) {
	req := service.ContentFields{
		Category: f.str("category"),
		Title:    f.str("title"),
		Content:  f.str("content"),
		Shortcut: f.str("shortcut"),
		Link:     f.str("link"),
		Visible:  f.boolField("visible"),
	}

	if raw, ok := f.list("keepImages"); ok {
		keep, err := utils.ParseStringList(raw)
		if err != nil {
			return req, service.NewUploadError(msgBadKeepImages)
		}
		if keep == nil {
			keep = []string{}
		}
		req.KeepImages = keep
	}
	return req, nil
}

func pageNum(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("pageNum"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
