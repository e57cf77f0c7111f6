package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/venturebase/backoffice/internal/service"
	"k8s.io/klog/v2"
)

// writeError maps service errors onto the response taxonomy: validation and
// upload problems are 400 with their Korean message, missing records 404,
// everything else a logged generic 500.
func writeError(c *gin.Context, err error) {
	var verr *service.ValidationError
	var uerr *service.UploadError
	var nerr *service.NotFoundError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
	case errors.As(err, &uerr):
		c.JSON(http.StatusBadRequest, gin.H{"error": uerr.Msg})
	case errors.As(err, &nerr):
		c.JSON(http.StatusNotFound, gin.H{"error": nerr.Msg})
	default:
		klog.Errorf("요청 처리 실패: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
