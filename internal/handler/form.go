package handler

import (
	"fmt"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/venturebase/backoffice/internal/pkg/filestore"
	"github.com/venturebase/backoffice/internal/service"
)

const (
	msgBadMultipart    = "잘못된 요청입니다."
	msgFileTooLarge    = "파일 크기는 50MB 이하여야 합니다."
	msgUnexpectedField = "예상하지 못한 파일 필드입니다."
	msgTooManyFiles    = "%s 파일은 최대 %d개까지 업로드할 수 있습니다."
	msgBadKeepImages   = "keepImages 형식이 올바르지 않습니다."
)

// multipartForm gives presence-aware access to the parsed form: a nil
// pointer means the field was not part of the request, which partial
// updates rely on.
type multipartForm struct {
	values map[string][]string
	files  map[string][]*multipart.FileHeader
}

func parseMultipartForm(c *gin.Context) (*multipartForm, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		return nil, service.NewUploadError(msgBadMultipart)
	}
	return &multipartForm{values: mf.Value, files: mf.File}, nil
}

func (f *multipartForm) str(key string) *string {
	vals, ok := f.values[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	v := vals[0]
	return &v
}

// boolField follows the original form convention: the string "true" is true,
// anything else false.
func (f *multipartForm) boolField(key string) *bool {
	raw := f.str(key)
	if raw == nil {
		return nil
	}
	b := *raw == "true"
	return &b
}

func (f *multipartForm) list(key string) ([]string, bool) {
	vals, ok := f.values[key]
	return vals, ok
}

// stageFiles validates per-field file counts and sizes, then writes every
// upload into the request's staging batch. limits maps the accepted form
// fields to their maximum count; any other file field is rejected.
func stageFiles(batch *filestore.Batch, f *multipartForm, collection string, maxFileSize int64, limits map[string]int) error {
	fieldNames := map[string]string{
		"logo":      "로고",
		"thumbnail": "표지 이미지",
		"image":     "본문 이미지",
	}

	for field, fhs := range f.files {
		max, ok := limits[field]
		if !ok {
			return service.NewUploadError(msgUnexpectedField)
		}
		if len(fhs) > max {
			name := fieldNames[field]
			if name == "" {
				name = field
			}
			return service.NewUploadError(fmt.Sprintf(msgTooManyFiles, name, max))
		}
		for _, fh := range fhs {
			if maxFileSize > 0 && fh.Size > maxFileSize {
				return service.NewUploadError(msgFileTooLarge)
			}
			if _, err := batch.Stage(field, collection, fh); err != nil {
				return err
			}
		}
	}
	return nil
}
