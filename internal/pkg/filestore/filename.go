package filestore

import (
	"fmt"
	"math/rand"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// 한글을 제외한 특수문자 제거용
var unsafeChars = regexp.MustCompile(`[^\w.\-가-힣]`)

// sanitizeBase strips null bytes and anything outside word characters,
// dot, dash and Hangul from an uploaded base name.
func sanitizeBase(name string) string {
	name = strings.ReplaceAll(name, "\x00", "")
	return unsafeChars.ReplaceAllString(name, "")
}

// newFileName builds a collision-resistant stored name from the uploaded
// one: sanitized base + random 15-digit token + original extension.
// Ex) apple.png → apple401957240482716.png
func newFileName(original string) string {
	ext := filepath.Ext(original)
	base := sanitizeBase(strings.TrimSuffix(filepath.Base(original), ext))
	token := fmt.Sprintf("%015d", rand.Int63n(1_000_000_000_000_000))
	return base + token + ext
}

// newRelPath computes the final stored path for an upload:
// <YYYYMMDD>/<collection>/<generated name>, slash-separated.
func newRelPath(collection, original string) string {
	return path.Join(time.Now().Format("20060102"), collection, newFileName(original))
}
