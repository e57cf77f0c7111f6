package filestore

import (
	"path"
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestSanitizeBase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"apple", "apple"},
		{"ap ple!@#", "apple"},
		{"사진보고서", "사진보고서"},
		{"a\x00b", "ab"},
		{"report-v1.2_final", "report-v1.2_final"},
	}
	for _, tc := range cases {
		if got := sanitizeBase(tc.in); got != tc.want {
			t.Fatalf("sanitizeBase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewFileNameFormat(t *testing.T) {
	name := newFileName("apple pie.png")
	if !strings.HasSuffix(name, ".png") {
		t.Fatalf("expected .png suffix, got %q", name)
	}
	// base + 15자리 난수 + 확장자
	pattern := regexp.MustCompile(`^applepie\d{15}\.png$`)
	if !pattern.MatchString(name) {
		t.Fatalf("unexpected file name: %q", name)
	}
}

func TestNewRelPathLayout(t *testing.T) {
	rel := newRelPath("news", "photo.jpg")
	parts := strings.Split(rel, "/")
	if len(parts) != 3 {
		t.Fatalf("expected date/collection/name, got %q", rel)
	}
	if parts[0] != time.Now().Format("20060102") {
		t.Fatalf("expected date partition, got %q", parts[0])
	}
	if parts[1] != "news" {
		t.Fatalf("expected collection partition, got %q", parts[1])
	}
	if path.Ext(parts[2]) != ".jpg" {
		t.Fatalf("expected extension kept, got %q", parts[2])
	}
}
