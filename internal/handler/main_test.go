package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/venturebase/backoffice/internal/model"
)

func TestMainOverview(t *testing.T) {
	s := newTestStack(t)

	for i := 0; i < 17; i++ {
		p := model.Portfolio{Category: "Consulting", Name: fmt.Sprintf("company-%d", i), Content: "c", Logo: "logo.png"}
		if err := s.db.Create(&p).Error; err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}
	for i := 0; i < 5; i++ {
		n := model.News{Category: "Notice", Title: fmt.Sprintf("news-%d", i), Content: "c"}
		if err := s.db.Create(&n).Error; err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w)

	portfolios, ok := body["portfolioList"].([]interface{})
	if !ok || len(portfolios) != 15 {
		t.Fatalf("expected 15 portfolio entries, got %v", body["portfolioList"])
	}
	first, _ := portfolios[0].(map[string]interface{})
	if _, hasLogo := first["logo"]; !hasLogo {
		t.Fatalf("portfolio entry missing logo: %v", first)
	}
	if _, hasName := first["name"]; hasName {
		t.Fatalf("portfolio entry should only carry id and logo: %v", first)
	}

	news, ok := body["newsList"].([]interface{})
	if !ok || len(news) != 3 {
		t.Fatalf("expected 3 news entries, got %v", body["newsList"])
	}
	item, _ := news[0].(map[string]interface{})
	for _, key := range []string{"id", "thumbnail", "category", "title", "content", "createdAt"} {
		if _, ok := item[key]; !ok {
			t.Fatalf("news entry missing %q: %v", key, item)
		}
	}
}

func TestMainOverviewEmpty(t *testing.T) {
	s := newTestStack(t)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if list, ok := body["portfolioList"].([]interface{}); !ok || len(list) != 0 {
		t.Fatalf("expected empty portfolioList, got %v", body["portfolioList"])
	}
	if list, ok := body["newsList"].([]interface{}); !ok || len(list) != 0 {
		t.Fatalf("expected empty newsList, got %v", body["newsList"])
	}
}
