package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/venturebase/backoffice/internal/model"
	"github.com/venturebase/backoffice/internal/repository"
)

func newPortfolioService(env *testEnv) *PortfolioService {
	return NewPortfolioService(env.cfg, repository.NewPortfolioRepository(env.db), env.store, env.bus)
}

func TestPortfolioCreateScenario(t *testing.T) {
	env := newTestEnv(t)
	svc := newPortfolioService(env)

	batch := env.store.NewBatch()
	logo := stage(t, batch, "logo", "logo", "acme-logo.png")

	err := svc.Create(PortfolioFields{
		Category: strPtr("Consulting"),
		Name:     strPtr("Acme"),
		Content:  strPtr("intro"),
	}, batch)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	var p model.Portfolio
	if err := env.db.First(&p).Error; err != nil {
		t.Fatalf("load error: %v", err)
	}
	if p.Logo != logo.RelPath {
		t.Fatalf("unexpected logo path: %q", p.Logo)
	}
	if !strings.Contains(p.Logo, "/logo/") {
		t.Fatalf("logo not under collection dir: %q", p.Logo)
	}
	if !fileExists(env.store, p.Logo) {
		t.Fatalf("logo file missing on disk")
	}

	got, err := svc.Get(p.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Name != "Acme" {
		t.Fatalf("unexpected name: %q", got.Name)
	}
}

func TestPortfolioCreateRequiresLogo(t *testing.T) {
	env := newTestEnv(t)
	svc := newPortfolioService(env)

	err := svc.Create(PortfolioFields{
		Category: strPtr("Consulting"),
		Name:     strPtr("Acme"),
		Content:  strPtr("intro"),
	}, env.store.NewBatch())

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Msg != msgLogoRequired {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPortfolioCreateRequiresFields(t *testing.T) {
	env := newTestEnv(t)
	svc := newPortfolioService(env)

	batch := env.store.NewBatch()
	stage(t, batch, "logo", "logo", "logo.png")

	err := svc.Create(PortfolioFields{Name: strPtr("Acme")}, batch)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Msg != msgMissingFields {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := storedFileCount(t, env.store); n != 0 {
		t.Fatalf("expected staged logo discarded, got %d", n)
	}
}

func TestPortfolioUpdateReplacesLogo(t *testing.T) {
	env := newTestEnv(t)
	svc := newPortfolioService(env)

	createBatch := env.store.NewBatch()
	oldLogo := stage(t, createBatch, "logo", "logo", "old.png")
	if err := svc.Create(PortfolioFields{
		Category: strPtr("Consulting"),
		Name:     strPtr("Acme"),
		Content:  strPtr("intro"),
	}, createBatch); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	var p model.Portfolio
	env.db.First(&p)

	updateBatch := env.store.NewBatch()
	newLogo := stage(t, updateBatch, "logo", "logo", "new.png")
	err := svc.Update(p.ID, PortfolioFields{
		Category: strPtr("Investment"),
		Name:     strPtr("Acme Corp"),
		Content:  strPtr("updated"),
	}, updateBatch)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	var updated model.Portfolio
	env.db.First(&updated, p.ID)
	if updated.Logo != newLogo.RelPath || updated.Name != "Acme Corp" {
		t.Fatalf("unexpected record: %+v", updated)
	}
	if fileExists(env.store, oldLogo.RelPath) {
		t.Fatalf("old logo not deleted")
	}
	if !fileExists(env.store, newLogo.RelPath) {
		t.Fatalf("new logo not promoted")
	}
}

func TestPortfolioDelete(t *testing.T) {
	env := newTestEnv(t)
	svc := newPortfolioService(env)

	batch := env.store.NewBatch()
	logo := stage(t, batch, "logo", "logo", "logo.png")
	if err := svc.Create(PortfolioFields{
		Category: strPtr("Consulting"),
		Name:     strPtr("Acme"),
		Content:  strPtr("intro"),
	}, batch); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	var p model.Portfolio
	env.db.First(&p)

	if err := svc.Delete(p.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if fileExists(env.store, logo.RelPath) {
		t.Fatalf("logo not removed")
	}
	if _, err := svc.Get(p.ID); err == nil {
		t.Fatalf("expected not found after delete")
	}

	// 없는 id 삭제는 404, 부작용 없음
	err := svc.Delete(p.ID)
	var nerr *NotFoundError
	if !errors.As(err, &nerr) || nerr.Msg != msgPortfolioNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}
