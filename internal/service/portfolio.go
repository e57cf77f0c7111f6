package service

import (
	"errors"
	"fmt"

	"github.com/venturebase/backoffice/config"
	"github.com/venturebase/backoffice/internal/eventbus"
	"github.com/venturebase/backoffice/internal/model"
	"github.com/venturebase/backoffice/internal/pkg/filestore"
	"github.com/venturebase/backoffice/internal/repository"
	"k8s.io/klog/v2"
)

type PortfolioService struct {
	rules config.CollectionRules
	repo  repository.PortfolioRepository
	store *filestore.Store
	bus   *eventbus.Bus
}

func NewPortfolioService(cfg *config.Config, repo repository.PortfolioRepository, store *filestore.Store, bus *eventbus.Bus) *PortfolioService {
	return &PortfolioService{
		rules: cfg.Collections.Portfolio,
		repo:  repo,
		store: store,
		bus:   bus,
	}
}

// PortfolioFields 포트폴리오 요청 필드
type PortfolioFields struct {
	Category *string
	Name     *string
	Content  *string
}

func (s *PortfolioService) List(f repository.ListFilter) ([]model.Portfolio, error) {
	if f.Category != "" && !validCategory(s.rules, f.Category) {
		return nil, newValidationError(msgInvalidCategory)
	}
	return s.repo.List(f)
}

func (s *PortfolioService) Get(id uint) (*model.Portfolio, error) {
	p, err := s.repo.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newNotFoundError(msgPortfolioNotFound)
	}
	return p, err
}

func (s *PortfolioService) Create(req PortfolioFields, batch *filestore.Batch) (err error) {
	defer func() {
		if err != nil {
			batch.Discard()
		}
	}()

	logo, hasLogo := batch.First("logo")
	present := map[string]bool{
		"category": strVal(req.Category) != "",
		"name":     strVal(req.Name) != "",
		"content":  strVal(req.Content) != "",
		"logo":     hasLogo,
	}
	if err = checkRequired(s.rules, present); err != nil {
		return err
	}
	if !validCategory(s.rules, strVal(req.Category)) {
		return newValidationError(msgInvalidCategory)
	}

	// 커밋 전에 승격 의도를 기록해 두어야 중간에 죽어도 복구할 수 있다
	if err = batch.WriteJournal(); err != nil {
		return err
	}

	p := &model.Portfolio{
		Category: strVal(req.Category),
		Name:     strVal(req.Name),
		Content:  strVal(req.Content),
		Logo:     logo.RelPath,
	}
	if err = s.repo.Create(p); err != nil {
		return err
	}

	applyAndPublish(s.bus, batch, eventbus.ContentEventCreated, "portfolio", p.ID)
	return nil
}

// Update 포트폴리오는 부분 수정이 아니라 전체 필드 + 로고 재업로드를 요구한다.
func (s *PortfolioService) Update(id uint, req PortfolioFields, batch *filestore.Batch) (err error) {
	defer func() {
		if err != nil {
			batch.Discard()
		}
	}()

	logo, hasLogo := batch.First("logo")
	present := map[string]bool{
		"category": strVal(req.Category) != "",
		"name":     strVal(req.Name) != "",
		"content":  strVal(req.Content) != "",
		"logo":     hasLogo,
	}
	if err = checkRequired(s.rules, present); err != nil {
		return err
	}
	if !validCategory(s.rules, strVal(req.Category)) {
		return newValidationError(msgInvalidCategory)
	}

	if err = batch.WriteJournal(); err != nil {
		return err
	}

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		var p *model.Portfolio
		p, err = s.repo.Get(id)
		if errors.Is(err, repository.ErrNotFound) {
			return newNotFoundError(msgPortfolioNotFound)
		}
		if err != nil {
			return err
		}

		changes := map[string]interface{}{
			"category": strVal(req.Category),
			"name":     strVal(req.Name),
			"content":  strVal(req.Content),
			"logo":     logo.RelPath,
		}
		err = s.repo.UpdateVersioned(id, p.Version, changes)
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return err
		}

		// 기존 로고는 커밋 이후에 삭제한다
		if p.Logo != "" {
			batch.ScheduleDelete(p.Logo)
		}
		applyAndPublish(s.bus, batch, eventbus.ContentEventUpdated, "portfolio", id)
		return nil
	}
	return fmt.Errorf("포트폴리오 갱신 충돌: %w", repository.ErrVersionConflict)
}

func (s *PortfolioService) Delete(id uint) error {
	p, err := s.repo.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		return newNotFoundError(msgPortfolioNotFound)
	}
	if err != nil {
		return err
	}

	var failed []string
	if p.Logo != "" {
		failed = s.store.RemoveAll([]string{p.Logo})
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if s.bus != nil {
		if perr := s.bus.Publish(eventbus.ContentEvent{
			Type:          eventbus.ContentEventDeleted,
			Collection:    "portfolio",
			RecordID:      id,
			FailedDeletes: failed,
		}); perr != nil {
			klog.V(6).Infof("이벤트 발행 실패: collection=portfolio, id=%d, error=%v", id, perr)
		}
	}
	return nil
}
