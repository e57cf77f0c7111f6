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

type ProgramService struct {
	rules config.CollectionRules
	repo  repository.ProgramRepository
	store *filestore.Store
	bus   *eventbus.Bus
}

func NewProgramService(cfg *config.Config, repo repository.ProgramRepository, store *filestore.Store, bus *eventbus.Bus) *ProgramService {
	return &ProgramService{
		rules: cfg.Collections.Program,
		repo:  repo,
		store: store,
		bus:   bus,
	}
}

func (s *ProgramService) List(f repository.ListFilter) ([]model.Program, error) {
	if f.Category != "" && !validCategory(s.rules, f.Category) {
		return nil, newValidationError(msgInvalidCategory)
	}
	return s.repo.List(f)
}

func (s *ProgramService) Get(id uint) (*model.Program, error) {
	p, err := s.repo.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newNotFoundError(msgProgramNotFound)
	}
	return p, err
}

func (s *ProgramService) Create(req ContentFields, batch *filestore.Batch) (err error) {
	defer func() {
		if err != nil {
			batch.Discard()
		}
	}()

	thumb, hasThumb := batch.First("thumbnail")
	images := batch.RelPaths("image")

	present := map[string]bool{
		"category":  strVal(req.Category) != "",
		"title":     strVal(req.Title) != "",
		"content":   strVal(req.Content) != "",
		"shortcut":  strVal(req.Shortcut) != "",
		"link":      strVal(req.Link) != "",
		"thumbnail": hasThumb,
		"image":     len(images) > 0,
	}
	if err = checkRequired(s.rules, present); err != nil {
		return err
	}
	if !validCategory(s.rules, strVal(req.Category)) {
		return newValidationError(msgInvalidCategory)
	}
	if err = checkProgramLengths(req.Title, req.Content, req.Shortcut); err != nil {
		return err
	}

	if err = batch.WriteJournal(); err != nil {
		return err
	}

	p := &model.Program{
		Category: strVal(req.Category),
		Title:    strVal(req.Title),
		Content:  strVal(req.Content),
		Shortcut: strVal(req.Shortcut),
		Link:     strVal(req.Link),
		Visible:  req.Visible != nil && *req.Visible,
	}
	if hasThumb {
		p.Thumbnail = thumb.RelPath
	}
	if len(images) > 0 {
		p.Image = model.PathList(images)
	}
	if err = s.repo.Create(p); err != nil {
		return err
	}

	applyAndPublish(s.bus, batch, eventbus.ContentEventCreated, "program", p.ID)
	return nil
}

func (s *ProgramService) Update(id uint, req ContentFields, batch *filestore.Batch) (err error) {
	defer func() {
		if err != nil {
			batch.Discard()
		}
	}()

	if !validCategory(s.rules, strVal(req.Category)) {
		return newValidationError(msgInvalidCategory)
	}
	if err = checkProgramLengths(req.Title, req.Content, req.Shortcut); err != nil {
		return err
	}

	thumb, hasThumb := batch.First("thumbnail")
	newImages := batch.RelPaths("image")

	if err = batch.WriteJournal(); err != nil {
		return err
	}

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		var p *model.Program
		p, err = s.repo.Get(id)
		if errors.Is(err, repository.ErrNotFound) {
			return newNotFoundError(msgProgramNotFound)
		}
		if err != nil {
			return err
		}

		changes := map[string]interface{}{}
		if req.Category != nil {
			changes["category"] = *req.Category
		}
		if req.Title != nil {
			changes["title"] = *req.Title
		}
		if req.Content != nil {
			changes["content"] = *req.Content
		}
		if req.Shortcut != nil {
			changes["shortcut"] = *req.Shortcut
		}
		if req.Link != nil {
			changes["link"] = *req.Link
		}
		if req.Visible != nil {
			changes["visible"] = *req.Visible
		}

		var toDelete []string
		if req.KeepImages != nil || len(newImages) > 0 {
			final, dropped := reconcileImages(p.Image, req.KeepImages, newImages)
			changes["image"] = model.PathList(final)
			toDelete = dropped
		}
		if hasThumb {
			changes["thumbnail"] = thumb.RelPath
			if p.Thumbnail != "" {
				toDelete = append(toDelete, p.Thumbnail)
			}
		}

		if len(changes) == 0 {
			return newValidationError(msgNothingToUpdate)
		}

		err = s.repo.UpdateVersioned(id, p.Version, changes)
		if errors.Is(err, repository.ErrVersionConflict) {
			klog.V(6).Infof("프로그램 수정 충돌, 재시도: id=%d, attempt=%d", id, attempt+1)
			continue
		}
		if err != nil {
			return err
		}

		batch.ScheduleDelete(toDelete...)
		applyAndPublish(s.bus, batch, eventbus.ContentEventUpdated, "program", id)
		return nil
	}
	return fmt.Errorf("프로그램 갱신 충돌: %w", repository.ErrVersionConflict)
}

func (s *ProgramService) Delete(id uint) error {
	p, err := s.repo.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		return newNotFoundError(msgProgramNotFound)
	}
	if err != nil {
		return err
	}

	var paths []string
	if p.Thumbnail != "" {
		paths = append(paths, p.Thumbnail)
	}
	paths = append(paths, p.Image...)
	failed := s.store.RemoveAll(paths)

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if s.bus != nil {
		if perr := s.bus.Publish(eventbus.ContentEvent{
			Type:          eventbus.ContentEventDeleted,
			Collection:    "program",
			RecordID:      id,
			FailedDeletes: failed,
		}); perr != nil {
			klog.V(6).Infof("이벤트 발행 실패: collection=program, id=%d, error=%v", id, perr)
		}
	}
	return nil
}
