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

type NewsService struct {
	rules config.CollectionRules
	repo  repository.NewsRepository
	store *filestore.Store
	bus   *eventbus.Bus
}

func NewNewsService(cfg *config.Config, repo repository.NewsRepository, store *filestore.Store, bus *eventbus.Bus) *NewsService {
	return &NewsService{
		rules: cfg.Collections.News,
		repo:  repo,
		store: store,
		bus:   bus,
	}
}

func (s *NewsService) List(f repository.ListFilter) ([]model.News, error) {
	if f.Category != "" && !validCategory(s.rules, f.Category) {
		return nil, newValidationError(msgInvalidCategory)
	}
	return s.repo.List(f)
}

func (s *NewsService) Get(id uint) (*model.News, error) {
	n, err := s.repo.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newNotFoundError(msgNewsNotFound)
	}
	return n, err
}

func (s *NewsService) Create(req ContentFields, batch *filestore.Batch) (err error) {
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

	if err = batch.WriteJournal(); err != nil {
		return err
	}

	n := &model.News{
		Category: strVal(req.Category),
		Title:    strVal(req.Title),
		Content:  strVal(req.Content),
		Shortcut: strVal(req.Shortcut),
		Link:     strVal(req.Link),
		Visible:  req.Visible != nil && *req.Visible,
	}
	if hasThumb {
		n.Thumbnail = thumb.RelPath
	}
	if len(images) > 0 {
		n.Image = model.PathList(images)
	}
	if err = s.repo.Create(n); err != nil {
		return err
	}

	applyAndPublish(s.bus, batch, eventbus.ContentEventCreated, "news", n.ID)
	return nil
}

func (s *NewsService) Update(id uint, req ContentFields, batch *filestore.Batch) (err error) {
	defer func() {
		if err != nil {
			batch.Discard()
		}
	}()

	if !validCategory(s.rules, strVal(req.Category)) {
		return newValidationError(msgInvalidCategory)
	}

	thumb, hasThumb := batch.First("thumbnail")
	newImages := batch.RelPaths("image")

	if err = batch.WriteJournal(); err != nil {
		return err
	}

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		var n *model.News
		n, err = s.repo.Get(id)
		if errors.Is(err, repository.ErrNotFound) {
			return newNotFoundError(msgNewsNotFound)
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
			final, dropped := reconcileImages(n.Image, req.KeepImages, newImages)
			changes["image"] = model.PathList(final)
			toDelete = dropped
		}
		if hasThumb {
			changes["thumbnail"] = thumb.RelPath
			if n.Thumbnail != "" {
				toDelete = append(toDelete, n.Thumbnail)
			}
		}

		if len(changes) == 0 {
			return newValidationError(msgNothingToUpdate)
		}

		err = s.repo.UpdateVersioned(id, n.Version, changes)
		if errors.Is(err, repository.ErrVersionConflict) {
			klog.V(6).Infof("뉴스 수정 충돌, 재시도: id=%d, attempt=%d", id, attempt+1)
			continue
		}
		if err != nil {
			return err
		}

		batch.ScheduleDelete(toDelete...)
		applyAndPublish(s.bus, batch, eventbus.ContentEventUpdated, "news", id)
		return nil
	}
	return fmt.Errorf("뉴스 갱신 충돌: %w", repository.ErrVersionConflict)
}

func (s *NewsService) Delete(id uint) error {
	n, err := s.repo.Get(id)
	if errors.Is(err, repository.ErrNotFound) {
		return newNotFoundError(msgNewsNotFound)
	}
	if err != nil {
		return err
	}

	var paths []string
	if n.Thumbnail != "" {
		paths = append(paths, n.Thumbnail)
	}
	paths = append(paths, n.Image...)
	failed := s.store.RemoveAll(paths)

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if s.bus != nil {
		if perr := s.bus.Publish(eventbus.ContentEvent{
			Type:          eventbus.ContentEventDeleted,
			Collection:    "news",
			RecordID:      id,
			FailedDeletes: failed,
		}); perr != nil {
			klog.V(6).Infof("이벤트 발행 실패: collection=news, id=%d, error=%v", id, perr)
		}
	}
	return nil
}
