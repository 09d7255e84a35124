package service

import (
	"context"
	"errors"
	"log/slog"

	"bizreview/internal/cache"
	"bizreview/internal/events"
	"bizreview/internal/logger"
	"bizreview/internal/model"
	"bizreview/internal/repository"
)

// DefaultPageLimit is the page size used when the caller gives none.
const DefaultPageLimit = 3

// BusinessPage is one page of businesses ordered by ID.
type BusinessPage struct {
	Items  []model.Business
	Limit  int
	Offset int
	// HasNext is true when the page is full, so another page may follow.
	HasNext bool
}

// BusinessService defines the use cases for handling businesses.
type BusinessService interface {
	Create(ctx context.Context, b model.Business) (*model.Business, error)
	Get(ctx context.Context, id int64) (*model.Business, error)
	List(ctx context.Context, limit, offset int) (*BusinessPage, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Business, error)
	Update(ctx context.Context, b model.Business) (*model.Business, error)
	// Delete removes the business together with all of its reviews.
	Delete(ctx context.Context, id int64) error
}

type businessService struct {
	repo  repository.BusinessRepository
	cache cache.BusinessCache
	pub   events.Publisher
	log   *slog.Logger
}

// NewBusinessService constructs a BusinessService. A nil cache or publisher is replaced by a no-op.
func NewBusinessService(repo repository.BusinessRepository, c cache.BusinessCache, pub events.Publisher) BusinessService {
	if c == nil {
		c = cache.Noop{}
	}
	if pub == nil {
		pub = events.Noop{}
	}
	return &businessService{repo: repo, cache: c, pub: pub, log: logger.Named("business_service")}
}

func (s *businessService) Create(ctx context.Context, b model.Business) (*model.Business, error) {
	if err := validateBusiness(b); err != nil {
		return nil, err
	}
	b.ID = 0
	created, err := s.repo.Create(ctx, &b)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.pub, s.log, events.New(events.BusinessCreated, created.ID, created))
	return created, nil
}

// Get serves from the cache when possible. Cache errors are logged and bypassed.
// A miss that races an Update may still write the older row; it lives at most
// one cache TTL.
func (s *businessService) Get(ctx context.Context, id int64) (*model.Business, error) {
	if cached, ok, err := s.cache.Get(ctx, id); err != nil {
		s.log.Warn("cache_get_failed", "business_id", id, "error", err.Error())
	} else if ok {
		return cached, nil
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	if err := s.cache.Set(ctx, b); err != nil {
		s.log.Warn("cache_set_failed", "business_id", id, "error", err.Error())
	}
	return b, nil
}

func (s *businessService) List(ctx context.Context, limit, offset int) (*BusinessPage, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &BusinessPage{
		Items:   items,
		Limit:   limit,
		Offset:  offset,
		HasNext: len(items) == limit,
	}, nil
}

func (s *businessService) ListByOwner(ctx context.Context, ownerID int64) ([]model.Business, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoBusinessesForOwner
	}
	return items, nil
}

func (s *businessService) Update(ctx context.Context, b model.Business) (*model.Business, error) {
	if err := validateBusiness(b); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, &b)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	s.refresh(ctx, updated)
	publish(ctx, s.pub, s.log, events.New(events.BusinessUpdated, updated.ID, updated))
	return updated, nil
}

func (s *businessService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBusinessNotFound
		}
		return err
	}
	s.evict(ctx, id)
	publish(ctx, s.pub, s.log, events.New(events.BusinessDeleted, id, nil))
	return nil
}

// refresh stores the updated row so readers do not wait for the TTL. If the
// write fails the entry is evicted instead.
func (s *businessService) refresh(ctx context.Context, b *model.Business) {
	if err := s.cache.Set(ctx, b); err != nil {
		s.log.Warn("cache_set_failed", "business_id", b.ID, "error", err.Error())
		s.evict(ctx, b.ID)
	}
}

func (s *businessService) evict(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.Warn("cache_delete_failed", "business_id", id, "error", err.Error())
	}
}
