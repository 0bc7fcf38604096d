package services

import (
	"context"
	"encoding/json"
	"errors"

	"invita/app/cache"
	"invita/app/models"
	"invita/app/repo"

	"gorm.io/gorm"
)

type EventService struct {
	events *repo.EventRepository
	cache  *cache.EventCache
}

func NewEventService(events *repo.EventRepository, c *cache.EventCache) *EventService {
	return &EventService{events: events, cache: c}
}

// List serves the evento catalog through the cache when one is
// configured.
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	if b, ok := s.cache.Get(ctx); ok {
		var events []models.Event
		if err := json.Unmarshal(b, &events); err == nil {
			return events, nil
		}
	}
	events, err := s.events.List()
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(events); err == nil {
		s.cache.Set(ctx, b)
	}
	return events, nil
}

func (s *EventService) Create(ctx context.Context, e *models.Event) error {
	if err := s.events.Create(e); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *EventService) Update(ctx context.Context, e *models.Event) error {
	if _, err := s.events.FindByID(e.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.events.Update(e); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *EventService) Delete(ctx context.Context, id uint) error {
	if err := s.events.Delete(id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}
