package repo

import (
	"invita/app/models"

	"gorm.io/gorm"
)

type EventRepository struct{ db *gorm.DB }

func NewEventRepository(db *gorm.DB) *EventRepository { return &EventRepository{db: db} }

func (r *EventRepository) Create(e *models.Event) error {
	if err := r.db.Create(e).Error; err != nil {
		return err
	}
	return r.db.Preload("EventType").First(e, "eventoid = ?", e.ID).Error
}

func (r *EventRepository) FindByID(id uint) (*models.Event, error) {
	var e models.Event
	if err := r.db.Preload("EventType").First(&e, "eventoid = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) List() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Preload("EventType").Order("eventoid asc").Find(&events).Error
	return events, err
}

func (r *EventRepository) Update(e *models.Event) error { return r.db.Save(e).Error }

func (r *EventRepository) Delete(id uint) error {
	return r.db.Delete(&models.Event{}, "eventoid = ?", id).Error
}
