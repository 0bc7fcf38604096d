package repo

import (
	"invita/app/models"

	"gorm.io/gorm"
)

type EventTypeRepository struct{ db *gorm.DB }

func NewEventTypeRepository(db *gorm.DB) *EventTypeRepository {
	return &EventTypeRepository{db: db}
}

func (r *EventTypeRepository) Create(t *models.EventType) error { return r.db.Create(t).Error }

func (r *EventTypeRepository) List() ([]models.EventType, error) {
	var types []models.EventType
	err := r.db.Order("tipoeventoid asc").Find(&types).Error
	return types, err
}

func (r *EventTypeRepository) Update(t *models.EventType) error { return r.db.Save(t).Error }

func (r *EventTypeRepository) Delete(id uint) error {
	return r.db.Delete(&models.EventType{}, "tipoeventoid = ?", id).Error
}
