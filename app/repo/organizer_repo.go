package repo

import (
	"invita/app/models"

	"gorm.io/gorm"
)

type OrganizerRepository struct{ db *gorm.DB }

func NewOrganizerRepository(db *gorm.DB) *OrganizerRepository {
	return &OrganizerRepository{db: db}
}

func (r *OrganizerRepository) Create(o *models.Organizer) error { return r.db.Create(o).Error }

func (r *OrganizerRepository) List() ([]models.Organizer, error) {
	var orgs []models.Organizer
	err := r.db.Order("organizadorid asc").Find(&orgs).Error
	return orgs, err
}

func (r *OrganizerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Organizer{}, "organizadorid = ?", id).Error
}
