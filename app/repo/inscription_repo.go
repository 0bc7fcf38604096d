package repo

import (
	"invita/app/models"

	"gorm.io/gorm"
)

type InscriptionRepository struct{ db *gorm.DB }

func NewInscriptionRepository(db *gorm.DB) *InscriptionRepository {
	return &InscriptionRepository{db: db}
}

func (r *InscriptionRepository) Create(i *models.Inscription) error { return r.db.Create(i).Error }

func (r *InscriptionRepository) CountByUserAndEvent(userID, eventID uint) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Inscription{}).
		Where("usuarioid = ? AND eventoid = ?", userID, eventID).
		Count(&count).Error
}

func (r *InscriptionRepository) FindByID(id uint) (*models.Inscription, error) {
	var i models.Inscription
	if err := r.db.First(&i, "inscripcionid = ?", id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InscriptionRepository) List() ([]models.Inscription, error) {
	var ins []models.Inscription
	err := r.db.Order("inscripcionid asc").Find(&ins).Error
	return ins, err
}

func (r *InscriptionRepository) ListByUser(userID uint) ([]models.Inscription, error) {
	var ins []models.Inscription
	err := r.db.Where("usuarioid = ?", userID).Order("inscripcionid asc").Find(&ins).Error
	return ins, err
}

func (r *InscriptionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Inscription{}, "inscripcionid = ?", id).Error
}
