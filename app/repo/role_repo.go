package repo

import (
	"invita/app/models"

	"gorm.io/gorm"
)

type RoleRepository struct{ db *gorm.DB }

func NewRoleRepository(db *gorm.DB) *RoleRepository { return &RoleRepository{db: db} }

func (r *RoleRepository) Create(role *models.Role) error { return r.db.Create(role).Error }

func (r *RoleRepository) FindByName(name string) (*models.Role, error) {
	var role models.Role
	if err := r.db.Where("nombrerol = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepository) List() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Order("rolid asc").Find(&roles).Error
	return roles, err
}

func (r *RoleRepository) Update(role *models.Role) error { return r.db.Save(role).Error }

func (r *RoleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Role{}, "rolid = ?", id).Error
}
