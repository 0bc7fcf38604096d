package repo

import (
	"invita/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) CountByUsernameOrEmail(username, email string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).
		Where("nombreusuario = ? OR correo = ?", username, email).
		Count(&count).Error
}

// FindByIdentifier matches either the username or the email, exactly.
func (r *UserRepository) FindByIdentifier(identifier string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("nombreusuario = ? OR correo = ?", identifier, identifier).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, "usuarioid = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListExcluding returns all users except the given id, ordered by id.
func (r *UserRepository) ListExcluding(id uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("usuarioid <> ?", id).Order("usuarioid asc").Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(u *models.User) error { return r.db.Save(u).Error }

func (r *UserRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, "usuarioid = ?", id).Error
}
