package services

import (
	"errors"

	"invita/app/models"
	"invita/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	adminRoleName    = "Administrador"
	standardRoleName = "Usuario"

	// The seeded administrator always gets the first id; the admin user
	// listing hides it, as the previous implementation did.
	seedAdminID uint = 1
)

type UserService struct {
	users *repo.UserRepository
	roles *repo.RoleRepository
}

func NewUserService(users *repo.UserRepository, roles *repo.RoleRepository) *UserService {
	return &UserService{users: users, roles: roles}
}

// EnsureSeedData creates the two well-known roles and the initial
// administrator account if they do not exist yet.
func (s *UserService) EnsureSeedData(adminUser, adminPass string) error {
	adminRole, err := s.ensureRole(adminRoleName)
	if err != nil {
		return err
	}
	if _, err := s.ensureRole(standardRoleName); err != nil {
		return err
	}
	if _, err := s.users.FindByIdentifier(adminUser); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{
		FirstName:    "Admin",
		Username:     adminUser,
		Email:        adminUser + "@example.com",
		PasswordHash: string(hash),
		RoleID:       adminRole.ID,
	})
}

func (s *UserService) ensureRole(name string) (*models.Role, error) {
	role, err := s.roles.FindByName(name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	role = &models.Role{Name: name}
	if err := s.roles.Create(role); err != nil {
		return nil, err
	}
	return role, nil
}

// Signup registers a new standard user. The role supplied by the client
// is ignored; administrators are created through CreateUser only.
func (s *UserService) Signup(firstName, lastName, username, email, password string) (*models.User, error) {
	count, err := s.users.CountByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateUser
	}
	role, err := s.roles.FindByName(standardRoleName)
	if err != nil {
		return nil, err
	}
	return s.create(firstName, lastName, username, email, password, role.ID)
}

// CreateUser is the admin path and accepts an explicit role.
func (s *UserService) CreateUser(firstName, lastName, username, email, password string, roleID uint) (*models.User, error) {
	count, err := s.users.CountByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateUser
	}
	return s.create(firstName, lastName, username, email, password, roleID)
}

func (s *UserService) create(firstName, lastName, username, email, password string, roleID uint) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       roleID,
	}
	if err := s.users.Create(u); err != nil {
		// The unique indexes close the check-then-insert race the
		// pre-check above cannot.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

// ValidateCredentials matches the identifier against username or email
// and verifies the password.
func (s *UserService) ValidateCredentials(identifier, password string) (*models.User, error) {
	u, err := s.users.FindByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) List() ([]models.User, error) {
	return s.users.ListExcluding(seedAdminID)
}

// Update rewrites profile fields and the role; the password is re-hashed
// only when a new one is supplied.
func (s *UserService) Update(id uint, firstName, lastName, username, email, password string, roleID uint) (*models.User, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	u.FirstName = firstName
	u.LastName = lastName
	u.Username = username
	u.Email = email
	u.RoleID = roleID
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := s.users.Update(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(id uint) error { return s.users.Delete(id) }
