package services

import (
	"testing"

	"invita/app/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestEnsureSeedData(t *testing.T) {
	svc, gdb := newUserService(t)

	var roles []models.Role
	require.NoError(t, gdb.Order("rolid asc").Find(&roles).Error)
	require.Len(t, roles, 2)
	require.Equal(t, "Administrador", roles[0].Name)
	require.Equal(t, models.AdminRoleID, roles[0].ID)
	require.Equal(t, "Usuario", roles[1].Name)

	u, err := svc.ValidateCredentials("admin", "admin")
	require.NoError(t, err)
	require.Equal(t, models.AdminRoleID, u.RoleID)

	// Idempotent: a second run must not duplicate anything.
	require.NoError(t, svc.EnsureSeedData("admin", "admin"))
	var count int64
	require.NoError(t, gdb.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSignup_AssignsStandardRoleAndHashes(t *testing.T) {
	svc, _ := newUserService(t)

	u, err := svc.Signup("María", "García", "maria", "maria@example.com", "secreta123")
	require.NoError(t, err)
	require.NotEqual(t, models.AdminRoleID, u.RoleID)
	require.NotEqual(t, "secreta123", u.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secreta123")))
}

func TestSignup_DuplicateIsConflictAndNoWrite(t *testing.T) {
	svc, gdb := newUserService(t)

	_, err := svc.Signup("María", "García", "maria", "maria@example.com", "secreta123")
	require.NoError(t, err)

	_, err = svc.Signup("Otra", "Persona", "maria", "otra@example.com", "x")
	require.ErrorIs(t, err, ErrDuplicateUser)

	_, err = svc.Signup("Otra", "Persona", "otra", "maria@example.com", "x")
	require.ErrorIs(t, err, ErrDuplicateUser)

	var count int64
	require.NoError(t, gdb.Model(&models.User{}).Where("usuarioid <> 1").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestValidateCredentials(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Signup("María", "García", "maria", "maria@example.com", "secreta123")
	require.NoError(t, err)

	_, err = svc.ValidateCredentials("nadie", "x")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.ValidateCredentials("maria", "incorrecta")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Both the username and the email identify the account.
	u, err := svc.ValidateCredentials("maria", "secreta123")
	require.NoError(t, err)
	byEmail, err := svc.ValidateCredentials("maria@example.com", "secreta123")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
}

func TestUpdate_PasswordOnlyWhenProvided(t *testing.T) {
	svc, _ := newUserService(t)

	u, err := svc.Signup("María", "García", "maria", "maria@example.com", "secreta123")
	require.NoError(t, err)

	_, err = svc.Update(u.ID, "María", "López", "maria", "maria@example.com", "", u.RoleID)
	require.NoError(t, err)
	_, err = svc.ValidateCredentials("maria", "secreta123")
	require.NoError(t, err)

	_, err = svc.Update(u.ID, "María", "López", "maria", "maria@example.com", "nueva456", u.RoleID)
	require.NoError(t, err)
	_, err = svc.ValidateCredentials("maria", "secreta123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.ValidateCredentials("maria", "nueva456")
	require.NoError(t, err)
}

func TestList_HidesSeedAdmin(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Signup("María", "García", "maria", "maria@example.com", "secreta123")
	require.NoError(t, err)

	users, err := svc.List()
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "maria", users[0].Username)
}
