package services

import (
	"fmt"
	"strings"
	"testing"

	"invita/app/models"
	"invita/app/repo"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database per test. cache=shared
// keeps gorm's pooled connections on the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.Role{}, &models.User{}, &models.EventType{},
		&models.Event{}, &models.Inscription{}, &models.Organizer{},
	))
	return gdb
}

func newUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	svc := NewUserService(repo.NewUserRepository(gdb), repo.NewRoleRepository(gdb))
	require.NoError(t, svc.EnsureSeedData("admin", "admin"))
	return svc, gdb
}
