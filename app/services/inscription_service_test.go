package services

import (
	"testing"
	"time"

	"invita/app/models"
	"invita/app/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInscriptionFixture(t *testing.T) (*InscriptionService, *gorm.DB, models.Event) {
	t.Helper()
	gdb := newTestDB(t)
	svc := NewInscriptionService(repo.NewInscriptionRepository(gdb), repo.NewEventRepository(gdb))

	tipo := models.EventType{Description: "Conferencia"}
	require.NoError(t, gdb.Create(&tipo).Error)
	evento := models.Event{Name: "GoConf", Date: time.Now().Add(24 * time.Hour), Location: "Madrid", EventTypeID: tipo.ID}
	require.NoError(t, gdb.Create(&evento).Error)
	return svc, gdb, evento
}

func TestRegister_AssignsReference(t *testing.T) {
	svc, _, evento := newInscriptionFixture(t)

	ins, err := svc.Register(5, evento.ID)
	require.NoError(t, err)
	_, err = uuid.Parse(ins.Reference)
	require.NoError(t, err)
}

func TestRegister_UnknownEventIsRejected(t *testing.T) {
	svc, gdb, _ := newInscriptionFixture(t)

	_, err := svc.Register(5, 999)
	require.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, gdb.Model(&models.Inscription{}).Where("eventoid = ?", 999).Count(&count).Error)
	require.Zero(t, count)
}

func TestRegister_DuplicateIsRejected(t *testing.T) {
	svc, gdb, evento := newInscriptionFixture(t)

	_, err := svc.Register(5, evento.ID)
	require.NoError(t, err)
	_, err = svc.Register(5, evento.ID)
	require.ErrorIs(t, err, ErrDuplicateInscription)

	var count int64
	require.NoError(t, gdb.Model(&models.Inscription{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestListFor(t *testing.T) {
	svc, _, evento := newInscriptionFixture(t)

	_, err := svc.Register(5, evento.ID)
	require.NoError(t, err)
	_, err = svc.Register(6, evento.ID)
	require.NoError(t, err)

	all, err := svc.ListFor(1, true)
	require.NoError(t, err)
	require.Len(t, all, 2)

	own, err := svc.ListFor(5, false)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.EqualValues(t, 5, own[0].UserID)
}

func TestRemove_Ownership(t *testing.T) {
	svc, _, evento := newInscriptionFixture(t)

	ins, err := svc.Register(5, evento.ID)
	require.NoError(t, err)

	require.ErrorIs(t, svc.Remove(ins.ID, 6, false), ErrForbidden)
	require.ErrorIs(t, svc.Remove(999, 5, false), ErrNotFound)
	require.NoError(t, svc.Remove(ins.ID, 5, false))
}
