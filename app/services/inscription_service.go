package services

import (
	"errors"

	"invita/app/models"
	"invita/app/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InscriptionService struct {
	inscriptions *repo.InscriptionRepository
	events       *repo.EventRepository
}

func NewInscriptionService(inscriptions *repo.InscriptionRepository, events *repo.EventRepository) *InscriptionService {
	return &InscriptionService{inscriptions: inscriptions, events: events}
}

// Register enrolls a user in an event and hands back the stored record
// with its reference code. The event must exist; sqlite and mysql only
// enforce the foreign key when it is declared, so the check lives here.
func (s *InscriptionService) Register(userID, eventID uint) (*models.Inscription, error) {
	if _, err := s.events.FindByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	count, err := s.inscriptions.CountByUserAndEvent(userID, eventID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateInscription
	}
	ins := &models.Inscription{UserID: userID, EventID: eventID, Reference: uuid.NewString()}
	if err := s.inscriptions.Create(ins); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateInscription
		}
		return nil, err
	}
	return ins, nil
}

// ListFor returns every inscription for administrators and only the
// caller's own otherwise.
func (s *InscriptionService) ListFor(userID uint, isAdmin bool) ([]models.Inscription, error) {
	if isAdmin {
		return s.inscriptions.List()
	}
	return s.inscriptions.ListByUser(userID)
}

// Remove deletes an inscription; non-admins may only remove their own.
func (s *InscriptionService) Remove(id, requesterID uint, isAdmin bool) error {
	ins, err := s.inscriptions.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !isAdmin && ins.UserID != requesterID {
		return ErrForbidden
	}
	return s.inscriptions.Delete(id)
}
