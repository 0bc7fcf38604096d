package services

import (
	"invita/app/models"
	"invita/app/repo"
)

// Thin pass-throughs for the catalog entities. They exist so controllers
// never touch repositories directly, matching the rest of the app.

type RoleService struct{ roles *repo.RoleRepository }

func NewRoleService(roles *repo.RoleRepository) *RoleService { return &RoleService{roles: roles} }

func (s *RoleService) List() ([]models.Role, error) { return s.roles.List() }
func (s *RoleService) Create(r *models.Role) error  { return s.roles.Create(r) }
func (s *RoleService) Update(r *models.Role) error  { return s.roles.Update(r) }
func (s *RoleService) Delete(id uint) error         { return s.roles.Delete(id) }

type EventTypeService struct{ types *repo.EventTypeRepository }

func NewEventTypeService(types *repo.EventTypeRepository) *EventTypeService {
	return &EventTypeService{types: types}
}

func (s *EventTypeService) List() ([]models.EventType, error) { return s.types.List() }
func (s *EventTypeService) Create(t *models.EventType) error  { return s.types.Create(t) }
func (s *EventTypeService) Update(t *models.EventType) error  { return s.types.Update(t) }
func (s *EventTypeService) Delete(id uint) error              { return s.types.Delete(id) }

type OrganizerService struct{ organizers *repo.OrganizerRepository }

func NewOrganizerService(organizers *repo.OrganizerRepository) *OrganizerService {
	return &OrganizerService{organizers: organizers}
}

func (s *OrganizerService) List() ([]models.Organizer, error) { return s.organizers.List() }
func (s *OrganizerService) Create(o *models.Organizer) error  { return s.organizers.Create(o) }
func (s *OrganizerService) Delete(id uint) error              { return s.organizers.Delete(id) }
