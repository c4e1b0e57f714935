package services

import (
	"strings"

	"blogapp/internal/models"
	"blogapp/internal/repositories"
	"blogapp/pkg/events"
)

// RoleService handles role commands and queries. Business-rule failures are
// reported through the CommandResult; errors are reserved for store failures.
type RoleService struct {
	repo   repositories.RoleRepository
	events events.Publisher
}

// NewRoleService creates a new RoleService.
func NewRoleService(repo repositories.RoleRepository, pub events.Publisher) *RoleService {
	return &RoleService{repo: repo, events: pub}
}

// Create adds a role after the case-insensitive name uniqueness check.
func (s *RoleService) Create(req models.RoleCreateRequest) (models.CommandResult, error) {
	exists, err := s.repo.NameExists(normalizeName(req.Name), 0)
	if err != nil {
		return models.CommandResult{}, err
	}
	if exists {
		return models.Fail("A role with the same name already exists."), nil
	}

	role := &models.Role{Name: strings.TrimSpace(req.Name)}
	if err := s.repo.Create(role); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "role", "created", role.ID)
	return models.Ok("Role created successfully.", role.ID), nil
}

// Update renames a role. Uniqueness excludes the role itself, so renaming a
// role to its current name succeeds.
func (s *RoleService) Update(req models.RoleUpdateRequest) (models.CommandResult, error) {
	role, err := s.repo.GetByID(req.ID)
	if err != nil {
		return models.CommandResult{}, err
	}
	if role == nil {
		return models.Fail("Role not found!"), nil
	}

	exists, err := s.repo.NameExists(normalizeName(req.Name), req.ID)
	if err != nil {
		return models.CommandResult{}, err
	}
	if exists {
		return models.Fail("A role with the same name already exists."), nil
	}

	role.Name = strings.TrimSpace(req.Name)
	if err := s.repo.Update(role); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "role", "updated", role.ID)
	return models.Ok("Role updated successfully.", role.ID), nil
}

// Delete removes a role unless any user still references it.
func (s *RoleService) Delete(id uint) (models.CommandResult, error) {
	role, err := s.repo.GetByID(id)
	if err != nil {
		return models.CommandResult{}, err
	}
	if role == nil {
		return models.Fail("Role not found!"), nil
	}

	users, err := s.repo.CountUsers(id)
	if err != nil {
		return models.CommandResult{}, err
	}
	if users > 0 {
		return models.Fail("Role cannot be deleted because it has relational users!"), nil
	}

	if err := s.repo.Delete(id); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "role", "deleted", id)
	return models.Ok("Role deleted successfully.", id), nil
}

// Query returns all roles ordered by name ascending, id descending.
func (s *RoleService) Query() ([]models.RoleView, error) {
	roles, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	views := make([]models.RoleView, 0, len(roles))
	for _, role := range roles {
		views = append(views, models.RoleView{ID: role.ID, Name: role.Name})
	}
	return views, nil
}
