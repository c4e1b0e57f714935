package services

import (
	"fmt"
	"strings"

	"blogapp/internal/models"
	"blogapp/internal/repositories"
	"blogapp/pkg/events"

	"golang.org/x/crypto/bcrypt"
)

// AuthorService handles user commands and queries for the blog service.
// Unlike UserService, updates are full replaces and related skill ids are
// not existence-validated.
type AuthorService struct {
	users  repositories.UserRepository
	fmtr   Formatter
	events events.Publisher
}

// NewAuthorService creates a new AuthorService.
func NewAuthorService(users repositories.UserRepository, fmtr Formatter, pub events.Publisher) *AuthorService {
	return &AuthorService{users: users, fmtr: fmtr, events: pub}
}

// Create adds a user. The password is hashed before it is persisted; skill
// ids are turned into join records as given.
func (s *AuthorService) Create(req models.UserCreateRequest) (models.CommandResult, error) {
	exists, err := s.users.UserNameExists(normalizeName(req.UserName), 0)
	if err != nil {
		return models.CommandResult{}, err
	}
	if exists {
		return models.Fail("A user with the same username already exists."), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.CommandResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UserName:         strings.TrimSpace(req.UserName),
		Password:         string(hash),
		IsActive:         req.IsActive,
		Name:             strings.TrimSpace(req.Name),
		Surname:          strings.TrimSpace(req.Surname),
		RegistrationDate: req.RegistrationDate,
		RoleID:           req.RoleID,
	}
	if err := s.users.Create(user, req.SkillIDs); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "user", "created", user.ID)
	return models.Ok("User created successfully.", user.ID), nil
}

// Update overwrites every mutable field with the supplied values and
// replaces the skill association set wholesale.
func (s *AuthorService) Update(req models.AuthorUpdateRequest) (models.CommandResult, error) {
	user, err := s.users.GetByID(req.ID)
	if err != nil {
		return models.CommandResult{}, err
	}
	if user == nil {
		return models.Fail("User not found!"), nil
	}

	exists, err := s.users.UserNameExists(normalizeName(req.UserName), req.ID)
	if err != nil {
		return models.CommandResult{}, err
	}
	if exists {
		return models.Fail("A user with the same username already exists."), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.CommandResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user.UserName = strings.TrimSpace(req.UserName)
	user.Password = string(hash)
	user.IsActive = req.IsActive
	user.Name = strings.TrimSpace(req.Name)
	user.Surname = strings.TrimSpace(req.Surname)
	user.RegistrationDate = req.RegistrationDate
	user.RoleID = req.RoleID

	if err := s.users.Update(user, req.SkillIDs, true); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "user", "updated", user.ID)
	return models.Ok("User updated successfully.", user.ID), nil
}

// Delete removes the user's skill join records and then the user itself.
func (s *AuthorService) Delete(id uint) (models.CommandResult, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return models.CommandResult{}, err
	}
	if user == nil {
		return models.Fail("User not found!"), nil
	}

	if err := s.users.Delete(id); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "user", "deleted", id)
	return models.Ok("User deleted successfully.", id), nil
}

// Query returns users ordered by username, then registration date, then
// active first.
func (s *AuthorService) Query() ([]models.UserView, error) {
	users, err := s.users.GetAll(repositories.OrderByUserName)
	if err != nil {
		return nil, err
	}
	views := make([]models.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, mapUserView(user, s.fmtr))
	}
	return views, nil
}
