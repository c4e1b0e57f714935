package services

import (
	"fmt"
	"strings"

	"blogapp/internal/models"
	"blogapp/internal/repositories"
	"blogapp/pkg/events"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles user commands and queries for the users service.
// Referenced skill ids are existence-validated and updates are partial:
// nil request fields leave the stored values untouched. The blog service's
// AuthorService deliberately behaves differently on both counts.
type UserService struct {
	users  repositories.UserRepository
	skills repositories.SkillRepository
	fmtr   Formatter
	events events.Publisher
}

// NewUserService creates a new UserService.
func NewUserService(users repositories.UserRepository, skills repositories.SkillRepository, fmtr Formatter, pub events.Publisher) *UserService {
	return &UserService{users: users, skills: skills, fmtr: fmtr, events: pub}
}

// Create adds a user. The password is hashed before it is persisted and
// every referenced skill id must exist.
func (s *UserService) Create(req models.UserCreateRequest) (models.CommandResult, error) {
	exists, err := s.users.UserNameExists(normalizeName(req.UserName), 0)
	if err != nil {
		return models.CommandResult{}, err
	}
	if exists {
		return models.Fail("Username is already taken."), nil
	}

	if result, err := s.validateSkillIDs(req.SkillIDs); err != nil || !result.Success {
		return result, err
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

// Update applies a partial update: only non-nil request fields are written.
// A nil skill id list leaves the association set alone; a non-nil one
// replaces it wholesale after existence validation.
func (s *UserService) Update(req models.UserUpdateRequest) (models.CommandResult, error) {
	user, err := s.users.GetByID(req.ID)
	if err != nil {
		return models.CommandResult{}, err
	}
	if user == nil {
		return models.Fail("User not found."), nil
	}

	if req.UserName != nil {
		exists, err := s.users.UserNameExists(normalizeName(*req.UserName), req.ID)
		if err != nil {
			return models.CommandResult{}, err
		}
		if exists {
			return models.Fail("Username is already taken."), nil
		}
	}

	if req.SkillIDs != nil {
		if result, err := s.validateSkillIDs(req.SkillIDs); err != nil || !result.Success {
			return result, err
		}
	}

	if req.UserName != nil {
		user.UserName = strings.TrimSpace(*req.UserName)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.CommandResult{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Surname != nil {
		user.Surname = strings.TrimSpace(*req.Surname)
	}
	if req.RoleID != nil {
		user.RoleID = *req.RoleID
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.users.Update(user, req.SkillIDs, req.SkillIDs != nil); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "user", "updated", user.ID)
	return models.Ok("User updated successfully.", user.ID), nil
}

// Delete removes the user's skill join records and then the user itself.
func (s *UserService) Delete(id uint) (models.CommandResult, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return models.CommandResult{}, err
	}
	if user == nil {
		return models.Fail("User not found."), nil
	}

	if err := s.users.Delete(id); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "user", "deleted", id)
	return models.Ok("User deleted successfully.", id), nil
}

// Query returns users with active ones first, then by username.
func (s *UserService) Query() ([]models.UserView, error) {
	users, err := s.users.GetAll(repositories.OrderActiveFirst)
	if err != nil {
		return nil, err
	}
	views := make([]models.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, mapUserView(user, s.fmtr))
	}
	return views, nil
}

func (s *UserService) validateSkillIDs(skillIDs []uint) (models.CommandResult, error) {
	for _, skillID := range skillIDs {
		exists, err := s.skills.Exists(skillID)
		if err != nil {
			return models.CommandResult{}, err
		}
		if !exists {
			return models.Fail(fmt.Sprintf("Skill with ID %d does not exist.", skillID)), nil
		}
	}
	return models.CommandResult{Success: true}, nil
}

// mapUserView flattens a user's role and skills into the read projection.
// The password hash is never projected.
func mapUserView(user models.User, fmtr Formatter) models.UserView {
	skillIDs := make([]uint, 0, len(user.UserSkills))
	skillNames := make([]string, 0, len(user.UserSkills))
	for _, us := range user.UserSkills {
		skillIDs = append(skillIDs, us.SkillID)
		skillNames = append(skillNames, us.Skill.Name)
	}
	active := "Not Active"
	if user.IsActive {
		active = "Active"
	}
	return models.UserView{
		ID:                   user.ID,
		UserName:             user.UserName,
		IsActive:             user.IsActive,
		Active:               active,
		Name:                 user.Name,
		Surname:              user.Surname,
		FullName:             strings.TrimSpace(user.Name + " " + user.Surname),
		RegistrationDate:     user.RegistrationDate,
		RegistrationDateText: fmtr.FormatDate(user.RegistrationDate),
		RoleID:               user.RoleID,
		RoleName:             user.Role.Name,
		SkillIDs:             skillIDs,
		SkillNames:           fmtr.JoinNames(skillNames),
	}
}
