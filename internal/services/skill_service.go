package services

import (
	"strings"

	"blogapp/internal/models"
	"blogapp/internal/repositories"
	"blogapp/pkg/events"
)

// SkillService handles skill commands and queries. Related user ids are
// translated into join records without existence validation, matching the
// blog service's behavior.
type SkillService struct {
	repo   repositories.SkillRepository
	events events.Publisher
}

// NewSkillService creates a new SkillService.
func NewSkillService(repo repositories.SkillRepository, pub events.Publisher) *SkillService {
	return &SkillService{repo: repo, events: pub}
}

// Create adds a skill and its user associations as one atomic unit.
func (s *SkillService) Create(req models.SkillCreateRequest) (models.CommandResult, error) {
	exists, err := s.repo.NameExists(normalizeName(req.Name), 0)
	if err != nil {
		return models.CommandResult{}, err
	}
	if exists {
		return models.Fail("A skill with the same name already exists."), nil
	}

	skill := &models.Skill{Name: strings.TrimSpace(req.Name)}
	if err := s.repo.Create(skill, req.UserIDs); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "skill", "created", skill.ID)
	return models.Ok("Skill created successfully.", skill.ID), nil
}

// Update renames a skill and replaces its user associations wholesale.
func (s *SkillService) Update(req models.SkillUpdateRequest) (models.CommandResult, error) {
	skill, err := s.repo.GetByID(req.ID)
	if err != nil {
		return models.CommandResult{}, err
	}
	if skill == nil {
		return models.Fail("Skill not found!"), nil
	}

	exists, err := s.repo.NameExists(normalizeName(req.Name), req.ID)
	if err != nil {
		return models.CommandResult{}, err
	}
	if exists {
		return models.Fail("A skill with the same name already exists."), nil
	}

	skill.Name = strings.TrimSpace(req.Name)
	if err := s.repo.Update(skill, req.UserIDs); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "skill", "updated", skill.ID)
	return models.Ok("Skill updated successfully.", skill.ID), nil
}

// Delete removes a skill unless any user-skill join row still references it.
func (s *SkillService) Delete(id uint) (models.CommandResult, error) {
	skill, err := s.repo.GetByID(id)
	if err != nil {
		return models.CommandResult{}, err
	}
	if skill == nil {
		return models.Fail("Skill not found!"), nil
	}

	dependents, err := s.repo.CountUserSkills(id)
	if err != nil {
		return models.CommandResult{}, err
	}
	if dependents > 0 {
		return models.Fail("Skill cannot be deleted because it has relational user skills!"), nil
	}

	if err := s.repo.Delete(id); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "skill", "deleted", id)
	return models.Ok("Skill deleted successfully.", id), nil
}

// Query returns all skills ordered by name ascending, id descending.
func (s *SkillService) Query() ([]models.SkillView, error) {
	skills, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	views := make([]models.SkillView, 0, len(skills))
	for _, skill := range skills {
		userIDs := make([]uint, 0, len(skill.UserSkills))
		for _, us := range skill.UserSkills {
			userIDs = append(userIDs, us.UserID)
		}
		views = append(views, models.SkillView{ID: skill.ID, Name: skill.Name, UserIDs: userIDs})
	}
	return views, nil
}
