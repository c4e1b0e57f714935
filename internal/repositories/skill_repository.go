package repositories

import "blogapp/internal/models"

// SkillRepository defines the interface for skill data access.
type SkillRepository interface {
	// GetAll returns skills ordered by name ascending, id descending, with
	// their user-skill join rows loaded.
	GetAll() ([]models.Skill, error)
	// GetByID returns (nil, nil) when no skill has the given id.
	GetByID(id uint) (*models.Skill, error)
	// Exists reports whether a skill with the given id exists.
	Exists(id uint) (bool, error)
	NameExists(normalized string, excludeID uint) (bool, error)
	// CountUserSkills counts join rows referencing the skill.
	CountUserSkills(skillID uint) (int64, error)
	// Create persists the skill and one join row per user id atomically.
	Create(skill *models.Skill, userIDs []uint) error
	// Update persists the skill and replaces its join rows wholesale.
	Update(skill *models.Skill, userIDs []uint) error
	Delete(id uint) error
}
