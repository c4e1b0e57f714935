package repositories

import (
	"fmt"

	"blogapp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMSkillRepository is a GORM implementation of SkillRepository.
type GORMSkillRepository struct {
	db *gorm.DB
}

// NewGORMSkillRepository creates a new instance of GORMSkillRepository.
func NewGORMSkillRepository(db *gorm.DB) *GORMSkillRepository {
	return &GORMSkillRepository{db: db}
}

func (r *GORMSkillRepository) GetAll() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Preload("UserSkills").Order("name asc, id desc").Find(&skills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all skills: %w", err)
	}
	return skills, nil
}

func (r *GORMSkillRepository) GetByID(id uint) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.Preload("UserSkills").First(&skill, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill by ID %d: %w", id, err)
	}
	return &skill, nil
}

func (r *GORMSkillRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Skill{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check skill %d: %w", id, err)
	}
	return count > 0, nil
}

func (r *GORMSkillRepository) NameExists(normalized string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).
		Where("UPPER(name) = ? AND id <> ?", normalized, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check skill name: %w", err)
	}
	return count > 0, nil
}

func (r *GORMSkillRepository) CountUserSkills(skillID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserSkill{}).Where("skill_id = ?", skillID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count user skills of skill %d: %w", skillID, err)
	}
	return count, nil
}

func (r *GORMSkillRepository) Create(skill *models.Skill, userIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(skill).Error; err != nil {
			return err
		}
		return createUserSkills(tx, skill.ID, userIDs, bySkill)
	})
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

func (r *GORMSkillRepository) Update(skill *models.Skill, userIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("skill_id = ?", skill.ID).Delete(&models.UserSkill{}).Error; err != nil {
			return err
		}
		skill.UserSkills = nil
		if err := tx.Omit(clause.Associations).Save(skill).Error; err != nil {
			return err
		}
		return createUserSkills(tx, skill.ID, userIDs, bySkill)
	})
	if err != nil {
		return fmt.Errorf("failed to update skill %d: %w", skill.ID, err)
	}
	return nil
}

func (r *GORMSkillRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Skill{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete skill %d: %w", id, err)
	}
	return nil
}

type userSkillSide int

const (
	bySkill userSkillSide = iota
	byUser
)

// createUserSkills inserts one join row per related id, anchored on the
// given side of the association.
func createUserSkills(tx *gorm.DB, ownID uint, relatedIDs []uint, side userSkillSide) error {
	if len(relatedIDs) == 0 {
		return nil
	}
	rows := make([]models.UserSkill, 0, len(relatedIDs))
	for _, relatedID := range relatedIDs {
		switch side {
		case bySkill:
			rows = append(rows, models.UserSkill{SkillID: ownID, UserID: relatedID})
		case byUser:
			rows = append(rows, models.UserSkill{UserID: ownID, SkillID: relatedID})
		}
	}
	return tx.Create(&rows).Error
}
