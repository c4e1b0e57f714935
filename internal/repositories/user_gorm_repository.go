package repositories

import (
	"fmt"

	"blogapp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{db: db}
}

func (r *GORMUserRepository) GetAll(order UserOrder) ([]models.User, error) {
	query := r.db.Preload("Role").Preload("UserSkills.Skill")
	switch order {
	case OrderByUserName:
		query = query.Order("user_name asc, registration_date asc, is_active desc")
	default:
		query = query.Order("is_active desc, user_name asc")
	}
	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").Preload("UserSkills.Skill").First(&user, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

func (r *GORMUserRepository) GetByUserName(userName string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").First(&user, "user_name = ?", userName).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username %s: %w", userName, err)
	}
	return &user, nil
}

func (r *GORMUserRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user %d: %w", id, err)
	}
	return count > 0, nil
}

func (r *GORMUserRepository) UserNameExists(normalized string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("UPPER(user_name) = ? AND id <> ?", normalized, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return count > 0, nil
}

func (r *GORMUserRepository) Create(user *models.User, skillIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return err
		}
		return createUserSkills(tx, user.ID, skillIDs, byUser)
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *GORMUserRepository) Update(user *models.User, skillIDs []uint, replaceSkills bool) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if replaceSkills {
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserSkill{}).Error; err != nil {
				return err
			}
		}
		user.UserSkills = nil
		user.Role = models.Role{}
		if err := tx.Omit(clause.Associations).Save(user).Error; err != nil {
			return err
		}
		if replaceSkills {
			return createUserSkills(tx, user.ID, skillIDs, byUser)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}
	return nil
}

func (r *GORMUserRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.UserSkill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
