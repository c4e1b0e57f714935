package repositories

import (
	"fmt"

	"blogapp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMRoleRepository is a GORM implementation of RoleRepository.
type GORMRoleRepository struct {
	db *gorm.DB
}

// NewGORMRoleRepository creates a new instance of GORMRoleRepository.
func NewGORMRoleRepository(db *gorm.DB) *GORMRoleRepository {
	return &GORMRoleRepository{db: db}
}

func (r *GORMRoleRepository) GetAll() ([]models.Role, error) {
	var roles []models.Role
	if err := r.db.Order("name asc, id desc").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to get all roles: %w", err)
	}
	return roles, nil
}

func (r *GORMRoleRepository) GetByID(id uint) (*models.Role, error) {
	var role models.Role
	if err := r.db.First(&role, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by ID %d: %w", id, err)
	}
	return &role, nil
}

func (r *GORMRoleRepository) NameExists(normalized string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Role{}).
		Where("UPPER(name) = ? AND id <> ?", normalized, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check role name: %w", err)
	}
	return count > 0, nil
}

func (r *GORMRoleRepository) CountUsers(roleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role_id = ?", roleID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count users of role %d: %w", roleID, err)
	}
	return count, nil
}

func (r *GORMRoleRepository) Create(role *models.Role) error {
	if err := r.db.Omit(clause.Associations).Create(role).Error; err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

func (r *GORMRoleRepository) Update(role *models.Role) error {
	if err := r.db.Omit(clause.Associations).Save(role).Error; err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return nil
}

func (r *GORMRoleRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Role{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete role %d: %w", id, err)
	}
	return nil
}
