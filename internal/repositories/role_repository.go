package repositories

import "blogapp/internal/models"

// RoleRepository defines the interface for role data access.
type RoleRepository interface {
	// GetAll returns roles ordered by name ascending, id descending.
	GetAll() ([]models.Role, error)
	// GetByID returns (nil, nil) when no role has the given id.
	GetByID(id uint) (*models.Role, error)
	// NameExists reports whether a role other than excludeID has the given
	// normalized (trimmed, upper-cased) name.
	NameExists(normalized string, excludeID uint) (bool, error)
	// CountUsers counts users referencing the role.
	CountUsers(roleID uint) (int64, error)
	Create(role *models.Role) error
	Update(role *models.Role) error
	Delete(id uint) error
}
