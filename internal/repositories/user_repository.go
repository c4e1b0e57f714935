package repositories

import "blogapp/internal/models"

// UserOrder selects the fixed sort order for user reads. The two services
// project users in different orders and both are preserved.
type UserOrder int

const (
	// OrderActiveFirst sorts active users first, then by username (users
	// service order).
	OrderActiveFirst UserOrder = iota
	// OrderByUserName sorts by username, then registration date, then active
	// first (blog service order).
	OrderByUserName
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// GetAll returns users in the given order with role and skills loaded.
	GetAll(order UserOrder) ([]models.User, error)
	// GetByID returns (nil, nil) when no user has the given id.
	GetByID(id uint) (*models.User, error)
	// GetByUserName returns the user with the exact username, role loaded;
	// (nil, nil) when absent.
	GetByUserName(userName string) (*models.User, error)
	// Exists reports whether a user with the given id exists.
	Exists(id uint) (bool, error)
	UserNameExists(normalized string, excludeID uint) (bool, error)
	// Create persists the user and one join row per skill id atomically.
	Create(user *models.User, skillIDs []uint) error
	// Update persists the user; when replaceSkills is true its join rows are
	// replaced wholesale with one row per skill id.
	Update(user *models.User, skillIDs []uint, replaceSkills bool) error
	// Delete removes the user's join rows and then the user, atomically.
	Delete(id uint) error
}
