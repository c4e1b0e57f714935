package repositories

import "blogapp/internal/models"

// BlogRepository defines the interface for blog data access.
type BlogRepository interface {
	// Find returns blogs matching the filter, ordered by publish date
	// descending, with author and tags loaded.
	Find(filter models.BlogFilter) ([]models.Blog, error)
	// GetByID returns (nil, nil) when no blog has the given id.
	GetByID(id uint) (*models.Blog, error)
	// TitleExists reports whether a blog other than excludeID by the same
	// author has the given normalized title.
	TitleExists(normalized string, userID uint, excludeID uint) (bool, error)
	// Create persists the blog and one join row per tag id atomically.
	Create(blog *models.Blog, tagIDs []uint) error
	// Update persists the blog and replaces its join rows wholesale.
	Update(blog *models.Blog, tagIDs []uint) error
	// Delete removes the blog's join rows and then the blog, atomically.
	Delete(id uint) error
}
