package repositories

import "blogapp/internal/models"

// TagRepository defines the interface for tag data access.
type TagRepository interface {
	// Find returns tags matching the filter, ordered by name ascending, with
	// their blog-tag join rows and blogs loaded.
	Find(filter models.TagFilter) ([]models.Tag, error)
	// GetByID returns (nil, nil) when no tag has the given id.
	GetByID(id uint) (*models.Tag, error)
	NameExists(normalized string, excludeID uint) (bool, error)
	// CountBlogTags counts join rows referencing the tag.
	CountBlogTags(tagID uint) (int64, error)
	// Create persists the tag and one join row per blog id atomically.
	Create(tag *models.Tag, blogIDs []uint) error
	// Update persists the tag and replaces its join rows wholesale.
	Update(tag *models.Tag, blogIDs []uint) error
	Delete(id uint) error
}
