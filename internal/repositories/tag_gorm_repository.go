package repositories

import (
	"fmt"
	"strings"

	"blogapp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMTagRepository is a GORM implementation of TagRepository.
type GORMTagRepository struct {
	db *gorm.DB
}

// NewGORMTagRepository creates a new instance of GORMTagRepository.
func NewGORMTagRepository(db *gorm.DB) *GORMTagRepository {
	return &GORMTagRepository{db: db}
}

func (r *GORMTagRepository) Find(filter models.TagFilter) ([]models.Tag, error) {
	query := r.db.Preload("BlogTags.Blog").Order("name asc")
	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("UPPER(name) LIKE ?", "%"+strings.ToUpper(name)+"%")
	}
	var tags []models.Tag
	if err := query.Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to find tags: %w", err)
	}
	return tags, nil
}

func (r *GORMTagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Preload("BlogTags.Blog").First(&tag, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tag by ID %d: %w", id, err)
	}
	return &tag, nil
}

func (r *GORMTagRepository) NameExists(normalized string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).
		Where("UPPER(name) = ? AND id <> ?", normalized, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check tag name: %w", err)
	}
	return count > 0, nil
}

func (r *GORMTagRepository) CountBlogTags(tagID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.BlogTag{}).Where("tag_id = ?", tagID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count blog tags of tag %d: %w", tagID, err)
	}
	return count, nil
}

func (r *GORMTagRepository) Create(tag *models.Tag, blogIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(tag).Error; err != nil {
			return err
		}
		return createBlogTags(tx, tag.ID, blogIDs, byTag)
	})
	if err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

func (r *GORMTagRepository) Update(tag *models.Tag, blogIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", tag.ID).Delete(&models.BlogTag{}).Error; err != nil {
			return err
		}
		tag.BlogTags = nil
		if err := tx.Omit(clause.Associations).Save(tag).Error; err != nil {
			return err
		}
		return createBlogTags(tx, tag.ID, blogIDs, byTag)
	})
	if err != nil {
		return fmt.Errorf("failed to update tag %d: %w", tag.ID, err)
	}
	return nil
}

func (r *GORMTagRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Tag{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete tag %d: %w", id, err)
	}
	return nil
}

type blogTagSide int

const (
	byTag blogTagSide = iota
	byBlog
)

// createBlogTags inserts one join row per related id, anchored on the given
// side of the association.
func createBlogTags(tx *gorm.DB, ownID uint, relatedIDs []uint, side blogTagSide) error {
	if len(relatedIDs) == 0 {
		return nil
	}
	rows := make([]models.BlogTag, 0, len(relatedIDs))
	for _, relatedID := range relatedIDs {
		switch side {
		case byTag:
			rows = append(rows, models.BlogTag{TagID: ownID, BlogID: relatedID})
		case byBlog:
			rows = append(rows, models.BlogTag{BlogID: ownID, TagID: relatedID})
		}
	}
	return tx.Create(&rows).Error
}
