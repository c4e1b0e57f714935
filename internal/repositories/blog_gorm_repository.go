package repositories

import (
	"fmt"
	"strings"

	"blogapp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMBlogRepository is a GORM implementation of BlogRepository.
type GORMBlogRepository struct {
	db *gorm.DB
}

// NewGORMBlogRepository creates a new instance of GORMBlogRepository.
func NewGORMBlogRepository(db *gorm.DB) *GORMBlogRepository {
	return &GORMBlogRepository{db: db}
}

func (r *GORMBlogRepository) Find(filter models.BlogFilter) ([]models.Blog, error) {
	query := r.db.Preload("User").Preload("BlogTags.Tag").Order("publish_date desc")
	if title := strings.TrimSpace(filter.Title); title != "" {
		query = query.Where("UPPER(title) LIKE ?", "%"+strings.ToUpper(title)+"%")
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.PublishDateStart != nil {
		query = query.Where("publish_date >= ?", *filter.PublishDateStart)
	}
	if filter.PublishDateEnd != nil {
		query = query.Where("publish_date <= ?", *filter.PublishDateEnd)
	}
	var blogs []models.Blog
	if err := query.Find(&blogs).Error; err != nil {
		return nil, fmt.Errorf("failed to find blogs: %w", err)
	}
	return blogs, nil
}

func (r *GORMBlogRepository) GetByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("User").Preload("BlogTags.Tag").First(&blog, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blog by ID %d: %w", id, err)
	}
	return &blog, nil
}

func (r *GORMBlogRepository) TitleExists(normalized string, userID uint, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Blog{}).
		Where("UPPER(title) = ? AND user_id = ? AND id <> ?", normalized, userID, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check blog title: %w", err)
	}
	return count > 0, nil
}

func (r *GORMBlogRepository) Create(blog *models.Blog, tagIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(blog).Error; err != nil {
			return err
		}
		return createBlogTags(tx, blog.ID, tagIDs, byBlog)
	})
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

func (r *GORMBlogRepository) Update(blog *models.Blog, tagIDs []uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", blog.ID).Delete(&models.BlogTag{}).Error; err != nil {
			return err
		}
		blog.BlogTags = nil
		blog.User = models.User{}
		if err := tx.Omit(clause.Associations).Save(blog).Error; err != nil {
			return err
		}
		return createBlogTags(tx, blog.ID, tagIDs, byBlog)
	})
	if err != nil {
		return fmt.Errorf("failed to update blog %d: %w", blog.ID, err)
	}
	return nil
}

func (r *GORMBlogRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", id).Delete(&models.BlogTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Blog{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete blog %d: %w", id, err)
	}
	return nil
}
