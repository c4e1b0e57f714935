package services

import (
	"strings"

	"blogapp/internal/models"
	"blogapp/internal/repositories"
	"blogapp/pkg/events"
)

// BlogService handles blog commands and queries. Blog titles are unique per
// author, case-insensitively. Tag ids are translated into join records
// without existence validation; only the author id is checked on update.
type BlogService struct {
	blogs  repositories.BlogRepository
	users  repositories.UserRepository
	fmtr   Formatter
	events events.Publisher
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogs repositories.BlogRepository, users repositories.UserRepository, fmtr Formatter, pub events.Publisher) *BlogService {
	return &BlogService{blogs: blogs, users: users, fmtr: fmtr, events: pub}
}

// Create adds a blog and its tag associations as one atomic unit.
func (s *BlogService) Create(req models.BlogCreateRequest) (models.CommandResult, error) {
	exists, err := s.blogs.TitleExists(normalizeName(req.Title), req.UserID, 0)
	if err != nil {
		return models.CommandResult{}, err
	}
	if exists {
		return models.Fail("A blog with the same title already exists for this user."), nil
	}

	blog := &models.Blog{
		Title:       strings.TrimSpace(req.Title),
		Content:     strings.TrimSpace(req.Content),
		Rating:      req.Rating,
		PublishDate: req.PublishDate,
		UserID:      req.UserID,
	}
	if err := s.blogs.Create(blog, req.TagIDs); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "blog", "created", blog.ID)
	return models.Ok("Blog created successfully.", blog.ID), nil
}

// Update overwrites all mutable blog fields and replaces its tag
// associations wholesale. The referenced author must exist.
func (s *BlogService) Update(req models.BlogUpdateRequest) (models.CommandResult, error) {
	exists, err := s.blogs.TitleExists(normalizeName(req.Title), req.UserID, req.ID)
	if err != nil {
		return models.CommandResult{}, err
	}
	if exists {
		return models.Fail("Another blog with the same title exists for this user."), nil
	}

	blog, err := s.blogs.GetByID(req.ID)
	if err != nil {
		return models.CommandResult{}, err
	}
	if blog == nil {
		return models.Fail("Blog not found!"), nil
	}

	userExists, err := s.users.Exists(req.UserID)
	if err != nil {
		return models.CommandResult{}, err
	}
	if !userExists {
		return models.Fail("Specified user does not exist."), nil
	}

	blog.Title = strings.TrimSpace(req.Title)
	blog.Content = strings.TrimSpace(req.Content)
	blog.Rating = req.Rating
	blog.PublishDate = req.PublishDate
	blog.UserID = req.UserID
	if err := s.blogs.Update(blog, req.TagIDs); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "blog", "updated", blog.ID)
	return models.Ok("Blog updated successfully.", blog.ID), nil
}

// Delete removes the blog's tag join records and then the blog itself.
func (s *BlogService) Delete(id uint) (models.CommandResult, error) {
	blog, err := s.blogs.GetByID(id)
	if err != nil {
		return models.CommandResult{}, err
	}
	if blog == nil {
		return models.Fail("Blog not found!"), nil
	}

	if err := s.blogs.Delete(id); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "blog", "deleted", id)
	return models.Ok("Blog deleted successfully.", id), nil
}

// Query returns blogs matching the filter, ordered by publish date
// descending, each joined with its author and tags.
func (s *BlogService) Query(filter models.BlogFilter) ([]models.BlogView, error) {
	blogs, err := s.blogs.Find(filter)
	if err != nil {
		return nil, err
	}
	views := make([]models.BlogView, 0, len(blogs))
	for _, blog := range blogs {
		tagIDs := make([]uint, 0, len(blog.BlogTags))
		tagNames := make([]string, 0, len(blog.BlogTags))
		for _, bt := range blog.BlogTags {
			tagIDs = append(tagIDs, bt.TagID)
			tagNames = append(tagNames, bt.Tag.Name)
		}
		views = append(views, models.BlogView{
			ID:              blog.ID,
			Title:           blog.Title,
			Content:         blog.Content,
			Rating:          blog.Rating,
			PublishDate:     blog.PublishDate,
			PublishDateText: s.fmtr.FormatDate(blog.PublishDate),
			UserID:          blog.UserID,
			UserFullName:    strings.TrimSpace(blog.User.Name + " " + blog.User.Surname),
			TagIDs:          tagIDs,
			TagNames:        s.fmtr.JoinNames(tagNames),
		})
	}
	return views, nil
}
