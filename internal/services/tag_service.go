package services

import (
	"strings"

	"blogapp/internal/models"
	"blogapp/internal/repositories"
	"blogapp/pkg/events"
)

// TagService handles tag commands and queries.
type TagService struct {
	repo   repositories.TagRepository
	fmtr   Formatter
	events events.Publisher
}

// NewTagService creates a new TagService.
func NewTagService(repo repositories.TagRepository, fmtr Formatter, pub events.Publisher) *TagService {
	return &TagService{repo: repo, fmtr: fmtr, events: pub}
}

// Create adds a tag and its blog associations as one atomic unit. Blog ids
// are not existence-validated, matching the blog service's behavior.
func (s *TagService) Create(req models.TagCreateRequest) (models.CommandResult, error) {
	exists, err := s.repo.NameExists(normalizeName(req.Name), 0)
	if err != nil {
		return models.CommandResult{}, err
	}
	if exists {
		return models.Fail("A tag with the same name already exists."), nil
	}

	tag := &models.Tag{Name: strings.TrimSpace(req.Name)}
	if err := s.repo.Create(tag, req.BlogIDs); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "tag", "created", tag.ID)
	return models.Ok("Tag created successfully.", tag.ID), nil
}

// Update renames a tag and replaces its blog associations wholesale.
func (s *TagService) Update(req models.TagUpdateRequest) (models.CommandResult, error) {
	tag, err := s.repo.GetByID(req.ID)
	if err != nil {
		return models.CommandResult{}, err
	}
	if tag == nil {
		return models.Fail("Tag not found!"), nil
	}

	exists, err := s.repo.NameExists(normalizeName(req.Name), req.ID)
	if err != nil {
		return models.CommandResult{}, err
	}
	if exists {
		return models.Fail("A tag with the same name already exists."), nil
	}

	tag.Name = strings.TrimSpace(req.Name)
	if err := s.repo.Update(tag, req.BlogIDs); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "tag", "updated", tag.ID)
	return models.Ok("Tag updated successfully.", tag.ID), nil
}

// Delete removes a tag unless any blog-tag join row still references it.
func (s *TagService) Delete(id uint) (models.CommandResult, error) {
	tag, err := s.repo.GetByID(id)
	if err != nil {
		return models.CommandResult{}, err
	}
	if tag == nil {
		return models.Fail("Tag not found!"), nil
	}

	dependents, err := s.repo.CountBlogTags(id)
	if err != nil {
		return models.CommandResult{}, err
	}
	if dependents > 0 {
		return models.Fail("Tag cannot be deleted because it has relational blog tags!"), nil
	}

	if err := s.repo.Delete(id); err != nil {
		return models.CommandResult{}, err
	}

	events.Emit(s.events, "tag", "deleted", id)
	return models.Ok("Tag deleted successfully.", id), nil
}

// Query returns tags matching the filter, ordered by name ascending, each
// flattened with its blog ids and titles.
func (s *TagService) Query(filter models.TagFilter) ([]models.TagView, error) {
	tags, err := s.repo.Find(filter)
	if err != nil {
		return nil, err
	}
	views := make([]models.TagView, 0, len(tags))
	for _, tag := range tags {
		blogIDs := make([]uint, 0, len(tag.BlogTags))
		titles := make([]string, 0, len(tag.BlogTags))
		for _, bt := range tag.BlogTags {
			blogIDs = append(blogIDs, bt.BlogID)
			titles = append(titles, bt.Blog.Title)
		}
		views = append(views, models.TagView{
			ID:         tag.ID,
			Name:       tag.Name,
			BlogIDs:    blogIDs,
			BlogTitles: s.fmtr.JoinNames(titles),
		})
	}
	return views, nil
}
