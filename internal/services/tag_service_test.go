package services_test

import (
	"testing"

	"blogapp/internal/models"
	"blogapp/internal/repositories"
	"blogapp/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService_CreateWithBlogs(t *testing.T) {
	db := newTestDB(t)
	service := services.NewTagService(repositories.NewGORMTagRepository(db), services.DefaultFormatter(), nil)

	role := seedRole(t, db, "Member")
	user := seedUser(t, db, "writer", "password", role.ID)
	blog := seedBlog(t, db, "First Post", user.ID)

	result, err := service.Create(models.TagCreateRequest{Name: "golang", BlogIDs: []uint{blog.ID}})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Tag created successfully.", result.Message)

	views, err := service.Query(models.TagFilter{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "golang", views[0].Name)
	assert.Equal(t, []uint{blog.ID}, views[0].BlogIDs)
	assert.Equal(t, "First Post", views[0].BlogTitles)
}

func TestTagService_CreateDuplicateName(t *testing.T) {
	db := newTestDB(t)
	service := services.NewTagService(repositories.NewGORMTagRepository(db), services.DefaultFormatter(), nil)

	_, err := service.Create(models.TagCreateRequest{Name: "news"})
	require.NoError(t, err)

	result, err := service.Create(models.TagCreateRequest{Name: "NEWS "})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "A tag with the same name already exists.", result.Message)
}

func TestTagService_QueryFilterByName(t *testing.T) {
	db := newTestDB(t)
	service := services.NewTagService(repositories.NewGORMTagRepository(db), services.DefaultFormatter(), nil)

	_, err := service.Create(models.TagCreateRequest{Name: "golang"})
	require.NoError(t, err)
	_, err = service.Create(models.TagCreateRequest{Name: "gophers"})
	require.NoError(t, err)
	_, err = service.Create(models.TagCreateRequest{Name: "databases"})
	require.NoError(t, err)

	views, err := service.Query(models.TagFilter{Name: "GO"})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "golang", views[0].Name)
	assert.Equal(t, "gophers", views[1].Name)
}

func TestTagService_UpdateReplacesBlogs(t *testing.T) {
	db := newTestDB(t)
	service := services.NewTagService(repositories.NewGORMTagRepository(db), services.DefaultFormatter(), nil)

	role := seedRole(t, db, "Member")
	user := seedUser(t, db, "writer", "password", role.ID)
	first := seedBlog(t, db, "First Post", user.ID)
	second := seedBlog(t, db, "Second Post", user.ID)

	created, err := service.Create(models.TagCreateRequest{Name: "tech", BlogIDs: []uint{first.ID}})
	require.NoError(t, err)

	result, err := service.Update(models.TagUpdateRequest{ID: created.ID, Name: "tech", BlogIDs: []uint{second.ID}})
	require.NoError(t, err)
	assert.True(t, result.Success)

	views, err := service.Query(models.TagFilter{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, []uint{second.ID}, views[0].BlogIDs)
	assert.Equal(t, "Second Post", views[0].BlogTitles)
}

func TestTagService_DeleteWithBlogTags(t *testing.T) {
	db := newTestDB(t)
	service := services.NewTagService(repositories.NewGORMTagRepository(db), services.DefaultFormatter(), nil)

	role := seedRole(t, db, "Member")
	user := seedUser(t, db, "writer", "password", role.ID)
	blog := seedBlog(t, db, "Tagged Post", user.ID)

	created, err := service.Create(models.TagCreateRequest{Name: "sticky", BlogIDs: []uint{blog.ID}})
	require.NoError(t, err)

	result, err := service.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Tag cannot be deleted because it has relational blog tags!", result.Message)
}

func TestTagService_DeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	service := services.NewTagService(repositories.NewGORMTagRepository(db), services.DefaultFormatter(), nil)

	result, err := service.Delete(7)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Tag not found!", result.Message)
}
