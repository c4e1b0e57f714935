package services_test

import (
	"testing"

	"blogapp/internal/models"
	"blogapp/internal/repositories"
	"blogapp/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillService_CreateWithUsers(t *testing.T) {
	db := newTestDB(t)
	service := services.NewSkillService(repositories.NewGORMSkillRepository(db), nil)

	role := seedRole(t, db, "Member")
	user := seedUser(t, db, "gopher", "password", role.ID)

	result, err := service.Create(models.SkillCreateRequest{Name: "Go", UserIDs: []uint{user.ID}})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Skill created successfully.", result.Message)

	views, err := service.Query()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Go", views[0].Name)
	assert.Equal(t, []uint{user.ID}, views[0].UserIDs)
}

func TestSkillService_CreateDuplicateName(t *testing.T) {
	db := newTestDB(t)
	service := services.NewSkillService(repositories.NewGORMSkillRepository(db), nil)

	_, err := service.Create(models.SkillCreateRequest{Name: "SQL"})
	require.NoError(t, err)

	result, err := service.Create(models.SkillCreateRequest{Name: " sql"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "A skill with the same name already exists.", result.Message)
}

func TestSkillService_UpdateReplacesUsers(t *testing.T) {
	db := newTestDB(t)
	service := services.NewSkillService(repositories.NewGORMSkillRepository(db), nil)

	role := seedRole(t, db, "Member")
	first := seedUser(t, db, "first", "password", role.ID)
	second := seedUser(t, db, "second", "password", role.ID)

	created, err := service.Create(models.SkillCreateRequest{Name: "Docker", UserIDs: []uint{first.ID}})
	require.NoError(t, err)

	result, err := service.Update(models.SkillUpdateRequest{ID: created.ID, Name: "Docker", UserIDs: []uint{second.ID}})
	require.NoError(t, err)
	assert.True(t, result.Success)

	views, err := service.Query()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, []uint{second.ID}, views[0].UserIDs)
}

func TestSkillService_UpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	service := services.NewSkillService(repositories.NewGORMSkillRepository(db), nil)

	result, err := service.Update(models.SkillUpdateRequest{ID: 42, Name: "Ghost"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Skill not found!", result.Message)
}

func TestSkillService_DeleteWithUserSkills(t *testing.T) {
	db := newTestDB(t)
	service := services.NewSkillService(repositories.NewGORMSkillRepository(db), nil)

	role := seedRole(t, db, "Member")
	user := seedUser(t, db, "linked", "password", role.ID)

	created, err := service.Create(models.SkillCreateRequest{Name: "Kubernetes", UserIDs: []uint{user.ID}})
	require.NoError(t, err)

	result, err := service.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Skill cannot be deleted because it has relational user skills!", result.Message)
}

func TestSkillService_Delete(t *testing.T) {
	db := newTestDB(t)
	service := services.NewSkillService(repositories.NewGORMSkillRepository(db), nil)

	created, err := service.Create(models.SkillCreateRequest{Name: "Obsolete"})
	require.NoError(t, err)

	result, err := service.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Skill deleted successfully.", result.Message)

	views, err := service.Query()
	require.NoError(t, err)
	assert.Empty(t, views)
}
