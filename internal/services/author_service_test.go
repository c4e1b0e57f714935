package services_test

import (
	"testing"
	"time"

	"blogapp/internal/models"
	"blogapp/internal/repositories"
	"blogapp/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthorService(db *gorm.DB) *services.AuthorService {
	return services.NewAuthorService(
		repositories.NewGORMUserRepository(db),
		services.DefaultFormatter(),
		nil,
	)
}

func TestAuthorService_CreateDuplicateUserName(t *testing.T) {
	db := newTestDB(t)
	service := newAuthorService(db)

	role := seedRole(t, db, "Member")
	seedUser(t, db, "alice", "password", role.ID)

	result, err := service.Create(models.UserCreateRequest{
		UserName: "Alice ",
		Password: "Password1!",
		RoleID:   role.ID,
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "A user with the same username already exists.", result.Message)
}

func TestAuthorService_CreateSkipsSkillValidation(t *testing.T) {
	db := newTestDB(t)
	service := newAuthorService(db)

	role := seedRole(t, db, "Member")

	// Unlike the users service, skill ids pass through unchecked.
	result, err := service.Create(models.UserCreateRequest{
		UserName: "bob",
		Password: "Password1!",
		RoleID:   role.ID,
		SkillIDs: []uint{500},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)

	var joins int64
	require.NoError(t, db.Model(&models.UserSkill{}).Count(&joins).Error)
	assert.EqualValues(t, 1, joins)
}

func TestAuthorService_UpdateIsFullReplace(t *testing.T) {
	db := newTestDB(t)
	service := newAuthorService(db)

	role := seedRole(t, db, "Member")
	skill := seedSkill(t, db, "Go")
	user := seedUser(t, db, "alice", "password", role.ID)
	require.NoError(t, db.Create(&models.UserSkill{UserID: user.ID, SkillID: skill.ID}).Error)

	// Omitting skill ids clears the association set; every field is
	// overwritten with the supplied values.
	result, err := service.Update(models.AuthorUpdateRequest{
		ID:               user.ID,
		UserName:         "alice",
		Password:         "NewPassword1!",
		IsActive:         false,
		Name:             "Alice",
		Surname:          "Jones",
		RegistrationDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		RoleID:           role.ID,
	})
	require.NoError(t, err)
	assert.True(t, result.Success)

	views, err := service.Query()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Jones", views[0].Surname)
	assert.False(t, views[0].IsActive)
	assert.Empty(t, views[0].SkillIDs)
}

func TestAuthorService_UpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	service := newAuthorService(db)

	result, err := service.Update(models.AuthorUpdateRequest{ID: 9, UserName: "ghost", Password: "Password1!"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "User not found!", result.Message)
}

func TestAuthorService_QueryOrderByUserName(t *testing.T) {
	db := newTestDB(t)
	service := newAuthorService(db)

	role := seedRole(t, db, "Member")
	seedUser(t, db, "zoe", "password", role.ID)
	inactive := seedUser(t, db, "aaron", "password", role.ID)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", inactive.ID).Update("is_active", false).Error)

	// Username ascending wins over active status here.
	views, err := service.Query()
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "aaron", views[0].UserName)
	assert.Equal(t, "zoe", views[1].UserName)
}
