package services_test

import (
	"fmt"
	"testing"
	"time"

	"blogapp/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database named after the test so each
// test gets an isolated schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Role{}, &models.Skill{}, &models.User{}, &models.UserSkill{},
		&models.Tag{}, &models.Blog{}, &models.BlogTag{},
	))
	return db
}

// seedRole inserts a role directly and returns it.
func seedRole(t *testing.T, db *gorm.DB, name string) models.Role {
	t.Helper()
	role := models.Role{Name: name}
	require.NoError(t, db.Create(&role).Error)
	return role
}

// seedSkill inserts a skill directly and returns it.
func seedSkill(t *testing.T, db *gorm.DB, name string) models.Skill {
	t.Helper()
	skill := models.Skill{Name: name}
	require.NoError(t, db.Create(&skill).Error)
	return skill
}

// seedBlog inserts a blog directly and returns it.
func seedBlog(t *testing.T, db *gorm.DB, title string, userID uint) models.Blog {
	t.Helper()
	blog := models.Blog{
		Title:       title,
		Content:     "Content long enough to pass validation.",
		PublishDate: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		UserID:      userID,
	}
	require.NoError(t, db.Create(&blog).Error)
	return blog
}

// seedUser inserts an active user with a bcrypt-hashed password and returns it.
func seedUser(t *testing.T, db *gorm.DB, userName, password string, roleID uint) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		UserName:         userName,
		Password:         string(hash),
		IsActive:         true,
		Name:             "Test",
		Surname:          "User",
		RegistrationDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		RoleID:           roleID,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
