package models

import "time"

// User is an account that can author blogs and hold skills. The password is
// stored as a bcrypt hash and never serialized.
type User struct {
	ID               uint        `json:"id" gorm:"primaryKey"`
	UserName         string      `json:"userName" gorm:"size:20;not null;uniqueIndex" validate:"required,min=4,max=20"`
	Password         string      `json:"-" gorm:"size:100;not null"`
	IsActive         bool        `json:"isActive"`
	Name             string      `json:"name" gorm:"size:50" validate:"max=50"`
	Surname          string      `json:"surname" gorm:"size:50" validate:"max=50"`
	RegistrationDate time.Time   `json:"registrationDate"`
	RoleID           uint        `json:"roleId" gorm:"not null"`
	Role             Role        `json:"-" gorm:"foreignKey:RoleID"`
	UserSkills       []UserSkill `json:"-" gorm:"foreignKey:UserID"`
}

// UserCreateRequest is the payload for creating a user.
type UserCreateRequest struct {
	UserName         string    `json:"userName" validate:"required,min=4,max=20"`
	Password         string    `json:"password" validate:"required,min=6,max=100"`
	IsActive         bool      `json:"isActive"`
	Name             string    `json:"name" validate:"max=50"`
	Surname          string    `json:"surname" validate:"max=50"`
	RegistrationDate time.Time `json:"registrationDate"`
	RoleID           uint      `json:"roleId" validate:"required"`
	SkillIDs         []uint    `json:"skillIds"`
}

// UserUpdateRequest is the partial-update payload used by the users service.
// Nil fields are left unchanged; a nil skill id list leaves the association
// set alone, an empty one clears it.
type UserUpdateRequest struct {
	ID       uint    `json:"id" validate:"required"`
	UserName *string `json:"userName" validate:"omitempty,min=4,max=20"`
	Password *string `json:"password" validate:"omitempty,min=6,max=100"`
	IsActive *bool   `json:"isActive"`
	Name     *string `json:"name" validate:"omitempty,max=50"`
	Surname  *string `json:"surname" validate:"omitempty,max=50"`
	RoleID   *uint   `json:"roleId"`
	SkillIDs []uint  `json:"skillIds"`
}

// AuthorUpdateRequest is the full-replace user update used by the blog
// service: every mutable field is overwritten with whatever is supplied.
type AuthorUpdateRequest struct {
	ID               uint      `json:"id" validate:"required"`
	UserName         string    `json:"userName" validate:"required,min=4,max=20"`
	Password         string    `json:"password" validate:"required,min=6,max=100"`
	IsActive         bool      `json:"isActive"`
	Name             string    `json:"name" validate:"max=50"`
	Surname          string    `json:"surname" validate:"max=50"`
	RegistrationDate time.Time `json:"registrationDate"`
	RoleID           uint      `json:"roleId" validate:"required"`
	SkillIDs         []uint    `json:"skillIds"`
}

// UserView is the read-side projection of a user. The password hash is
// deliberately absent.
type UserView struct {
	ID                   uint      `json:"id"`
	UserName             string    `json:"userName"`
	IsActive             bool      `json:"isActive"`
	Active               string    `json:"active"`
	Name                 string    `json:"name"`
	Surname              string    `json:"surname"`
	FullName             string    `json:"fullName"`
	RegistrationDate     time.Time `json:"registrationDate"`
	RegistrationDateText string    `json:"registrationDateText"`
	RoleID               uint      `json:"roleId"`
	RoleName             string    `json:"roleName"`
	SkillIDs             []uint    `json:"skillIds"`
	SkillNames           string    `json:"skillNames"`
}
