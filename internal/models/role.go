package models

// Role groups users by what they are allowed to do.
type Role struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:30;not null;uniqueIndex" validate:"required,max=30"`
	Users []User `json:"users,omitempty" gorm:"foreignKey:RoleID"`
}

// RoleCreateRequest is the payload for creating a role.
type RoleCreateRequest struct {
	Name string `json:"name" validate:"required,max=30"`
}

// RoleUpdateRequest is the payload for updating a role.
type RoleUpdateRequest struct {
	ID   uint   `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,max=30"`
}

// RoleView is the read-side projection of a role.
type RoleView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
