package models

// Skill is a capability users can be associated with (many-to-many via
// UserSkill).
type Skill struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	Name       string      `json:"name" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	UserSkills []UserSkill `json:"-" gorm:"foreignKey:SkillID"`
}

// UserSkill is the join record between users and skills. Association updates
// replace these rows wholesale rather than diffing them.
type UserSkill struct {
	ID      uint  `json:"id" gorm:"primaryKey"`
	UserID  uint  `json:"userId" gorm:"not null;index"`
	SkillID uint  `json:"skillId" gorm:"not null;index"`
	User    User  `json:"-" gorm:"foreignKey:UserID"`
	Skill   Skill `json:"-" gorm:"foreignKey:SkillID"`
}

// SkillCreateRequest is the payload for creating a skill.
type SkillCreateRequest struct {
	Name    string `json:"name" validate:"required,max=50"`
	UserIDs []uint `json:"userIds"`
}

// SkillUpdateRequest is the payload for updating a skill. The user id list
// replaces the skill's whole association set.
type SkillUpdateRequest struct {
	ID      uint   `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required,max=50"`
	UserIDs []uint `json:"userIds"`
}

// SkillView is the read-side projection of a skill.
type SkillView struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	UserIDs []uint `json:"userIds"`
}
