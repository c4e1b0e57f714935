package models

// Tag labels blogs (many-to-many via BlogTag).
type Tag struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"size:30;not null;uniqueIndex" validate:"required,max=30"`
	BlogTags []BlogTag `json:"-" gorm:"foreignKey:TagID"`
}

// BlogTag is the join record between blogs and tags.
type BlogTag struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	BlogID uint `json:"blogId" gorm:"not null;index"`
	TagID  uint `json:"tagId" gorm:"not null;index"`
	Tag    Tag  `json:"-" gorm:"foreignKey:TagID"`
	Blog   Blog `json:"-" gorm:"foreignKey:BlogID"`
}

// TagCreateRequest is the payload for creating a tag.
type TagCreateRequest struct {
	Name    string `json:"name" validate:"required,max=30"`
	BlogIDs []uint `json:"blogIds"`
}

// TagUpdateRequest is the payload for updating a tag. The blog id list
// replaces the tag's whole association set.
type TagUpdateRequest struct {
	ID      uint   `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required,max=30"`
	BlogIDs []uint `json:"blogIds"`
}

// TagFilter narrows a tag query. Zero values mean "no filter".
type TagFilter struct {
	Name string
}

// TagView is the read-side projection of a tag with its blog associations
// flattened for display.
type TagView struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	BlogIDs    []uint `json:"blogIds"`
	BlogTitles string `json:"blogTitles"`
}
