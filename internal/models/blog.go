package models

import "time"

// Blog is a post written by a user and labeled with tags (many-to-many via
// BlogTag).
type Blog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:100;not null" validate:"required,min=5,max=100"`
	Content     string    `json:"content" gorm:"type:text;not null" validate:"required,min=20"`
	Rating      *float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	PublishDate time.Time `json:"publishDate" gorm:"not null"`
	UserID      uint      `json:"userId" gorm:"not null"`
	User        User      `json:"-" gorm:"foreignKey:UserID"`
	BlogTags    []BlogTag `json:"-" gorm:"foreignKey:BlogID"`
}

// BlogCreateRequest is the payload for creating a blog.
type BlogCreateRequest struct {
	Title       string    `json:"title" validate:"required,min=5,max=100"`
	Content     string    `json:"content" validate:"required,min=20"`
	Rating      *float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	PublishDate time.Time `json:"publishDate" validate:"required"`
	UserID      uint      `json:"userId" validate:"required"`
	TagIDs      []uint    `json:"tagIds"`
}

// BlogUpdateRequest is the payload for updating a blog. The tag id list
// replaces the blog's whole association set.
type BlogUpdateRequest struct {
	ID          uint      `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=5,max=100"`
	Content     string    `json:"content" validate:"required,min=20"`
	Rating      *float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	PublishDate time.Time `json:"publishDate" validate:"required"`
	UserID      uint      `json:"userId" validate:"required"`
	TagIDs      []uint    `json:"tagIds"`
}

// BlogFilter narrows a blog query. Zero values mean "no filter".
type BlogFilter struct {
	Title            string
	UserID           *uint
	PublishDateStart *time.Time
	PublishDateEnd   *time.Time
}

// BlogView is the read-side projection of a blog joined with its author and
// tags, flattened for display.
type BlogView struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Rating          *float64  `json:"rating"`
	PublishDate     time.Time `json:"publishDate"`
	PublishDateText string    `json:"publishDateText"`
	UserID          uint      `json:"userId"`
	UserFullName    string    `json:"userFullName"`
	TagIDs          []uint    `json:"tagIds"`
	TagNames        string    `json:"tagNames"`
}
