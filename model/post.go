package models

import (
	"time"

	"github.com/google/uuid"
)

// PostType is the fixed category enumeration for posts.
type PostType string

const (
	PostTypeResearch    PostType = "research"
	PostTypeAchievement PostType = "achievement"
	PostTypeEducation   PostType = "education"
	PostTypeGeneral     PostType = "general"
)

// NormalizePostType maps UI categories onto the stored enumeration.
// "question" posts are filed under education; anything unknown is general.
func NormalizePostType(t string) PostType {
	switch PostType(t) {
	case PostTypeResearch, PostTypeAchievement, PostTypeEducation, PostTypeGeneral:
		return PostType(t)
	}
	if t == "question" {
		return PostTypeEducation
	}
	return PostTypeGeneral
}

type Post struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Content       string    `json:"content" db:"content"`
	Type          PostType  `json:"type" db:"type"`
	ImageURL      *string   `json:"image_url" db:"image_url"`
	LikesCount    int32     `json:"likes_count" db:"likes_count"`
	CommentsCount int32     `json:"comments_count" db:"comments_count"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// UpdatePostInput carries the post fields the author may change.
type UpdatePostInput struct {
	Content  string  `json:"content"`
	Type     string  `json:"type"`
	ImageURL *string `json:"image_url"`
}
