package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PostID    uuid.UUID `json:"post_id" db:"post_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CommentWithAuthor is the repository row a CommentView is assembled from.
type CommentWithAuthor struct {
	Comment
	AuthorName   *string `db:"author_name"`
	AuthorAvatar *string `db:"author_avatar"`
}

// CommentView is a comment joined with its author's profile for rendering.
// UserID stays raw so the client can run its own permission checks.
type CommentView struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	User    string    `json:"user"`
	Content string    `json:"content"`
	Time    string    `json:"time"`
	Avatar  *string   `json:"avatar"`
}
