package models

import (
	"github.com/google/uuid"
)

// FeedPost is a fully materialized feed entry: the post joined with its
// author's profile, denormalized counters, and the viewer's like state.
type FeedPost struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	User     string    `json:"user"`
	Handle   string    `json:"handle"`
	Time     string    `json:"time"`
	Content  string    `json:"content"`
	Type     PostType  `json:"type"`
	ImageURL *string   `json:"image_url"`
	Likes    int32     `json:"likes"`
	Comments int32     `json:"comments"`
	IsLiked  bool      `json:"is_liked"`
}

// PostWithAuthor is the repository row a FeedPost is assembled from.
type PostWithAuthor struct {
	Post
	AuthorName   *string `db:"author_name"`
	AuthorHandle *string `db:"author_handle"`
}
