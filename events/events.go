package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	ViewInvalidate = "aegis.view.invalidate"
	PostLiked      = "aegis.post.liked"
	CommentAdded   = "aegis.post.comment.added"
)

// ViewInvalidateEvent asks subscribers to drop the cached renderings of the
// named view paths. Fire-and-forget; views are recomputed on next read.
type ViewInvalidateEvent struct {
	Paths     []string  `json:"paths"`
	Timestamp time.Time `json:"timestamp"`
}

type PostLikedEvent struct {
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	Liked     bool      `json:"liked"`
	Timestamp time.Time `json:"timestamp"`
}

type CommentAddedEvent struct {
	CommentID uuid.UUID `json:"comment_id"`
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
