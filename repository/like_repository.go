package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrLikeExists = errors.New("like already exists")

type LikeRepository interface {
	CreateLike(ctx context.Context, postID, userID uuid.UUID) error
	DeleteLike(ctx context.Context, postID, userID uuid.UUID) error
	IsPostLikedByUser(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	GetLikeCountByPost(ctx context.Context, postID uuid.UUID) (int32, error)
	GetLikedPostIDs(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// CreateLike adds a new like for a post by a user. The unique constraint on
// (post_id, user_id) holds the invariant that a user likes a post at most
// once; a duplicate insert reports ErrLikeExists without writing.
func (r *likeRepository) CreateLike(ctx context.Context, postID, userID uuid.UUID) error {
	query := `
		INSERT INTO post_likes (id, post_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, uuid.New(), postID, userID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrLikeExists
	}

	return nil
}

// DeleteLike removes a like for a post by a user
func (r *likeRepository) DeleteLike(ctx context.Context, postID, userID uuid.UUID) error {
	query := `
		DELETE FROM post_likes
		WHERE post_id = $1 AND user_id = $2
	`

	_, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	return nil
}

// IsPostLikedByUser checks whether a like association exists
func (r *likeRepository) IsPostLikedByUser(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM post_likes
			WHERE post_id = $1 AND user_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check like status: %w", err)
	}

	return exists, nil
}

// GetLikeCountByPost returns the true cardinality of the like set for a post
func (r *likeRepository) GetLikeCountByPost(ctx context.Context, postID uuid.UUID) (int32, error) {
	query := `
		SELECT COUNT(*)
		FROM post_likes
		WHERE post_id = $1
	`

	var count int32
	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to get like count: %w", err)
	}

	return count, nil
}

// GetLikedPostIDs returns which of the given posts the user has liked
func (r *likeRepository) GetLikedPostIDs(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	result := make(map[uuid.UUID]bool, len(postIDs))
	for _, postID := range postIDs {
		result[postID] = false
	}

	if len(postIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT post_id
		FROM post_likes
		WHERE user_id = $1 AND post_id = ANY($2)
	`

	var likedPostIDs []uuid.UUID
	err := r.db.SelectContext(ctx, &likedPostIDs, query, userID, pq.Array(postIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch like status: %w", err)
	}

	for _, likedID := range likedPostIDs {
		result[likedID] = true
	}

	return result, nil
}
