package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Prajwal-sudo-600/AEGIS/apperror"
)

type FollowRepository interface {
	FollowUser(ctx context.Context, followerID, followingID uuid.UUID) error
	UnfollowUser(ctx context.Context, followerID, followingID uuid.UUID) error
	IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	GetFollowingIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
	GetFollowersCount(ctx context.Context, userID uuid.UUID) (int32, error)
	GetFollowingCount(ctx context.Context, userID uuid.UUID) (int32, error)
}

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// FollowUser creates a new follow relationship. The unique constraint on
// (follower_id, following_id) keeps the edge set to at most one edge per
// ordered pair even under concurrent toggles.
func (r *followRepository) FollowUser(ctx context.Context, followerID, followingID uuid.UUID) error {
	if followerID == followingID {
		return apperror.SelfFollow()
	}

	query := `
		INSERT INTO follows (id, follower_id, following_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (follower_id, following_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, uuid.New(), followerID, followingID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to follow user: %w", err)
	}

	return nil
}

// UnfollowUser removes a follow relationship
func (r *followRepository) UnfollowUser(ctx context.Context, followerID, followingID uuid.UUID) error {
	query := `
		DELETE FROM follows
		WHERE follower_id = $1 AND following_id = $2
	`

	_, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("failed to unfollow user: %w", err)
	}

	return nil
}

// IsFollowing checks if followerID follows followingID
func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM follows
			WHERE follower_id = $1 AND following_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("failed to check following status: %w", err)
	}

	return exists, nil
}

// GetFollowingIDs returns the set of users the given user follows
func (r *followRepository) GetFollowingIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT following_id
		FROM follows
		WHERE follower_id = $1
	`

	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, query, followerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get following ids: %w", err)
	}

	return ids, nil
}

// GetFollowersCount returns the exact number of followers, computed by
// counting edges rather than reading a stored tally.
func (r *followRepository) GetFollowersCount(ctx context.Context, userID uuid.UUID) (int32, error) {
	query := `SELECT COUNT(*) FROM follows WHERE following_id = $1`

	var count int32
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get followers count: %w", err)
	}

	return count, nil
}

// GetFollowingCount returns the exact number of users being followed
func (r *followRepository) GetFollowingCount(ctx context.Context, userID uuid.UUID) (int32, error) {
	query := `SELECT COUNT(*) FROM follows WHERE follower_id = $1`

	var count int32
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get following count: %w", err)
	}

	return count, nil
}
