package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Prajwal-sudo-600/AEGIS/apperror"
	"github.com/Prajwal-sudo-600/AEGIS/model"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID uuid.UUID) (*models.Comment, error)
	Delete(ctx context.Context, commentID uuid.UUID) error
	GetPostComments(ctx context.Context, postID uuid.UUID) ([]models.CommentWithAuthor, error)
	GetTotalCountByPost(ctx context.Context, postID uuid.UUID) (int32, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a new comment into the database
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, post_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		comment.ID,
		comment.PostID,
		comment.UserID,
		comment.Content,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(ctx context.Context, commentID uuid.UUID) (*models.Comment, error) {
	query := `
		SELECT id, post_id, user_id, content, created_at
		FROM comments
		WHERE id = $1
	`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("comment")
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

// Delete removes a comment from the database
func (r *commentRepository) Delete(ctx context.Context, commentID uuid.UUID) error {
	query := `DELETE FROM comments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return apperror.NotFound("comment")
	}

	return nil
}

// GetPostComments retrieves a post's comments joined with their author's
// profile, oldest first.
func (r *commentRepository) GetPostComments(ctx context.Context, postID uuid.UUID) ([]models.CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.post_id, c.user_id, c.content, c.created_at,
		       pr.full_name AS author_name, pr.avatar_url AS author_avatar
		FROM comments c
		LEFT JOIN profiles pr ON pr.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
	`

	var comments []models.CommentWithAuthor
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return comments, nil
}

// GetTotalCountByPost returns the live comment count for a post
func (r *commentRepository) GetTotalCountByPost(ctx context.Context, postID uuid.UUID) (int32, error) {
	query := `SELECT COUNT(*) FROM comments WHERE post_id = $1`

	var count int32
	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to get comment count: %w", err)
	}

	return count, nil
}
