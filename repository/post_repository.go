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

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID uuid.UUID) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID uuid.UUID) error
	ListWithAuthors(ctx context.Context, ownerID *uuid.UUID) ([]models.PostWithAuthor, error)
	IncrementLikesCount(ctx context.Context, postID uuid.UUID) error
	DecrementLikesCount(ctx context.Context, postID uuid.UUID) error
	IncrementCommentsCount(ctx context.Context, postID uuid.UUID) error
	DecrementCommentsCount(ctx context.Context, postID uuid.UUID) error
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, user_id, content, type, image_url, likes_count, comments_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID,
		post.UserID,
		post.Content,
		post.Type,
		post.ImageURL,
		post.LikesCount,
		post.CommentsCount,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	query := `
		SELECT id, user_id, content, type, image_url, likes_count, comments_count, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("post")
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET content = $1, type = $2, image_url = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query, post.Content, post.Type, post.ImageURL, post.UpdatedAt, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound("post")
	}

	return nil
}

// Delete removes the post row only. Comments and likes referencing the post
// stay behind; there is no cascade.
func (r *postRepository) Delete(ctx context.Context, postID uuid.UUID) error {
	query := `DELETE FROM posts WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound("post")
	}

	return nil
}

// ListWithAuthors returns posts joined with their author's profile, newest
// first with the post id as a stable tie-break. ownerID narrows the listing
// to a single author for profile views.
func (r *postRepository) ListWithAuthors(ctx context.Context, ownerID *uuid.UUID) ([]models.PostWithAuthor, error) {
	query := `
		SELECT p.id, p.user_id, p.content, p.type, p.image_url,
		       p.likes_count, p.comments_count, p.created_at, p.updated_at,
		       pr.full_name AS author_name, pr.handle AS author_handle
		FROM posts p
		LEFT JOIN profiles pr ON pr.id = p.user_id
	`

	args := []interface{}{}
	if ownerID != nil {
		query += " WHERE p.user_id = $1"
		args = append(args, *ownerID)
	}

	query += " ORDER BY p.created_at DESC, p.id DESC"

	var posts []models.PostWithAuthor
	err := r.db.SelectContext(ctx, &posts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) IncrementLikesCount(ctx context.Context, postID uuid.UUID) error {
	query := `UPDATE posts SET likes_count = likes_count + 1 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to increment likes count: %w", err)
	}
	return nil
}

func (r *postRepository) DecrementLikesCount(ctx context.Context, postID uuid.UUID) error {
	query := `UPDATE posts SET likes_count = GREATEST(likes_count - 1, 0) WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to decrement likes count: %w", err)
	}
	return nil
}

func (r *postRepository) IncrementCommentsCount(ctx context.Context, postID uuid.UUID) error {
	query := `UPDATE posts SET comments_count = comments_count + 1 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to increment comments count: %w", err)
	}
	return nil
}

func (r *postRepository) DecrementCommentsCount(ctx context.Context, postID uuid.UUID) error {
	query := `UPDATE posts SET comments_count = GREATEST(comments_count - 1, 0) WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to decrement comments count: %w", err)
	}
	return nil
}
