package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Prajwal-sudo-600/AEGIS/apperror"
	"github.com/Prajwal-sudo-600/AEGIS/model"
	"github.com/Prajwal-sudo-600/AEGIS/repository"
)

// Content owns post creation and the ownership gate on post mutation.
type Content interface {
	CreatePost(ctx context.Context, actor uuid.UUID, content, postType string, imageURL *string) (*models.Post, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*models.Post, error)
	UpdatePost(ctx context.Context, actor, postID uuid.UUID, input *models.UpdatePostInput) (*models.Post, error)
	DeletePost(ctx context.Context, actor, postID uuid.UUID) error
}

type content struct {
	posts       repository.PostRepository
	invalidator ViewInvalidator
}

func NewContent(posts repository.PostRepository, invalidator ViewInvalidator) Content {
	return &content{
		posts:       posts,
		invalidator: invalidator,
	}
}

func (s *content) CreatePost(ctx context.Context, actor uuid.UUID, postContent, postType string, imageURL *string) (*models.Post, error) {
	if strings.TrimSpace(postContent) == "" && imageURL == nil {
		return nil, apperror.Validation("post content must not be empty")
	}

	now := time.Now()
	post := &models.Post{
		ID:        uuid.New(),
		UserID:    actor,
		Content:   postContent,
		Type:      models.NormalizePostType(postType),
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, storeErr("create post", err)
	}

	s.invalidator.InvalidateViews(ViewFeed)

	return post, nil
}

func (s *content) GetPost(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, storeErr("get post", err)
	}
	return post, nil
}

// UpdatePost mutates a post after the ownership gate: the caller must be the
// post's author.
func (s *content) UpdatePost(ctx context.Context, actor, postID uuid.UUID, input *models.UpdatePostInput) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, storeErr("get post", err)
	}

	if post.UserID != actor {
		return nil, apperror.Forbidden("you are not authorized to edit this post")
	}

	post.Content = input.Content
	post.Type = models.NormalizePostType(input.Type)
	post.ImageURL = input.ImageURL
	post.UpdatedAt = time.Now()

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, storeErr("update post", err)
	}

	s.invalidator.InvalidateViews(ViewFeed)

	return post, nil
}

// DeletePost removes a post after the ownership gate. Comments and likes
// referencing the post are left behind; there is no cascade.
func (s *content) DeletePost(ctx context.Context, actor, postID uuid.UUID) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return storeErr("get post", err)
	}

	if post.UserID != actor {
		return apperror.Forbidden("you are not authorized to delete this post")
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return storeErr("delete post", err)
	}

	s.invalidator.InvalidateViews(ViewFeed)

	return nil
}
