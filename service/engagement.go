package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Prajwal-sudo-600/AEGIS/apperror"
	"github.com/Prajwal-sudo-600/AEGIS/events"
	"github.com/Prajwal-sudo-600/AEGIS/model"
	"github.com/Prajwal-sudo-600/AEGIS/repository"
)

// EventPublisher is the engagement event surface; emission is best effort.
type EventPublisher interface {
	PublishPostLiked(event events.PostLikedEvent) error
	PublishCommentAdded(event events.CommentAddedEvent) error
}

// Engagement keeps the denormalized likes_count/comments_count on a post in
// step with the like and comment sets. Counter writes are single atomic
// arithmetic updates, floored at zero, so concurrent toggles cannot drive a
// counter negative or clobber each other's adjustments.
type Engagement interface {
	ToggleLike(ctx context.Context, actor, postID uuid.UUID) (bool, error)
	AddComment(ctx context.Context, actor, postID uuid.UUID, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, actor, commentID uuid.UUID) error
}

type engagement struct {
	likes       repository.LikeRepository
	comments    repository.CommentRepository
	posts       repository.PostRepository
	publisher   EventPublisher
	invalidator ViewInvalidator
}

func NewEngagement(
	likes repository.LikeRepository,
	comments repository.CommentRepository,
	posts repository.PostRepository,
	publisher EventPublisher,
	invalidator ViewInvalidator,
) Engagement {
	return &engagement{
		likes:       likes,
		comments:    comments,
		posts:       posts,
		publisher:   publisher,
		invalidator: invalidator,
	}
}

// ToggleLike flips the like association (actor, postID) and adjusts the
// post's likes_count. The association write runs first; when it fails the
// counter is never touched. A counter write failure after a successful
// association write leaves the two out of step, which is logged and
// surfaced as a store failure.
func (s *engagement) ToggleLike(ctx context.Context, actor, postID uuid.UUID) (bool, error) {
	liked, err := s.likes.IsPostLikedByUser(ctx, postID, actor)
	if err != nil {
		return false, storeErr("check like status", err)
	}

	if liked {
		if err := s.likes.DeleteLike(ctx, postID, actor); err != nil {
			return false, storeErr("unlike post", err)
		}
		if err := s.posts.DecrementLikesCount(ctx, postID); err != nil {
			log.Printf("likes_count for post %s out of step with like set: %v", postID, err)
			return false, storeErr("update like counter", err)
		}
	} else {
		err := s.likes.CreateLike(ctx, postID, actor)
		if errors.Is(err, repository.ErrLikeExists) {
			// Lost the toggle race to a concurrent request; the
			// association and counter are already in place.
			return true, nil
		}
		if err != nil {
			return false, storeErr("like post", err)
		}
		if err := s.posts.IncrementLikesCount(ctx, postID); err != nil {
			log.Printf("likes_count for post %s out of step with like set: %v", postID, err)
			return false, storeErr("update like counter", err)
		}
	}

	if err := s.publisher.PublishPostLiked(events.PostLikedEvent{
		PostID:    postID,
		UserID:    actor,
		Liked:     !liked,
		Timestamp: time.Now(),
	}); err != nil {
		log.Printf("failed to publish post liked event: %v", err)
	}

	s.invalidator.InvalidateViews(ViewFeed)

	return !liked, nil
}

// AddComment appends a comment to a post and increments comments_count.
func (s *engagement) AddComment(ctx context.Context, actor, postID uuid.UUID, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperror.Validation("comment content must not be empty")
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, storeErr("get post", err)
	}

	comment := &models.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    actor,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, storeErr("add comment", err)
	}

	if err := s.posts.IncrementCommentsCount(ctx, postID); err != nil {
		log.Printf("comments_count for post %s out of step with comment set: %v", postID, err)
		return nil, storeErr("update comment counter", err)
	}

	if err := s.publisher.PublishCommentAdded(events.CommentAddedEvent{
		CommentID: comment.ID,
		PostID:    postID,
		UserID:    actor,
		Content:   content,
		CreatedAt: comment.CreatedAt,
	}); err != nil {
		log.Printf("failed to publish comment added event: %v", err)
	}

	s.invalidator.InvalidateViews(ViewFeed)

	return comment, nil
}

// DeleteComment removes a comment and decrements comments_count. Only the
// comment's author may delete it; the post owner may not.
func (s *engagement) DeleteComment(ctx context.Context, actor, commentID uuid.UUID) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return storeErr("get comment", err)
	}

	if comment.UserID != actor {
		return apperror.Forbidden("you are not authorized to delete this comment")
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return storeErr("delete comment", err)
	}

	if err := s.posts.DecrementCommentsCount(ctx, comment.PostID); err != nil {
		log.Printf("comments_count for post %s out of step with comment set: %v", comment.PostID, err)
		return storeErr("update comment counter", err)
	}

	s.invalidator.InvalidateViews(ViewFeed)

	return nil
}
