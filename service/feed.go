package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/Prajwal-sudo-600/AEGIS/model"
	"github.com/Prajwal-sudo-600/AEGIS/repository"
)

const (
	anonymousName   = "Anonymous User"
	anonymousHandle = "@anonymous"
	timeLayout      = "Jan 2, 2006"
)

// Feed assembles view-ready post lists: posts joined with author profile,
// counters, and the viewer's like state. Read failures degrade to an empty
// list with a logged warning; the viewer never sees a feed error.
type Feed interface {
	Assemble(ctx context.Context, viewerID, ownerID *uuid.UUID) []models.FeedPost
	Comments(ctx context.Context, postID uuid.UUID) []models.CommentView
}

type feed struct {
	posts    repository.PostRepository
	likes    repository.LikeRepository
	comments repository.CommentRepository
}

func NewFeed(
	posts repository.PostRepository,
	likes repository.LikeRepository,
	comments repository.CommentRepository,
) Feed {
	return &feed{
		posts:    posts,
		likes:    likes,
		comments: comments,
	}
}

// Assemble returns a fully materialized snapshot of the feed, newest first.
// ownerID narrows the feed to one author's posts; viewerID personalizes the
// like state and may be nil for anonymous viewers.
func (s *feed) Assemble(ctx context.Context, viewerID, ownerID *uuid.UUID) []models.FeedPost {
	rows, err := s.posts.ListWithAuthors(ctx, ownerID)
	if err != nil {
		log.Printf("Error fetching posts: %v", err)
		return []models.FeedPost{}
	}

	likeStatus := map[uuid.UUID]bool{}
	if viewerID != nil && len(rows) > 0 {
		postIDs := make([]uuid.UUID, len(rows))
		for i, row := range rows {
			postIDs[i] = row.ID
		}

		likeStatus, err = s.likes.GetLikedPostIDs(ctx, *viewerID, postIDs)
		if err != nil {
			log.Printf("Error fetching like status: %v", err)
			likeStatus = map[uuid.UUID]bool{}
		}
	}

	feedPosts := make([]models.FeedPost, len(rows))
	for i, row := range rows {
		name := anonymousName
		if row.AuthorName != nil && *row.AuthorName != "" {
			name = *row.AuthorName
		}

		handle := anonymousHandle
		if row.AuthorHandle != nil && *row.AuthorHandle != "" {
			handle = *row.AuthorHandle
		}

		feedPosts[i] = models.FeedPost{
			ID:       row.ID,
			UserID:   row.UserID,
			User:     name,
			Handle:   handle,
			Time:     row.CreatedAt.Format(timeLayout),
			Content:  row.Content,
			Type:     row.Type,
			ImageURL: row.ImageURL,
			Likes:    row.LikesCount,
			Comments: row.CommentsCount,
			IsLiked:  likeStatus[row.ID],
		}
	}

	return feedPosts
}

// Comments returns a post's comments oldest first, with author fallbacks.
func (s *feed) Comments(ctx context.Context, postID uuid.UUID) []models.CommentView {
	rows, err := s.comments.GetPostComments(ctx, postID)
	if err != nil {
		log.Printf("Error fetching comments: %v", err)
		return []models.CommentView{}
	}

	views := make([]models.CommentView, len(rows))
	for i, row := range rows {
		name := "Anonymous"
		if row.AuthorName != nil && *row.AuthorName != "" {
			name = *row.AuthorName
		}

		views[i] = models.CommentView{
			ID:      row.ID,
			UserID:  row.UserID,
			User:    name,
			Content: row.Content,
			Time:    row.CreatedAt.Format(timeLayout),
			Avatar:  row.AuthorAvatar,
		}
	}

	return views
}
