package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Prajwal-sudo-600/AEGIS/apperror"
	"github.com/Prajwal-sudo-600/AEGIS/events"
	"github.com/Prajwal-sudo-600/AEGIS/model"
)

type edge struct {
	follower uuid.UUID
	followed uuid.UUID
}

type mockFollowRepo struct {
	edges map[edge]bool
	err   error
}

func newMockFollowRepo() *mockFollowRepo {
	return &mockFollowRepo{edges: make(map[edge]bool)}
}

func (m *mockFollowRepo) FollowUser(_ context.Context, followerID, followingID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	m.edges[edge{followerID, followingID}] = true
	return nil
}

func (m *mockFollowRepo) UnfollowUser(_ context.Context, followerID, followingID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	delete(m.edges, edge{followerID, followingID})
	return nil
}

func (m *mockFollowRepo) IsFollowing(_ context.Context, followerID, followingID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.edges[edge{followerID, followingID}], nil
}

func (m *mockFollowRepo) GetFollowingIDs(_ context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	if m.err != nil {
		return nil, m.err
	}
	var ids []uuid.UUID
	for e := range m.edges {
		if e.follower == followerID {
			ids = append(ids, e.followed)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids, nil
}

func (m *mockFollowRepo) GetFollowersCount(_ context.Context, userID uuid.UUID) (int32, error) {
	if m.err != nil {
		return 0, m.err
	}
	var count int32
	for e := range m.edges {
		if e.followed == userID {
			count++
		}
	}
	return count, nil
}

func (m *mockFollowRepo) GetFollowingCount(_ context.Context, userID uuid.UUID) (int32, error) {
	if m.err != nil {
		return 0, m.err
	}
	var count int32
	for e := range m.edges {
		if e.follower == userID {
			count++
		}
	}
	return count, nil
}

type likeKey struct {
	post uuid.UUID
	user uuid.UUID
}

type mockLikeRepo struct {
	likes     map[likeKey]bool
	createErr error
	deleteErr error
	checkErr  error
}

func newMockLikeRepo() *mockLikeRepo {
	return &mockLikeRepo{likes: make(map[likeKey]bool)}
}

func (m *mockLikeRepo) CreateLike(_ context.Context, postID, userID uuid.UUID) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.likes[likeKey{postID, userID}] = true
	return nil
}

func (m *mockLikeRepo) DeleteLike(_ context.Context, postID, userID uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.likes, likeKey{postID, userID})
	return nil
}

func (m *mockLikeRepo) IsPostLikedByUser(_ context.Context, postID, userID uuid.UUID) (bool, error) {
	if m.checkErr != nil {
		return false, m.checkErr
	}
	return m.likes[likeKey{postID, userID}], nil
}

func (m *mockLikeRepo) GetLikeCountByPost(_ context.Context, postID uuid.UUID) (int32, error) {
	var count int32
	for k := range m.likes {
		if k.post == postID {
			count++
		}
	}
	return count, nil
}

func (m *mockLikeRepo) GetLikedPostIDs(_ context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if m.checkErr != nil {
		return nil, m.checkErr
	}
	result := make(map[uuid.UUID]bool, len(postIDs))
	for _, postID := range postIDs {
		result[postID] = m.likes[likeKey{postID, userID}]
	}
	return result, nil
}

type mockPostRepo struct {
	posts      map[uuid.UUID]*models.Post
	authors    map[uuid.UUID]*models.User
	listErr    error
	counterErr error
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{
		posts:   make(map[uuid.UUID]*models.Post),
		authors: make(map[uuid.UUID]*models.User),
	}
}

func (m *mockPostRepo) Create(_ context.Context, post *models.Post) error {
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *mockPostRepo) GetByID(_ context.Context, postID uuid.UUID) (*models.Post, error) {
	post, ok := m.posts[postID]
	if !ok {
		return nil, apperror.NotFound("post")
	}
	result := *post
	return &result, nil
}

func (m *mockPostRepo) Update(_ context.Context, post *models.Post) error {
	if _, ok := m.posts[post.ID]; !ok {
		return apperror.NotFound("post")
	}
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *mockPostRepo) Delete(_ context.Context, postID uuid.UUID) error {
	if _, ok := m.posts[postID]; !ok {
		return apperror.NotFound("post")
	}
	delete(m.posts, postID)
	return nil
}

func (m *mockPostRepo) ListWithAuthors(_ context.Context, ownerID *uuid.UUID) ([]models.PostWithAuthor, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	var rows []models.PostWithAuthor
	for _, post := range m.posts {
		if ownerID != nil && post.UserID != *ownerID {
			continue
		}
		row := models.PostWithAuthor{Post: *post}
		if author, ok := m.authors[post.UserID]; ok {
			row.AuthorName = author.FullName
			row.AuthorHandle = author.Handle
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].ID.String() > rows[j].ID.String()
	})

	return rows, nil
}

func (m *mockPostRepo) IncrementLikesCount(_ context.Context, postID uuid.UUID) error {
	if m.counterErr != nil {
		return m.counterErr
	}
	if post, ok := m.posts[postID]; ok {
		post.LikesCount++
	}
	return nil
}

func (m *mockPostRepo) DecrementLikesCount(_ context.Context, postID uuid.UUID) error {
	if m.counterErr != nil {
		return m.counterErr
	}
	if post, ok := m.posts[postID]; ok && post.LikesCount > 0 {
		post.LikesCount--
	}
	return nil
}

func (m *mockPostRepo) IncrementCommentsCount(_ context.Context, postID uuid.UUID) error {
	if m.counterErr != nil {
		return m.counterErr
	}
	if post, ok := m.posts[postID]; ok {
		post.CommentsCount++
	}
	return nil
}

func (m *mockPostRepo) DecrementCommentsCount(_ context.Context, postID uuid.UUID) error {
	if m.counterErr != nil {
		return m.counterErr
	}
	if post, ok := m.posts[postID]; ok && post.CommentsCount > 0 {
		post.CommentsCount--
	}
	return nil
}

type mockCommentRepo struct {
	comments map[uuid.UUID]*models.Comment
	authors  map[uuid.UUID]*models.User
	err      error
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{
		comments: make(map[uuid.UUID]*models.Comment),
		authors:  make(map[uuid.UUID]*models.User),
	}
}

func (m *mockCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	if m.err != nil {
		return m.err
	}
	stored := *comment
	m.comments[comment.ID] = &stored
	return nil
}

func (m *mockCommentRepo) GetByID(_ context.Context, commentID uuid.UUID) (*models.Comment, error) {
	comment, ok := m.comments[commentID]
	if !ok {
		return nil, apperror.NotFound("comment")
	}
	result := *comment
	return &result, nil
}

func (m *mockCommentRepo) Delete(_ context.Context, commentID uuid.UUID) error {
	if _, ok := m.comments[commentID]; !ok {
		return apperror.NotFound("comment")
	}
	delete(m.comments, commentID)
	return nil
}

func (m *mockCommentRepo) GetPostComments(_ context.Context, postID uuid.UUID) ([]models.CommentWithAuthor, error) {
	if m.err != nil {
		return nil, m.err
	}

	var rows []models.CommentWithAuthor
	for _, comment := range m.comments {
		if comment.PostID != postID {
			continue
		}
		row := models.CommentWithAuthor{Comment: *comment}
		if author, ok := m.authors[comment.UserID]; ok {
			row.AuthorName = author.FullName
			row.AuthorAvatar = author.AvatarURL
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })

	return rows, nil
}

func (m *mockCommentRepo) GetTotalCountByPost(_ context.Context, postID uuid.UUID) (int32, error) {
	var count int32
	for _, comment := range m.comments {
		if comment.PostID == postID {
			count++
		}
	}
	return count, nil
}

type mockUserRepo struct {
	users map[uuid.UUID]*models.User
	err   error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (m *mockUserRepo) GetByID(_ context.Context, userID uuid.UUID) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[userID]
	if !ok {
		return nil, apperror.NotFound("profile")
	}
	result := *user
	return &result, nil
}

func (m *mockUserRepo) Update(_ context.Context, userID uuid.UUID, input *models.UpdateUserInput) (*models.User, error) {
	user, ok := m.users[userID]
	if !ok {
		return nil, apperror.NotFound("profile")
	}
	if input.FullName != nil {
		user.FullName = input.FullName
	}
	if input.Handle != nil {
		user.Handle = input.Handle
	}
	if input.University != nil {
		user.University = input.University
	}
	if input.Bio != nil {
		user.Bio = input.Bio
	}
	user.UpdatedAt = time.Now()
	result := *user
	return &result, nil
}

func (m *mockUserRepo) UpdateAvatarURL(_ context.Context, userID uuid.UUID, avatarURL string) error {
	user, ok := m.users[userID]
	if !ok {
		return apperror.NotFound("profile")
	}
	user.AvatarURL = &avatarURL
	return nil
}

func (m *mockUserRepo) ListNetwork(_ context.Context, excludeID *uuid.UUID) ([]models.User, error) {
	if m.err != nil {
		return nil, m.err
	}

	var users []models.User
	for _, user := range m.users {
		if excludeID != nil && user.ID == *excludeID {
			continue
		}
		if user.Role != nil && *user.Role == "admin" {
			continue
		}
		users = append(users, *user)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID.String() < users[j].ID.String() })

	return users, nil
}

type recordingPublisher struct {
	likedEvents   []events.PostLikedEvent
	commentEvents []events.CommentAddedEvent
	invalidated   [][]string
}

func (p *recordingPublisher) PublishPostLiked(event events.PostLikedEvent) error {
	p.likedEvents = append(p.likedEvents, event)
	return nil
}

func (p *recordingPublisher) PublishCommentAdded(event events.CommentAddedEvent) error {
	p.commentEvents = append(p.commentEvents, event)
	return nil
}

func (p *recordingPublisher) InvalidateViews(paths ...string) {
	p.invalidated = append(p.invalidated, paths)
}

func strptr(s string) *string {
	return &s
}
