package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Prajwal-sudo-600/AEGIS/apperror"
	"github.com/Prajwal-sudo-600/AEGIS/model"
	"github.com/Prajwal-sudo-600/AEGIS/repository"
	"github.com/Prajwal-sudo-600/AEGIS/storage"
)

// MaxUploadSize is the application-enforced cap on avatar and post image
// uploads. The object store itself accepts larger files.
const MaxUploadSize = 5 * 1024 * 1024

// Profile reads and mutates user profiles. Mutation is owner-only by
// construction: the actor's identity selects the row.
type Profile interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, actor uuid.UUID, input *models.UpdateUserInput) (*models.User, error)
	UploadAvatar(ctx context.Context, actor uuid.UUID, filename string, size int64, body io.Reader) (string, error)
	UploadPostImage(ctx context.Context, filename string, size int64, body io.Reader) (string, error)
}

type profile struct {
	users        repository.UserRepository
	graph        SocialGraph
	store        storage.ObjectStore
	avatarBucket string
	postBucket   string
	invalidator  ViewInvalidator
}

func NewProfile(
	users repository.UserRepository,
	graph SocialGraph,
	store storage.ObjectStore,
	avatarBucket, postBucket string,
	invalidator ViewInvalidator,
) Profile {
	return &profile{
		users:        users,
		graph:        graph,
		store:        store,
		avatarBucket: avatarBucket,
		postBucket:   postBucket,
		invalidator:  invalidator,
	}
}

// Get returns the profile row plus exact follower/following counts.
func (s *profile) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, storeErr("get profile", err)
	}

	counts, err := s.graph.Counts(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.Profile{
		User: *user,
		Stats: models.ProfileStats{
			Followers: counts.FollowersCount,
			Following: counts.FollowingCount,
		},
	}, nil
}

func (s *profile) Update(ctx context.Context, actor uuid.UUID, input *models.UpdateUserInput) (*models.User, error) {
	user, err := s.users.Update(ctx, actor, input)
	if err != nil {
		return nil, storeErr("update profile", err)
	}

	s.invalidator.InvalidateViews(ViewProfile + actor.String())

	return user, nil
}

// UploadAvatar stores the avatar at <userID>/avatar.<ext>, overwriting any
// previous one, and writes the public URL to the profile.
func (s *profile) UploadAvatar(ctx context.Context, actor uuid.UUID, filename string, size int64, body io.Reader) (string, error) {
	if size > MaxUploadSize {
		return "", apperror.Validation("image is too large, please select a smaller image (under 5MB)")
	}

	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "png"
	}

	path := fmt.Sprintf("%s/avatar.%s", actor.String(), ext)
	url, err := s.store.Put(ctx, s.avatarBucket, path, contentTypeFor(ext), size, body)
	if err != nil {
		return "", storeErr("upload avatar", err)
	}

	if err := s.users.UpdateAvatarURL(ctx, actor, url); err != nil {
		return "", storeErr("update profile avatar", err)
	}

	s.invalidator.InvalidateViews(ViewProfile + actor.String())

	return url, nil
}

// UploadPostImage stores a post image under a random name in the post
// bucket and returns its public URL.
func (s *profile) UploadPostImage(ctx context.Context, filename string, size int64, body io.Reader) (string, error) {
	if size > MaxUploadSize {
		return "", apperror.Validation("image is too large, please select a smaller image (under 5MB)")
	}

	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "png"
	}

	path := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	url, err := s.store.Put(ctx, s.postBucket, path, contentTypeFor(ext), size, body)
	if err != nil {
		return "", storeErr("upload post image", err)
	}

	return url, nil
}

func contentTypeFor(ext string) string {
	if t := mime.TypeByExtension("." + ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
