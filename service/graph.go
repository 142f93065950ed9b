package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Prajwal-sudo-600/AEGIS/apperror"
	"github.com/Prajwal-sudo-600/AEGIS/model"
	"github.com/Prajwal-sudo-600/AEGIS/repository"
)

// SocialGraph maintains the directed follow-relationship set.
type SocialGraph interface {
	ToggleFollow(ctx context.Context, actor, target uuid.UUID) (bool, error)
	IsFollowing(ctx context.Context, follower, followed uuid.UUID) (bool, error)
	Counts(ctx context.Context, userID uuid.UUID) (*models.UserFollowCounts, error)
}

type socialGraph struct {
	follows     repository.FollowRepository
	invalidator ViewInvalidator
}

func NewSocialGraph(follows repository.FollowRepository, invalidator ViewInvalidator) SocialGraph {
	return &socialGraph{
		follows:     follows,
		invalidator: invalidator,
	}
}

// ToggleFollow flips the follow edge (actor, target) and reports the new
// state. Check-then-act: a concurrent toggle on the same pair may win the
// race, but the unique constraint on the edge table keeps the set consistent
// either way.
func (s *socialGraph) ToggleFollow(ctx context.Context, actor, target uuid.UUID) (bool, error) {
	if actor == target {
		return false, apperror.SelfFollow()
	}

	following, err := s.follows.IsFollowing(ctx, actor, target)
	if err != nil {
		return false, storeErr("check follow status", err)
	}

	if following {
		if err := s.follows.UnfollowUser(ctx, actor, target); err != nil {
			return false, storeErr("unfollow user", err)
		}
	} else {
		if err := s.follows.FollowUser(ctx, actor, target); err != nil {
			return false, storeErr("follow user", err)
		}
	}

	s.invalidator.InvalidateViews(
		ViewNetwork,
		ViewProfile+actor.String(),
		ViewProfile+target.String(),
	)

	return !following, nil
}

func (s *socialGraph) IsFollowing(ctx context.Context, follower, followed uuid.UUID) (bool, error) {
	following, err := s.follows.IsFollowing(ctx, follower, followed)
	if err != nil {
		return false, storeErr("check follow status", err)
	}
	return following, nil
}

// Counts returns exact follower/following cardinalities, computed from the
// edge set on every call.
func (s *socialGraph) Counts(ctx context.Context, userID uuid.UUID) (*models.UserFollowCounts, error) {
	followers, err := s.follows.GetFollowersCount(ctx, userID)
	if err != nil {
		return nil, storeErr("count followers", err)
	}

	following, err := s.follows.GetFollowingCount(ctx, userID)
	if err != nil {
		return nil, storeErr("count following", err)
	}

	return &models.UserFollowCounts{
		UserID:         userID,
		FollowersCount: followers,
		FollowingCount: following,
	}, nil
}
