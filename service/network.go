package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Prajwal-sudo-600/AEGIS/model"
	"github.com/Prajwal-sudo-600/AEGIS/repository"
)

// Network lists the community for the network view, excluding admins and
// the viewer, with per-profile follow state.
type Network interface {
	List(ctx context.Context, viewerID *uuid.UUID) []models.NetworkUser
}

type network struct {
	users   repository.UserRepository
	follows repository.FollowRepository
}

func NewNetwork(users repository.UserRepository, follows repository.FollowRepository) Network {
	return &network{
		users:   users,
		follows: follows,
	}
}

// List degrades to an empty slice on store failure, like every read path.
func (s *network) List(ctx context.Context, viewerID *uuid.UUID) []models.NetworkUser {
	profiles, err := s.users.ListNetwork(ctx, viewerID)
	if err != nil {
		log.Printf("Error fetching network users: %v", err)
		return []models.NetworkUser{}
	}

	followingSet := map[uuid.UUID]bool{}
	if viewerID != nil {
		ids, err := s.follows.GetFollowingIDs(ctx, *viewerID)
		if err != nil {
			log.Printf("Error fetching following set: %v", err)
		} else {
			for _, id := range ids {
				followingSet[id] = true
			}
		}
	}

	users := make([]models.NetworkUser, len(profiles))
	for i, profile := range profiles {
		name := "Anonymous Researcher"
		if profile.FullName != nil && *profile.FullName != "" {
			name = *profile.FullName
		}

		role := "Researcher"
		if profile.FieldOfStudy != nil && *profile.FieldOfStudy != "" {
			role = *profile.FieldOfStudy
		} else if profile.Role != nil && *profile.Role != "" {
			role = *profile.Role
		}

		avatar := initials(profile.FullName)
		if profile.AvatarURL != nil && *profile.AvatarURL != "" {
			avatar = *profile.AvatarURL
		}

		users[i] = models.NetworkUser{
			ID:        profile.ID,
			Name:      name,
			Role:      role,
			Avatar:    avatar,
			Following: followingSet[profile.ID],
		}
	}

	return users
}

// initials derives a two-letter avatar placeholder from a display name.
func initials(name *string) string {
	if name == nil || *name == "" {
		return "??"
	}

	var b strings.Builder
	taken := 0
	for _, part := range strings.Fields(*name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
		taken++
		if taken >= 2 {
			break
		}
	}

	if taken == 0 {
		return "??"
	}
	return b.String()
}
