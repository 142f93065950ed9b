package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prajwal-sudo-600/AEGIS/model"
)

func TestNetwork_List(t *testing.T) {
	ctx := context.Background()
	viewer := uuid.New()
	alice := uuid.New()
	bob := uuid.New()
	admin := uuid.New()

	setup := func() (*mockUserRepo, *mockFollowRepo) {
		users := newMockUserRepo()
		users.users[viewer] = &models.User{ID: viewer, FullName: strptr("The Viewer")}
		users.users[alice] = &models.User{
			ID:           alice,
			FullName:     strptr("Alice Chen"),
			FieldOfStudy: strptr("Quantum Computing"),
			AvatarURL:    strptr("https://cdn/a.png"),
		}
		users.users[bob] = &models.User{ID: bob, FullName: strptr("Bob Okafor"), Role: strptr("student")}
		users.users[admin] = &models.User{ID: admin, FullName: strptr("Root"), Role: strptr("admin")}
		return users, newMockFollowRepo()
	}

	t.Run("excludes admins and the viewer", func(t *testing.T) {
		users, follows := setup()
		network := NewNetwork(users, follows)

		result := network.List(ctx, &viewer)
		require.Len(t, result, 2)
		for _, u := range result {
			assert.NotEqual(t, viewer, u.ID)
			assert.NotEqual(t, admin, u.ID)
		}
	})

	t.Run("anonymous viewer sees everyone but admins, with no follow state", func(t *testing.T) {
		users, follows := setup()
		follows.edges[edge{viewer, alice}] = true
		network := NewNetwork(users, follows)

		result := network.List(ctx, nil)
		require.Len(t, result, 3)
		for _, u := range result {
			assert.False(t, u.Following)
		}
	})

	t.Run("follow state reflects the viewer's edges", func(t *testing.T) {
		users, follows := setup()
		follows.edges[edge{viewer, alice}] = true
		network := NewNetwork(users, follows)

		result := network.List(ctx, &viewer)
		byID := map[uuid.UUID]models.NetworkUser{}
		for _, u := range result {
			byID[u.ID] = u
		}
		assert.True(t, byID[alice].Following)
		assert.False(t, byID[bob].Following)
	})

	t.Run("field of study wins over role for the display role", func(t *testing.T) {
		users, follows := setup()
		network := NewNetwork(users, follows)

		result := network.List(ctx, &viewer)
		byID := map[uuid.UUID]models.NetworkUser{}
		for _, u := range result {
			byID[u.ID] = u
		}
		assert.Equal(t, "Quantum Computing", byID[alice].Role)
		assert.Equal(t, "student", byID[bob].Role)
		assert.Equal(t, "https://cdn/a.png", byID[alice].Avatar)
		assert.Equal(t, "BO", byID[bob].Avatar)
	})

	t.Run("empty profile gets full fallbacks", func(t *testing.T) {
		users := newMockUserRepo()
		ghost := uuid.New()
		users.users[ghost] = &models.User{ID: ghost}
		network := NewNetwork(users, newMockFollowRepo())

		result := network.List(ctx, nil)
		require.Len(t, result, 1)
		assert.Equal(t, "Anonymous Researcher", result[0].Name)
		assert.Equal(t, "Researcher", result[0].Role)
		assert.Equal(t, "??", result[0].Avatar)
	})

	t.Run("store failure degrades to empty list", func(t *testing.T) {
		users, follows := setup()
		users.err = errors.New("connection refused")
		network := NewNetwork(users, follows)

		result := network.List(ctx, &viewer)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want string
	}{
		{"nil name", nil, "??"},
		{"empty name", strptr(""), "??"},
		{"single word", strptr("Alice"), "A"},
		{"two words", strptr("Alice Chen"), "AC"},
		{"three words stop at two", strptr("Alice Beth Chen"), "AB"},
		{"lowercase is uppercased", strptr("alice chen"), "AC"},
		{"multibyte rune", strptr("Łukasz Nowak"), "ŁN"},
		{"whitespace only", strptr("   "), "??"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, initials(tt.in))
		})
	}
}
