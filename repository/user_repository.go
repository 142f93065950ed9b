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

type UserRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	Update(ctx context.Context, userID uuid.UUID, input *models.UpdateUserInput) (*models.User, error)
	UpdateAvatarURL(ctx context.Context, userID uuid.UUID, avatarURL string) error
	ListNetwork(ctx context.Context, excludeID *uuid.UUID) ([]models.User, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, full_name, handle, university, bio, role, field_of_study, avatar_url, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("profile")
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &user, nil
}

// Update applies a partial profile update. Nil input fields are left alone.
func (r *userRepository) Update(ctx context.Context, userID uuid.UUID, input *models.UpdateUserInput) (*models.User, error) {
	query := "UPDATE profiles SET updated_at = NOW()"
	args := []interface{}{}
	argCount := 1

	if input.FullName != nil {
		query += fmt.Sprintf(", full_name = $%d", argCount)
		args = append(args, *input.FullName)
		argCount++
	}

	if input.Handle != nil {
		query += fmt.Sprintf(", handle = $%d", argCount)
		args = append(args, *input.Handle)
		argCount++
	}

	if input.University != nil {
		query += fmt.Sprintf(", university = $%d", argCount)
		args = append(args, *input.University)
		argCount++
	}

	if input.Bio != nil {
		query += fmt.Sprintf(", bio = $%d", argCount)
		args = append(args, *input.Bio)
		argCount++
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING id, full_name, handle, university, bio, role, field_of_study, avatar_url, created_at, updated_at", argCount)
	args = append(args, userID)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("profile")
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &user, nil
}

func (r *userRepository) UpdateAvatarURL(ctx context.Context, userID uuid.UUID, avatarURL string) error {
	query := `UPDATE profiles SET avatar_url = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, avatarURL, userID)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperror.NotFound("profile")
	}

	return nil
}

// ListNetwork returns every profile except admins and, when set, the
// excluded (viewing) user.
func (r *userRepository) ListNetwork(ctx context.Context, excludeID *uuid.UUID) ([]models.User, error) {
	query := `
		SELECT id, full_name, handle, university, bio, role, field_of_study, avatar_url, created_at, updated_at
		FROM profiles
		WHERE (role IS NULL OR role <> 'admin')
	`

	args := []interface{}{}
	if excludeID != nil {
		query += " AND id <> $1"
		args = append(args, *excludeID)
	}

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list network users: %w", err)
	}

	return users, nil
}
