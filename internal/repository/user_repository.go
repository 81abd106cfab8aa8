package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feedapi/internal/apperr"
	"feedapi/internal/models"
)

// uniqueViolation is the Postgres error code raised when the email
// unique constraint rejects an insert.
const uniqueViolation = "23505"

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}
	if user.PostIDs == nil {
		user.PostIDs = pq.StringArray{}
	}

	query := `
		INSERT INTO users (user_id, email, password_hash, name, status, post_ids)
		VALUES (:user_id, :email, :password_hash, :name, :status, :post_ids)
	`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return apperr.Wrap(apperr.Validation, "E-Mail address already exists!", err)
		}
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "User not found.")
		}
		return nil, fmt.Errorf("getting user by id: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "User not found.")
		}
		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) UpdateStatus(ctx context.Context, userID, status string) error {
	query := `UPDATE users SET status = $1 WHERE user_id = $2`

	result, err := r.db.ExecContext(ctx, query, status, userID)
	if err != nil {
		return fmt.Errorf("updating user status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.New(apperr.NotFound, "User not found.")
	}

	return nil
}

// AddPost appends postID to the user's owned-post index. The posts table is
// the source of truth for ownership; this array is a secondary index and a
// concurrent append may lose an entry (last write wins).
func (r *userRepository) AddPost(ctx context.Context, userID, postID string) error {
	query := `UPDATE users SET post_ids = array_append(post_ids, $1) WHERE user_id = $2`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("linking post to user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.New(apperr.NotFound, "User not found.")
	}

	return nil
}

func (r *userRepository) RemovePost(ctx context.Context, userID, postID string) error {
	query := `UPDATE users SET post_ids = array_remove(post_ids, $1) WHERE user_id = $2`

	result, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("unlinking post from user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.New(apperr.NotFound, "User not found.")
	}

	return nil
}
