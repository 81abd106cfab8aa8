package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"feedapi/internal/apperr"
	"feedapi/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
		INSERT INTO posts (post_id, title, content, image_url, creator_id, created_at, updated_at)
		VALUES (:post_id, :title, :content, :image_url, :creator_id, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("creating post: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "Could not find post.")
		}
		return nil, fmt.Errorf("getting post: %w", err)
	}

	return &post, nil
}

// List returns posts in creation order; post_id breaks ties so the order is
// stable across pages.
func (r *postRepository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	query := `
		SELECT * FROM posts
		ORDER BY created_at, post_id
		LIMIT $1 OFFSET $2
	`

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Count(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("counting posts: %w", err)
	}

	return count, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	post.UpdatedAt = time.Now()

	query := `
		UPDATE posts SET
			title = :title,
			content = :content,
			image_url = :image_url,
			updated_at = :updated_at
		WHERE post_id = :post_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("updating post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.New(apperr.NotFound, "Could not find post.")
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.New(apperr.NotFound, "Could not find post.")
	}

	return nil
}
