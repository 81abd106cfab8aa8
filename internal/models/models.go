package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	UserID       string         `json:"_id" db:"user_id"`
	Email        string         `json:"email" db:"email"`
	PasswordHash string         `json:"-" db:"password_hash"`
	Name         string         `json:"name" db:"name"`
	Status       string         `json:"status" db:"status"`
	PostIDs      pq.StringArray `json:"posts" db:"post_ids"`
}

type Post struct {
	PostID    string    `json:"_id" db:"post_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	CreatorID string    `json:"creator" db:"creator_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
