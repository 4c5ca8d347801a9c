// Package models contains data structures for the application's domain models.
package models

import "time"

// Comment represents a reader comment on a post. Comments are never
// updated after creation, only deleted.
type Comment struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	PostID    uint      `json:"post_id"`
	AuthorID  uint      `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}
