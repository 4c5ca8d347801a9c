// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a published blog post.
//
// Likes is a derived counter: it always equals the number of identities
// recorded against this post in the like ledger. The post repository keeps
// the two in sync; nothing else writes Likes.
type Post struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uint      `json:"author_id"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// PostUpdate is a partial field set merged into an existing post.
// Nil fields are left untouched.
type PostUpdate struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Category *string   `json:"category"`
	Tags     *[]string `json:"tags"`
}
