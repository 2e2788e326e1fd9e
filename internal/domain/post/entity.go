package post

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Post represents a community forum post
type Post struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	AuthorID  uuid.UUID      `db:"author_id" json:"author_id"`
	Title     string         `db:"title" json:"title"`
	Body      string         `db:"body" json:"body"`
	Tags      pq.StringArray `db:"tags" json:"tags"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// PostWithAuthor is a post joined with its author's display name
type PostWithAuthor struct {
	Post
	AuthorName string `db:"author_name" json:"author_name"`
}
