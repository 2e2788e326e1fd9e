package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines post data access interface
type Repository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	List(ctx context.Context, filter *ListPostsFilter) ([]*PostWithAuthor, error)
	Count(ctx context.Context, filter *ListPostsFilter) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new post repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, post *Post) error {
	query := `
		INSERT INTO posts (id, author_id, title, body, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID,
		post.AuthorID,
		post.Title,
		post.Body,
		post.Tags,
		post.CreatedAt,
		post.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	query := `SELECT * FROM posts WHERE id = $1`
	var post Post
	err := r.db.GetContext(ctx, &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *repository) List(ctx context.Context, filter *ListPostsFilter) ([]*PostWithAuthor, error) {
	query := `
		SELECT p.*, u.display_name AS author_name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if filter != nil && filter.Tag != "" {
		query += fmt.Sprintf(` AND $%d = ANY(p.tags)`, argPos)
		args = append(args, filter.Tag)
		argPos++
	}

	query += ` ORDER BY p.created_at DESC`

	limit := 20
	offset := 0
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		if filter.Offset > 0 {
			offset = filter.Offset
		}
	}
	query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, limit, offset)

	var posts []*PostWithAuthor
	err := r.db.SelectContext(ctx, &posts, query, args...)
	return posts, err
}

func (r *repository) Count(ctx context.Context, filter *ListPostsFilter) (int, error) {
	query := `SELECT COUNT(*) FROM posts WHERE 1=1`
	args := []interface{}{}

	if filter != nil && filter.Tag != "" {
		query += ` AND $1 = ANY(tags)`
		args = append(args, filter.Tag)
	}

	var count int
	err := r.db.GetContext(ctx, &count, query, args...)
	return count, err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM posts WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPostNotFound
	}
	return nil
}
