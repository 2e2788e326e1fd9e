package post

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service handles forum post business logic
type Service struct {
	repo Repository
}

// NewService creates post service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreatePost creates a forum post owned by the caller
func (s *Service) CreatePost(ctx context.Context, authorID uuid.UUID, req *CreatePostRequest) (*Post, error) {
	now := time.Now()
	p := &Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     req.Title,
		Body:      req.Body,
		Tags:      req.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// GetPost returns a post by id
func (s *Service) GetPost(ctx context.Context, id uuid.UUID) (*Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// ListPosts returns the forum feed, newest first
func (s *Service) ListPosts(ctx context.Context, filter *ListPostsFilter) ([]*PostWithAuthor, int, error) {
	posts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// DeletePost deletes a post if the caller is its author
func (s *Service) DeletePost(ctx context.Context, callerID, postID uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostNotFound
	}
	if p.AuthorID != callerID {
		return ErrNotAuthor
	}
	return s.repo.Delete(ctx, postID)
}
