package post

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeRepo struct {
	posts map[uuid.UUID]*Post
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{posts: map[uuid.UUID]*Post{}}
}

func (f *fakeRepo) Create(ctx context.Context, p *Post) error {
	f.posts[p.ID] = p
	return nil
}
func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	return f.posts[id], nil
}
func (f *fakeRepo) List(ctx context.Context, filter *ListPostsFilter) ([]*PostWithAuthor, error) {
	var out []*PostWithAuthor
	for _, p := range f.posts {
		out = append(out, &PostWithAuthor{Post: *p})
	}
	return out, nil
}
func (f *fakeRepo) Count(ctx context.Context, filter *ListPostsFilter) (int, error) {
	return len(f.posts), nil
}
func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.posts, id)
	return nil
}

func TestCreateAndGetPost(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	authorID := uuid.New()

	created, err := svc.CreatePost(context.Background(), authorID, &CreatePostRequest{
		Title: "Quiet floors in the library?",
		Body:  "Which floor is best for focused work?",
		Tags:  []string{"campus", "study"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.AuthorID != authorID {
		t.Errorf("author = %s, want %s", created.AuthorID, authorID)
	}

	got, err := svc.GetPost(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != created.Title {
		t.Errorf("title = %q, want %q", got.Title, created.Title)
	}
}

func TestGetPostNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.GetPost(context.Background(), uuid.New())
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}

func TestDeletePostAuthorOnly(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	authorID := uuid.New()

	created, err := svc.CreatePost(context.Background(), authorID, &CreatePostRequest{
		Title: "title", Body: "body",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeletePost(context.Background(), uuid.New(), created.ID); !errors.Is(err, ErrNotAuthor) {
		t.Fatalf("err = %v, want ErrNotAuthor", err)
	}
	if _, ok := repo.posts[created.ID]; !ok {
		t.Fatal("post must survive a non-author delete attempt")
	}

	if err := svc.DeletePost(context.Background(), authorID, created.ID); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if _, ok := repo.posts[created.ID]; ok {
		t.Fatal("post must be deleted by its author")
	}
}
