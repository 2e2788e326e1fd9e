package moderation

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campusmind/campusmind-api/internal/domain/post"
	"github.com/campusmind/campusmind-api/internal/domain/user"
)

type fakeReportRepo struct {
	reports  map[uuid.UUID]*Report
	countErr error
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: map[uuid.UUID]*Report{}}
}

func (f *fakeReportRepo) CreateReport(ctx context.Context, report *Report) error {
	f.reports[report.ID] = report
	return nil
}
func (f *fakeReportRepo) GetReportByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	return f.reports[id], nil
}
func (f *fakeReportRepo) ListReports(ctx context.Context, filter *ListReportsFilter) ([]*Report, error) {
	var out []*Report
	for _, r := range f.reports {
		if filter != nil && filter.Status != "" && r.Status != filter.Status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
func (f *fakeReportRepo) ListReportsByReporter(ctx context.Context, reporterID uuid.UUID) ([]*Report, error) {
	var out []*Report
	for _, r := range f.reports {
		if r.ReporterID == reporterID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeReportRepo) CountReports(ctx context.Context, filter *ListReportsFilter) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	list, _ := f.ListReports(ctx, filter)
	return len(list), nil
}
func (f *fakeReportRepo) UpdateReportStatus(ctx context.Context, id uuid.UUID, status ReportStatus, adminID uuid.UUID, resolution string) (bool, error) {
	r, ok := f.reports[id]
	if !ok {
		return false, nil
	}
	r.Status = status
	r.AssignedTo = uuid.NullUUID{UUID: adminID, Valid: true}
	r.Resolution = sql.NullString{String: resolution, Valid: resolution != ""}
	if status.IsTerminal() {
		r.ResolvedAt = sql.NullTime{Time: time.Now(), Valid: true}
	} else {
		r.ResolvedAt = sql.NullTime{}
	}
	return true, nil
}

type fakePostRepo struct {
	posts map[uuid.UUID]*post.Post
}

func (f *fakePostRepo) Create(ctx context.Context, p *post.Post) error {
	f.posts[p.ID] = p
	return nil
}
func (f *fakePostRepo) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	return f.posts[id], nil
}
func (f *fakePostRepo) List(ctx context.Context, filter *post.ListPostsFilter) ([]*post.PostWithAuthor, error) {
	return nil, nil
}
func (f *fakePostRepo) Count(ctx context.Context, filter *post.ListPostsFilter) (int, error) {
	return len(f.posts), nil
}
func (f *fakePostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.posts, id)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return nil
}
func (f *fakeUserRepo) SetBanned(ctx context.Context, id uuid.UUID, banned bool) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsBanned = banned
	return nil
}
func (f *fakeUserRepo) TouchLastActive(ctx context.Context, id uuid.UUID) error { return nil }

func newTestService() (*Service, *fakeReportRepo, *fakePostRepo, *fakeUserRepo) {
	repo := newFakeReportRepo()
	posts := &fakePostRepo{posts: map[uuid.UUID]*post.Post{}}
	users := &fakeUserRepo{users: map[uuid.UUID]*user.User{}}
	return NewService(repo, posts, users), repo, posts, users
}

func seedPost(posts *fakePostRepo, title string) *post.Post {
	p := &post.Post{ID: uuid.New(), AuthorID: uuid.New(), Title: title, Body: "body"}
	posts.posts[p.ID] = p
	return p
}

func TestCreateReportStartsPending(t *testing.T) {
	svc, _, posts, users := newTestService()

	p := seedPost(posts, "Late night study spots?")
	reporter := &user.User{ID: uuid.New(), Email: "amina@example.edu", DisplayName: "Amina"}
	users.users[reporter.ID] = reporter

	report, err := svc.CreateReport(context.Background(), reporter.ID, &CreateReportRequest{
		PostID: p.ID,
		Type:   ReportTypeSpam,
		Reason: "advertising an essay mill",
	})
	if err != nil {
		t.Fatalf("create report failed: %v", err)
	}

	if report.Status != ReportStatusPending {
		t.Errorf("status = %q, want %q", report.Status, ReportStatusPending)
	}
	if report.PostTitle != p.Title {
		t.Errorf("post title = %q, want %q", report.PostTitle, p.Title)
	}
	if report.ReporterName != "Amina" {
		t.Errorf("reporter name = %q, want Amina", report.ReporterName)
	}
	if report.AssignedTo.Valid || report.Resolution.Valid || report.ResolvedAt.Valid {
		t.Error("new report must have no assignee, resolution or resolved time")
	}
}

func TestCreateReportUnknownPost(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateReport(context.Background(), uuid.New(), &CreateReportRequest{
		PostID: uuid.New(),
		Type:   ReportTypeSpam,
		Reason: "spam",
	})
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}

func TestUpdateStatusLifecycle(t *testing.T) {
	svc, repo, posts, _ := newTestService()
	p := seedPost(posts, "post")

	report, err := svc.CreateReport(context.Background(), uuid.New(), &CreateReportRequest{
		PostID: p.ID,
		Type:   ReportTypeHarassment,
		Reason: "targeted insults in comments",
	})
	if err != nil {
		t.Fatalf("create report failed: %v", err)
	}

	adminID := uuid.New()

	ok, err := svc.UpdateStatus(context.Background(), report.ID, ReportStatusReviewing, adminID, "")
	if err != nil || !ok {
		t.Fatalf("reviewing transition: ok=%v err=%v", ok, err)
	}
	stored := repo.reports[report.ID]
	if stored.Status != ReportStatusReviewing {
		t.Errorf("status = %q, want reviewing", stored.Status)
	}
	if !stored.AssignedTo.Valid || stored.AssignedTo.UUID != adminID {
		t.Error("reviewing must record the acting admin")
	}
	if stored.ResolvedAt.Valid {
		t.Error("non-terminal status must not set resolved time")
	}

	ok, err = svc.UpdateStatus(context.Background(), report.ID, ReportStatusResolved, adminID, "post removed")
	if err != nil || !ok {
		t.Fatalf("resolved transition: ok=%v err=%v", ok, err)
	}
	if stored.Status != ReportStatusResolved {
		t.Errorf("status = %q, want resolved", stored.Status)
	}
	if !stored.Resolution.Valid || stored.Resolution.String != "post removed" {
		t.Errorf("resolution = %+v, want post removed", stored.Resolution)
	}
	if !stored.ResolvedAt.Valid {
		t.Error("terminal status must set resolved time")
	}
}

func TestUpdateStatusFastPath(t *testing.T) {
	// pending -> dismissed directly, skipping reviewing
	svc, repo, posts, _ := newTestService()
	p := seedPost(posts, "post")

	report, _ := svc.CreateReport(context.Background(), uuid.New(), &CreateReportRequest{
		PostID: p.ID,
		Type:   ReportTypeOther,
		Reason: "disagreement, not a violation",
	})

	ok, err := svc.UpdateStatus(context.Background(), report.ID, ReportStatusDismissed, uuid.New(), "no rule broken")
	if err != nil || !ok {
		t.Fatalf("dismiss fast path: ok=%v err=%v", ok, err)
	}
	if repo.reports[report.ID].Status != ReportStatusDismissed {
		t.Errorf("status = %q, want dismissed", repo.reports[report.ID].Status)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	ok, err := svc.UpdateStatus(context.Background(), uuid.New(), ReportStatusResolved, uuid.New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for unknown report")
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), ReportStatus("escalated"), uuid.New(), "")
	if !errors.Is(err, ErrInvalidReportStatus) {
		t.Fatalf("err = %v, want ErrInvalidReportStatus", err)
	}
}

func TestUpdateStatusLastWriteWins(t *testing.T) {
	// Two admins acting on the same report: the second write overwrites
	// the first, including the terminal state.
	svc, repo, posts, _ := newTestService()
	p := seedPost(posts, "post")

	report, _ := svc.CreateReport(context.Background(), uuid.New(), &CreateReportRequest{
		PostID: p.ID,
		Type:   ReportTypeInappropriate,
		Reason: "graphic content",
	})

	first := uuid.New()
	second := uuid.New()

	if ok, err := svc.UpdateStatus(context.Background(), report.ID, ReportStatusResolved, first, "removed"); err != nil || !ok {
		t.Fatalf("first admin: ok=%v err=%v", ok, err)
	}
	if ok, err := svc.UpdateStatus(context.Background(), report.ID, ReportStatusDismissed, second, "restored on appeal"); err != nil || !ok {
		t.Fatalf("second admin: ok=%v err=%v", ok, err)
	}

	stored := repo.reports[report.ID]
	if stored.Status != ReportStatusDismissed {
		t.Errorf("status = %q, want dismissed", stored.Status)
	}
	if stored.AssignedTo.UUID != second {
		t.Error("second admin's write must win")
	}
	if stored.Resolution.String != "restored on appeal" {
		t.Errorf("resolution = %q, want the second admin's note", stored.Resolution.String)
	}
}
