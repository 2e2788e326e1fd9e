package moderation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campusmind/campusmind-api/internal/domain/post"
	"github.com/campusmind/campusmind-api/internal/domain/user"
)

// Service handles moderation business logic
type Service struct {
	repo     Repository
	postRepo post.Repository
	userRepo user.Repository
}

// NewService creates moderation service
func NewService(repo Repository, postRepo post.Repository, userRepo user.Repository) *Service {
	return &Service{
		repo:     repo,
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreateReport files a report against a post
func (s *Service) CreateReport(ctx context.Context, reporterID uuid.UUID, req *CreateReportRequest) (*Report, error) {
	p, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}

	reporterName := ""
	if reporter, err := s.userRepo.GetByID(ctx, reporterID); err == nil && reporter != nil {
		reporterName = reporter.DisplayName
	}

	report := &Report{
		ID:           uuid.New(),
		PostID:       p.ID,
		PostTitle:    p.Title,
		ReporterID:   reporterID,
		ReporterName: reporterName,
		Type:         req.Type,
		Reason:       req.Reason,
		Status:       ReportStatusPending,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// ListMyReports returns reports created by the user
func (s *Service) ListMyReports(ctx context.Context, userID uuid.UUID) ([]*Report, error) {
	return s.repo.ListReportsByReporter(ctx, userID)
}

// ListReports returns the moderation queue (admin function)
func (s *Service) ListReports(ctx context.Context, filter *ListReportsFilter) ([]*Report, error) {
	return s.repo.ListReports(ctx, filter)
}

// GetReport returns a specific report (admin function)
func (s *Service) GetReport(ctx context.Context, id uuid.UUID) (*Report, error) {
	report, err := s.repo.GetReportByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// UpdateStatus moves a report through its lifecycle. It returns false
// (with a nil error) when the report does not exist. Any status value
// from the enum is accepted for any current status: the fast path
// pending -> resolved/dismissed is allowed, and terminal states are not
// guarded against overwrite; a second admin's update wins.
func (s *Service) UpdateStatus(ctx context.Context, reportID uuid.UUID, status ReportStatus, adminID uuid.UUID, resolution string) (bool, error) {
	switch status {
	case ReportStatusPending, ReportStatusReviewing, ReportStatusResolved, ReportStatusDismissed:
	default:
		return false, ErrInvalidReportStatus
	}

	return s.repo.UpdateReportStatus(ctx, reportID, status, adminID, resolution)
}

// CountReports returns total report count for the filter (admin function)
func (s *Service) CountReports(ctx context.Context, filter *ListReportsFilter) (int, error) {
	return s.repo.CountReports(ctx, filter)
}
