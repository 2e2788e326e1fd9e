package moderation

import "github.com/google/uuid"

// CreateReportRequest represents request to report a post
type CreateReportRequest struct {
	PostID uuid.UUID  `json:"post_id" validate:"required"`
	Type   ReportType `json:"type" validate:"required,report_type"`
	Reason string     `json:"reason" validate:"required,min=1,max=1000"`
}

// UpdateStatusRequest represents an admin moving a report through its
// lifecycle. Resolution is optional and typically set on terminal
// transitions.
type UpdateStatusRequest struct {
	Status     ReportStatus `json:"status" validate:"required,report_status"`
	Resolution string       `json:"resolution,omitempty" validate:"max=1000"`
}

// ListReportsFilter for filtering reports in the moderation queue.
// An empty Status means all statuses.
type ListReportsFilter struct {
	Status ReportStatus `json:"status,omitempty"`
	Limit  int          `json:"limit,omitempty"`
	Offset int          `json:"offset,omitempty"`
}
