package moderation

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// ReportType represents the category of a report
type ReportType string

const (
	ReportTypeSpam          ReportType = "spam"
	ReportTypeHarassment    ReportType = "harassment"
	ReportTypeInappropriate ReportType = "inappropriate"
	ReportTypeOffTopic      ReportType = "off_topic"
	ReportTypeOther         ReportType = "other"
)

// ReportStatus represents the status of a report.
// pending -> reviewing -> resolved/dismissed is the normal path;
// pending may also jump straight to a terminal status.
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusReviewing ReportStatus = "reviewing"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// IsTerminal reports whether no further transition is expected from s
func (s ReportStatus) IsTerminal() bool {
	return s == ReportStatusResolved || s == ReportStatusDismissed
}

// Report represents a user-submitted flag against a community post.
// Post title and reporter name are denormalized at creation time so the
// moderation queue stays readable even if the post is later deleted.
type Report struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	PostID       uuid.UUID      `db:"post_id" json:"post_id"`
	PostTitle    string         `db:"post_title" json:"post_title"`
	ReporterID   uuid.UUID      `db:"reporter_id" json:"reporter_id"`
	ReporterName string         `db:"reporter_name" json:"reporter_name"`
	Type         ReportType     `db:"type" json:"type"`
	Reason       string         `db:"reason" json:"reason"`
	Status       ReportStatus   `db:"status" json:"status"`
	AssignedTo   uuid.NullUUID  `db:"assigned_to" json:"assigned_to,omitempty"`
	Resolution   sql.NullString `db:"resolution" json:"resolution,omitempty"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	ResolvedAt   sql.NullTime   `db:"resolved_at" json:"resolved_at,omitempty"`
}
