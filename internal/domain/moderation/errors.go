package moderation

import "errors"

var (
	ErrReportNotFound      = errors.New("report not found")
	ErrPostNotFound        = errors.New("reported post not found")
	ErrInvalidReportStatus = errors.New("invalid report status")
)
