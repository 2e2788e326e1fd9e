package wellness

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Service handles wellness tracking business logic
type Service struct {
	repo Repository
}

// NewService creates wellness service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RecordMood stores one mood entry for the caller
func (s *Service) RecordMood(ctx context.Context, userID uuid.UUID, req *RecordMoodRequest) (*MoodEntry, error) {
	if req.Score < 1 || req.Score > 5 {
		return nil, ErrScoreOutOfRange
	}

	entry := &MoodEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Score:     req.Score,
		Note:      nullString(req.Note),
		Tags:      req.Tags,
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateMoodEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// RecordStress stores one stress entry for the caller
func (s *Service) RecordStress(ctx context.Context, userID uuid.UUID, req *RecordStressRequest) (*StressEntry, error) {
	if req.Level < 1 || req.Level > 5 {
		return nil, ErrScoreOutOfRange
	}

	entry := &StressEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Level:      req.Level,
		Triggers:   req.Triggers,
		Symptoms:   req.Symptoms,
		CopingUsed: req.CopingUsed,
		Notes:      nullString(req.Notes),
		CreatedAt:  time.Now(),
	}

	if err := s.repo.CreateStressEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// RecordSleep stores one sleep entry for the caller
func (s *Service) RecordSleep(ctx context.Context, userID uuid.UUID, req *RecordSleepRequest) (*SleepEntry, error) {
	if req.Quality < 1 || req.Quality > 5 {
		return nil, ErrScoreOutOfRange
	}
	if req.BedTime == "" || req.WakeTime == "" {
		return nil, ErrMissingBedTimes
	}

	entry := &SleepEntry{
		ID:         uuid.New(),
		UserID:     userID,
		HoursSlept: req.HoursSlept,
		BedTime:    req.BedTime,
		WakeTime:   req.WakeTime,
		Quality:    req.Quality,
		Notes:      nullString(req.Notes),
		CreatedAt:  time.Now(),
	}

	if err := s.repo.CreateSleepEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// RecordSocial stores one social connection entry for the caller
func (s *Service) RecordSocial(ctx context.Context, userID uuid.UUID, req *RecordSocialRequest) (*SocialEntry, error) {
	if req.ConnectionQuality < 1 || req.ConnectionQuality > 5 {
		return nil, ErrScoreOutOfRange
	}

	entry := &SocialEntry{
		ID:                uuid.New(),
		UserID:            userID,
		ConnectionQuality: req.ConnectionQuality,
		InteractionTypes:  req.InteractionTypes,
		Feelings:          req.Feelings,
		Notes:             nullString(req.Notes),
		CreatedAt:         time.Now(),
	}

	if err := s.repo.CreateSocialEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetInsights computes aggregate insights from the caller's entries,
// optionally bounded to a trailing window. Aggregates are recomputed on
// every call; there is no caching layer.
func (s *Service) GetInsights(ctx context.Context, userID uuid.UUID, window InsightsWindow) (*Insights, error) {
	moods, err := s.repo.ListMoodEntries(ctx, userID, window.Since)
	if err != nil {
		return nil, err
	}
	stresses, err := s.repo.ListStressEntries(ctx, userID, window.Since)
	if err != nil {
		return nil, err
	}
	sleeps, err := s.repo.ListSleepEntries(ctx, userID, window.Since)
	if err != nil {
		return nil, err
	}
	socials, err := s.repo.ListSocialEntries(ctx, userID, window.Since)
	if err != nil {
		return nil, err
	}

	return computeInsights(moods, stresses, sleeps, socials), nil
}

// ListMoodHistory returns the caller's mood entries, oldest first
func (s *Service) ListMoodHistory(ctx context.Context, userID uuid.UUID, window InsightsWindow) ([]*MoodEntry, error) {
	return s.repo.ListMoodEntries(ctx, userID, window.Since)
}

// ListStressHistory returns the caller's stress entries, oldest first
func (s *Service) ListStressHistory(ctx context.Context, userID uuid.UUID, window InsightsWindow) ([]*StressEntry, error) {
	return s.repo.ListStressEntries(ctx, userID, window.Since)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
