package wellness

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines wellness entry data access. All reads are
// owner-scoped and ordered oldest-first so that aggregate computations
// see entries in chronological order.
type Repository interface {
	CreateMoodEntry(ctx context.Context, entry *MoodEntry) error
	CreateStressEntry(ctx context.Context, entry *StressEntry) error
	CreateSleepEntry(ctx context.Context, entry *SleepEntry) error
	CreateSocialEntry(ctx context.Context, entry *SocialEntry) error

	ListMoodEntries(ctx context.Context, userID uuid.UUID, since time.Time) ([]*MoodEntry, error)
	ListStressEntries(ctx context.Context, userID uuid.UUID, since time.Time) ([]*StressEntry, error)
	ListSleepEntries(ctx context.Context, userID uuid.UUID, since time.Time) ([]*SleepEntry, error)
	ListSocialEntries(ctx context.Context, userID uuid.UUID, since time.Time) ([]*SocialEntry, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new wellness repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateMoodEntry(ctx context.Context, entry *MoodEntry) error {
	query := `
		INSERT INTO mood_entries (id, user_id, score, note, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Score,
		entry.Note,
		entry.Tags,
		entry.CreatedAt,
	)
	return err
}

func (r *repository) CreateStressEntry(ctx context.Context, entry *StressEntry) error {
	query := `
		INSERT INTO stress_entries (id, user_id, level, triggers, symptoms, coping_used, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Level,
		entry.Triggers,
		entry.Symptoms,
		entry.CopingUsed,
		entry.Notes,
		entry.CreatedAt,
	)
	return err
}

func (r *repository) CreateSleepEntry(ctx context.Context, entry *SleepEntry) error {
	query := `
		INSERT INTO sleep_entries (id, user_id, hours_slept, bed_time, wake_time, quality, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.HoursSlept,
		entry.BedTime,
		entry.WakeTime,
		entry.Quality,
		entry.Notes,
		entry.CreatedAt,
	)
	return err
}

func (r *repository) CreateSocialEntry(ctx context.Context, entry *SocialEntry) error {
	query := `
		INSERT INTO social_entries (id, user_id, connection_quality, interaction_types, feelings, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.ConnectionQuality,
		entry.InteractionTypes,
		entry.Feelings,
		entry.Notes,
		entry.CreatedAt,
	)
	return err
}

func (r *repository) ListMoodEntries(ctx context.Context, userID uuid.UUID, since time.Time) ([]*MoodEntry, error) {
	query := `
		SELECT * FROM mood_entries
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`
	var entries []*MoodEntry
	err := r.db.SelectContext(ctx, &entries, query, userID, since)
	return entries, err
}

func (r *repository) ListStressEntries(ctx context.Context, userID uuid.UUID, since time.Time) ([]*StressEntry, error) {
	query := `
		SELECT * FROM stress_entries
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`
	var entries []*StressEntry
	err := r.db.SelectContext(ctx, &entries, query, userID, since)
	return entries, err
}

func (r *repository) ListSleepEntries(ctx context.Context, userID uuid.UUID, since time.Time) ([]*SleepEntry, error) {
	query := `
		SELECT * FROM sleep_entries
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`
	var entries []*SleepEntry
	err := r.db.SelectContext(ctx, &entries, query, userID, since)
	return entries, err
}

func (r *repository) ListSocialEntries(ctx context.Context, userID uuid.UUID, since time.Time) ([]*SocialEntry, error) {
	query := `
		SELECT * FROM social_entries
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`
	var entries []*SocialEntry
	err := r.db.SelectContext(ctx, &entries, query, userID, since)
	return entries, err
}
