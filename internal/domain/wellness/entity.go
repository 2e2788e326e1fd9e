package wellness

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MoodEntry is a single mood check-in. Entries are append-only: once
// stored they are never updated or deleted.
type MoodEntry struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	UserID    uuid.UUID      `db:"user_id" json:"user_id"`
	Score     int            `db:"score" json:"score"` // 1-5
	Note      sql.NullString `db:"note" json:"note,omitempty"`
	Tags      pq.StringArray `db:"tags" json:"tags"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

// StressEntry records a stress level together with what triggered it,
// how it manifested and what the user did about it.
type StressEntry struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	UserID     uuid.UUID      `db:"user_id" json:"user_id"`
	Level      int            `db:"level" json:"level"` // 1-5
	Triggers   pq.StringArray `db:"triggers" json:"triggers"`
	Symptoms   pq.StringArray `db:"symptoms" json:"symptoms"`
	CopingUsed pq.StringArray `db:"coping_used" json:"coping_used"`
	Notes      sql.NullString `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

// SleepEntry records one night of sleep
type SleepEntry struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	UserID     uuid.UUID      `db:"user_id" json:"user_id"`
	HoursSlept float64        `db:"hours_slept" json:"hours_slept"`
	BedTime    string         `db:"bed_time" json:"bed_time"`   // "22:30"
	WakeTime   string         `db:"wake_time" json:"wake_time"` // "07:00"
	Quality    int            `db:"quality" json:"quality"`     // 1-5
	Notes      sql.NullString `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

// SocialEntry records a social connection check-in
type SocialEntry struct {
	ID                uuid.UUID      `db:"id" json:"id"`
	UserID            uuid.UUID      `db:"user_id" json:"user_id"`
	ConnectionQuality int            `db:"connection_quality" json:"connection_quality"` // 1-5
	InteractionTypes  pq.StringArray `db:"interaction_types" json:"interaction_types"`
	Feelings          pq.StringArray `db:"feelings" json:"feelings"`
	Notes             sql.NullString `db:"notes" json:"notes,omitempty"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
}
