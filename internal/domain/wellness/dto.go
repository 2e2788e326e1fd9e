package wellness

import "time"

// RecordMoodRequest for POST /wellness/mood
type RecordMoodRequest struct {
	Score int      `json:"score" validate:"required,gte=1,lte=5"`
	Note  string   `json:"note,omitempty" validate:"max=2000"`
	Tags  []string `json:"tags,omitempty" validate:"omitempty,max=10,dive,min=1,max=60"`
}

// RecordStressRequest for POST /wellness/stress
type RecordStressRequest struct {
	Level      int      `json:"level" validate:"required,gte=1,lte=5"`
	Triggers   []string `json:"triggers,omitempty" validate:"omitempty,max=10,dive,min=1,max=60"`
	Symptoms   []string `json:"symptoms,omitempty" validate:"omitempty,max=10,dive,min=1,max=60"`
	CopingUsed []string `json:"coping_used,omitempty" validate:"omitempty,max=10,dive,min=1,max=60"`
	Notes      string   `json:"notes,omitempty" validate:"max=2000"`
}

// RecordSleepRequest for POST /wellness/sleep.
// Bed and wake times are required server-side for sleep entries.
type RecordSleepRequest struct {
	HoursSlept float64 `json:"hours_slept" validate:"required,gt=0,lte=24"`
	BedTime    string  `json:"bed_time" validate:"required,min=4,max=5"`
	WakeTime   string  `json:"wake_time" validate:"required,min=4,max=5"`
	Quality    int     `json:"quality" validate:"required,gte=1,lte=5"`
	Notes      string  `json:"notes,omitempty" validate:"max=2000"`
}

// RecordSocialRequest for POST /wellness/social.
// The UI asks for interaction types and feelings, but that is a
// client-side rule; like the other list fields they are optional here.
type RecordSocialRequest struct {
	ConnectionQuality int      `json:"connection_quality" validate:"required,gte=1,lte=5"`
	InteractionTypes  []string `json:"interaction_types,omitempty" validate:"omitempty,max=10,dive,min=1,max=60"`
	Feelings          []string `json:"feelings,omitempty" validate:"omitempty,max=10,dive,min=1,max=60"`
	Notes             string   `json:"notes,omitempty" validate:"max=2000"`
}

// InsightsWindow bounds the entries considered for insights.
// A zero Since means all history.
type InsightsWindow struct {
	Since time.Time
}

// TagCount is a tag with its occurrence count
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// EntryCounts reports how many entries of each type fed the insights
type EntryCounts struct {
	Mood   int `json:"mood"`
	Stress int `json:"stress"`
	Sleep  int `json:"sleep"`
	Social int `json:"social"`
}

// Insights is the aggregate wellness view for one user
type Insights struct {
	HasData bool        `json:"has_data"`
	Counts  EntryCounts `json:"entry_counts"`

	// Trend is the overall wellbeing trajectory. Empty when the user has
	// no scored (mood/stress) entries in the window.
	Trend Trend `json:"trend,omitempty"`

	AverageMoodScore         float64 `json:"average_mood_score"`
	AverageStressLevel       float64 `json:"average_stress_level"`
	AverageSleepHours        float64 `json:"average_sleep_hours"`
	AverageConnectionQuality float64 `json:"average_connection_quality"`

	CommonTriggers  []TagCount `json:"common_triggers"`
	CommonSymptoms  []TagCount `json:"common_symptoms"`
	EffectiveCoping []TagCount `json:"effective_coping"`

	HighStressDays  int      `json:"high_stress_days"`
	Recommendations []string `json:"recommendations"`
}
