package wellness

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campusmind/campusmind-api/internal/pkg/validator"
)

type fakeRepo struct {
	moods    []*MoodEntry
	stresses []*StressEntry
	sleeps   []*SleepEntry
	socials  []*SocialEntry
}

func (f *fakeRepo) CreateMoodEntry(ctx context.Context, entry *MoodEntry) error {
	f.moods = append(f.moods, entry)
	return nil
}
func (f *fakeRepo) CreateStressEntry(ctx context.Context, entry *StressEntry) error {
	f.stresses = append(f.stresses, entry)
	return nil
}
func (f *fakeRepo) CreateSleepEntry(ctx context.Context, entry *SleepEntry) error {
	f.sleeps = append(f.sleeps, entry)
	return nil
}
func (f *fakeRepo) CreateSocialEntry(ctx context.Context, entry *SocialEntry) error {
	f.socials = append(f.socials, entry)
	return nil
}
func (f *fakeRepo) ListMoodEntries(ctx context.Context, userID uuid.UUID, since time.Time) ([]*MoodEntry, error) {
	return f.moods, nil
}
func (f *fakeRepo) ListStressEntries(ctx context.Context, userID uuid.UUID, since time.Time) ([]*StressEntry, error) {
	return f.stresses, nil
}
func (f *fakeRepo) ListSleepEntries(ctx context.Context, userID uuid.UUID, since time.Time) ([]*SleepEntry, error) {
	return f.sleeps, nil
}
func (f *fakeRepo) ListSocialEntries(ctx context.Context, userID uuid.UUID, since time.Time) ([]*SocialEntry, error) {
	return f.socials, nil
}

func TestRecordMoodRejectsOutOfRangeScores(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	userID := uuid.New()

	for _, score := range []int{0, -1, 6, 100} {
		_, err := svc.RecordMood(context.Background(), userID, &RecordMoodRequest{Score: score})
		if !errors.Is(err, ErrScoreOutOfRange) {
			t.Errorf("score %d: err = %v, want ErrScoreOutOfRange", score, err)
		}
	}

	if len(repo.moods) != 0 {
		t.Fatalf("rejected entries must not be stored, got %d", len(repo.moods))
	}
}

func TestRecordMoodAcceptsBoundaryScores(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	userID := uuid.New()

	for _, score := range []int{1, 5} {
		entry, err := svc.RecordMood(context.Background(), userID, &RecordMoodRequest{Score: score})
		if err != nil {
			t.Fatalf("score %d: unexpected error %v", score, err)
		}
		if entry.UserID != userID {
			t.Errorf("entry user = %s, want %s", entry.UserID, userID)
		}
		if entry.ID == uuid.Nil {
			t.Error("entry must get an ID")
		}
	}
}

func TestEntriesAreAppendOnly(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		if _, err := svc.RecordMood(context.Background(), userID, &RecordMoodRequest{Score: 3}); err != nil {
			t.Fatalf("record %d failed: %v", i, err)
		}
	}

	if len(repo.moods) != 3 {
		t.Fatalf("expected 3 stored entries, got %d", len(repo.moods))
	}
	seen := map[uuid.UUID]bool{}
	for _, m := range repo.moods {
		if seen[m.ID] {
			t.Fatal("entries must be distinct, not overwritten")
		}
		seen[m.ID] = true
	}
}

func TestRecordStressRejectsOutOfRangeLevel(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.RecordStress(context.Background(), uuid.New(), &RecordStressRequest{Level: 6})
	if !errors.Is(err, ErrScoreOutOfRange) {
		t.Fatalf("err = %v, want ErrScoreOutOfRange", err)
	}
}

func TestRecordSleepRequiresBedTimes(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.RecordSleep(context.Background(), uuid.New(), &RecordSleepRequest{
		HoursSlept: 7,
		Quality:    3,
		BedTime:    "23:30",
	})
	if !errors.Is(err, ErrMissingBedTimes) {
		t.Fatalf("err = %v, want ErrMissingBedTimes", err)
	}
}

func TestRecordSocialListsAreOptional(t *testing.T) {
	// Interaction types and feelings are a client-side prompt; an entry
	// with only a connection quality must pass validation and be stored.
	req := &RecordSocialRequest{ConnectionQuality: 3}
	if errs := validator.Validate(req); errs != nil {
		t.Fatalf("validation errors = %v, want none", errs)
	}

	repo := &fakeRepo{}
	svc := NewService(repo)

	entry, err := svc.RecordSocial(context.Background(), uuid.New(), req)
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if entry.ConnectionQuality != 3 {
		t.Fatalf("quality = %d, want 3", entry.ConnectionQuality)
	}
	if len(repo.socials) != 1 {
		t.Fatalf("stored %d entries, want 1", len(repo.socials))
	}
}

func TestGetInsightsUsesStoredEntries(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	userID := uuid.New()

	for _, score := range []int{2, 2, 4, 4} {
		if _, err := svc.RecordMood(context.Background(), userID, &RecordMoodRequest{Score: score}); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}
	if _, err := svc.RecordStress(context.Background(), userID, &RecordStressRequest{
		Level:    4,
		Triggers: []string{"Exams"},
	}); err != nil {
		t.Fatalf("record stress failed: %v", err)
	}

	in, err := svc.GetInsights(context.Background(), userID, InsightsWindow{})
	if err != nil {
		t.Fatalf("get insights failed: %v", err)
	}

	if !in.HasData {
		t.Fatal("expected HasData true")
	}
	if in.Counts.Mood != 4 || in.Counts.Stress != 1 {
		t.Errorf("unexpected counts: %+v", in.Counts)
	}
	if in.Trend != TrendImproving {
		t.Errorf("trend = %q, want %q", in.Trend, TrendImproving)
	}
	if in.HighStressDays != 1 {
		t.Errorf("high stress days = %d, want 1", in.HighStressDays)
	}
}
