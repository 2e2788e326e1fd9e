package wellness

import "sort"

// Trend classifies a user's recent score trajectory
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

const (
	// trendEpsilon is the minimum average delta (on the 1-5 scale)
	// before a trajectory counts as a trend rather than noise.
	trendEpsilon = 0.3

	// highStressLevel marks an entry as a high-stress day
	highStressLevel = 4

	// topTagCount bounds the ranked trigger/symptom/coping lists
	topTagCount = 5
)

// computeInsights derives the aggregate view from a user's entries.
// Entries must be in chronological order (oldest first).
func computeInsights(moods []*MoodEntry, stresses []*StressEntry, sleeps []*SleepEntry, socials []*SocialEntry) *Insights {
	in := &Insights{
		Counts: EntryCounts{
			Mood:   len(moods),
			Stress: len(stresses),
			Sleep:  len(sleeps),
			Social: len(socials),
		},
		CommonTriggers:  []TagCount{},
		CommonSymptoms:  []TagCount{},
		EffectiveCoping: []TagCount{},
		Recommendations: []string{},
	}

	if len(moods) == 0 && len(stresses) == 0 && len(sleeps) == 0 && len(socials) == 0 {
		// Explicit no-data result: no averages, no trend, no advice.
		return in
	}
	in.HasData = true

	moodScores := make([]float64, len(moods))
	for i, m := range moods {
		moodScores[i] = float64(m.Score)
	}
	stressLevels := make([]float64, len(stresses))
	for i, s := range stresses {
		stressLevels[i] = float64(s.Level)
		if s.Level >= highStressLevel {
			in.HighStressDays++
		}
	}

	in.AverageMoodScore = average(moodScores)
	in.AverageStressLevel = average(stressLevels)

	hours := make([]float64, len(sleeps))
	for i, s := range sleeps {
		hours[i] = s.HoursSlept
	}
	in.AverageSleepHours = average(hours)

	quality := make([]float64, len(socials))
	for i, s := range socials {
		quality[i] = float64(s.ConnectionQuality)
	}
	in.AverageConnectionQuality = average(quality)

	in.Trend = overallTrend(moodScores, stressLevels)

	triggers := make([][]string, len(stresses))
	symptoms := make([][]string, len(stresses))
	coping := make([][]string, len(stresses))
	for i, s := range stresses {
		triggers[i] = s.Triggers
		symptoms[i] = s.Symptoms
		coping[i] = s.CopingUsed
	}
	in.CommonTriggers = rankTags(triggers, topTagCount)
	in.CommonSymptoms = rankTags(symptoms, topTagCount)
	// "Effective" means most used; usage frequency is not correlated
	// with subsequent score changes.
	in.EffectiveCoping = rankTags(coping, topTagCount)

	in.Recommendations = recommend(in)

	return in
}

// overallTrend prefers the mood trajectory; without mood entries it
// falls back to the stress trajectory, inverted so that rising stress
// reads as declining wellbeing.
func overallTrend(moodScores, stressLevels []float64) Trend {
	if len(moodScores) >= 2 {
		return classifyDelta(recentDelta(moodScores))
	}
	if len(stressLevels) >= 2 {
		return classifyDelta(-recentDelta(stressLevels))
	}
	if len(moodScores) > 0 || len(stressLevels) > 0 {
		return TrendStable
	}
	return ""
}

// recentDelta compares the average of the recent half of the series
// against the earlier half.
func recentDelta(scores []float64) float64 {
	mid := len(scores) / 2
	earlier := scores[:mid]
	recent := scores[mid:]
	return average(recent) - average(earlier)
}

func classifyDelta(delta float64) Trend {
	switch {
	case delta > trendEpsilon:
		return TrendImproving
	case delta < -trendEpsilon:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// rankTags frequency-counts tags across entries and returns the top n
// by count, ties broken by first-seen order.
func rankTags(tagLists [][]string, n int) []TagCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, tags := range tagLists {
		for _, tag := range tags {
			if tag == "" {
				continue
			}
			if _, seen := counts[tag]; !seen {
				firstSeen[tag] = order
				order++
			}
			counts[tag]++
		}
	}

	ranked := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		ranked = append(ranked, TagCount{Tag: tag, Count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Tag] < firstSeen[ranked[j].Tag]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// recommendation rules are evaluated in order; every matching rule
// contributes its message.
type recommendationRule struct {
	applies func(*Insights) bool
	message string
}

var recommendationRules = []recommendationRule{
	{
		applies: func(in *Insights) bool {
			return in.Counts.Stress > 0 && in.AverageStressLevel >= highStressLevel
		},
		message: "Your stress levels are consistently very high. Please consider reaching out to a counselor or your campus support service.",
	},
	{
		applies: func(in *Insights) bool { return in.Trend == TrendDeclining },
		message: "Your stress has been rising recently. Short breaks, movement, and talking to someone you trust can help before it builds up.",
	},
	{
		applies: func(in *Insights) bool { return in.Trend == TrendImproving },
		message: "Things are trending in the right direction. Keep up the routines that have been working for you.",
	},
	{
		applies: func(in *Insights) bool {
			return in.Counts.Sleep > 0 && in.AverageSleepHours < 6
		},
		message: "You are averaging less than six hours of sleep. A consistent bedtime can make a noticeable difference to mood and stress.",
	},
	{
		applies: func(in *Insights) bool {
			return len(in.EffectiveCoping) > 0 && in.HighStressDays > 0
		},
		message: "On difficult days, lean on the coping strategies you already use most - they are your most practiced tools.",
	},
}

func recommend(in *Insights) []string {
	messages := []string{}
	for _, rule := range recommendationRules {
		if rule.applies(in) {
			messages = append(messages, rule.message)
		}
	}
	return messages
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
