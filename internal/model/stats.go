package model

// ProficiencyDistribution buckets vocabulary entries into the three
// mastery bands. The bands partition [0,5], so the counts always sum to
// the total vocabulary count.
type ProficiencyDistribution struct {
	Beginner     int64 `json:"beginner"`     // [0,2]
	Intermediate int64 `json:"intermediate"` // (2,4]
	Advanced     int64 `json:"advanced"`     // (4,5]
}

// StatisticsResponse is the read-only rollup over a user's vocabulary
// and practice sessions.
type StatisticsResponse struct {
	TotalWords            int64                   `json:"total_words"`
	Distribution          ProficiencyDistribution `json:"proficiency_distribution"`
	RecentWords           int64                   `json:"recent_words"`
	TotalPracticeSessions int64                   `json:"total_practice_sessions"`
	TotalWordsPracticed   int64                   `json:"total_words_practiced"`
	LastSession           *PracticeSession        `json:"last_session,omitempty"`
	WordsByLanguage       map[string]int64        `json:"words_by_language"`
}
