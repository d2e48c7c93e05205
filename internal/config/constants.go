package config

// Application information.
const (
	AppName    = "lingualearn"
	AppVersion = "1.0.0"
)

// Default settings.
const (
	DefaultServerPort        = ":8080"
	DefaultLogLevel          = "info"
	DefaultDatabaseURL       = "file:lingualearn.db"
	DefaultSuggestionCount   = 5
	DefaultPracticeWordLimit = 10
	DefaultSessionCookieName = "lingualearn_session"
	DefaultSessionTTLHours   = 24
	DefaultTTSBaseURL        = "https://translate.google.com/translate_tts"
	DefaultTTSTimeoutSeconds = 10
)

// Proficiency adjustments applied on a recorded practice result. A miss
// costs less than a correct answer earns.
const (
	ProficiencyGainOnCorrect = 0.5
	ProficiencyLossOnMiss    = 0.2
)

// PracticeProficiencyCeiling selects words for the pronunciation practice
// set: only entries below this score need practice.
const PracticeProficiencyCeiling = 3.0

// PlaceholderSessionDuration is the session_duration value written for
// every practice record. Clients do not report elapsed time.
const PlaceholderSessionDuration = 60

// RecentWordsWindowDays is the trailing window for the "recently added"
// statistic.
const RecentWordsWindowDays = 7
