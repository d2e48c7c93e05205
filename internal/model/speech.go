package model

// SpeakRequest asks for spoken playback of a word in the user's target
// language.
type SpeakRequest struct {
	Word string `json:"word" validate:"required,max=100"`
}

// SpeakResponse reports the outcome of a playback attempt. TTS or audio
// failure is a degraded result, not a request failure: Available is
// false and Fallback carries a textual pronunciation hint.
type SpeakResponse struct {
	Word      string `json:"word"`
	Language  string `json:"language"`
	Available bool   `json:"available"`
	Message   string `json:"message"`
	Fallback  string `json:"fallback,omitempty"`
}
