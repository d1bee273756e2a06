package types

// SynthesizeRequest is the POST /api/tts body. It mirrors the upstream
// Google TTS request shape so the web client can pass it through unchanged.
type SynthesizeRequest struct {
	Input       SynthesisInput `json:"input"`
	Voice       VoiceSelection `json:"voice"`
	AudioConfig AudioConfig    `json:"audioConfig"`
}

type SynthesisInput struct {
	Text string `json:"text"`
}

type VoiceSelection struct {
	Name string `json:"name,omitempty"`
}

type AudioConfig struct {
	SpeakingRate float64 `json:"speakingRate,omitempty"`
}

type SynthesizeResponse struct {
	AudioContent string `json:"audioContent"`
}

type CreateSessionReq struct {
	Voice string  `json:"voice"`
	Rate  float64 `json:"rate"`
}

type CreateSessionResp struct {
	SessionID string `json:"session_id"`
	WSURL     string `json:"ws_url"`
}

type CategoryProgress struct {
	Learned  int `json:"learned"`
	QuizBest int `json:"quiz_best"`
}

type SummaryResp struct {
	SessionID string                      `json:"session_id"`
	Answered  int64                       `json:"answered"`
	Correct   int64                       `json:"correct"`
	Streak    int64                       `json:"streak"`
	Progress  map[string]CategoryProgress `json:"progress"`
}

type CoachReq struct {
	Word string `json:"word"`
}

// Example is one coach-generated practice sentence for a catalog word.
type Example struct {
	Sentence string `json:"sentence"`
	Roman    string `json:"roman"`
	English  string `json:"english"`
}
