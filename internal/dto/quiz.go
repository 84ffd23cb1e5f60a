package dto

// SessionResponse summarises a quiz session
// @Description Quiz session state and running totals
type SessionResponse struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
	Answered  int    `json:"answered"`
	Total     int    `json:"total"`
	Score     int    `json:"score"`
	MaxScore  int    `json:"max_score"`
}

// OptionResponse is one selectable answer. Correctness is never exposed.
type OptionResponse struct {
	Index   int    `json:"index"`
	Value   string `json:"value"`
	IsImage bool   `json:"is_image"`
}

// QuestionResponse represents the current question in the API response
// @Description Current question with its shuffled options
type QuestionResponse struct {
	SessionID string           `json:"session_id"`
	Index     int              `json:"index"`
	Number    int              `json:"number"` // 1-based position for display
	Total     int              `json:"total"`
	Points    int              `json:"points"`
	Text      string           `json:"text"`
	Image     string           `json:"image,omitempty"`
	Options   []OptionResponse `json:"options"`
}

// SubmitAnswerRequest represents the chosen option in the API request
// @Description Request body for answering the current question
type SubmitAnswerRequest struct {
	OptionIndex *int `json:"option_index"`
}

// AnsweredItemResponse is the feedback for one answered question
type AnsweredItemResponse struct {
	Question        string `json:"question"`
	UserAnswer      string `json:"user_answer"`
	CorrectAnswer   string `json:"correct_answer"`
	IsCorrect       bool   `json:"is_correct"`
	PointsAvailable int    `json:"points_available"`
	PointsEarned    int    `json:"points_earned"`
	SessionState    string `json:"session_state,omitempty"`
}

// ReportResponse is the final result of a finished quiz
// @Description Final score and the answers in answering order
type ReportResponse struct {
	SessionID string                 `json:"session_id"`
	Score     int                    `json:"score"`
	MaxScore  int                    `json:"max_score"`
	Percent   float64                `json:"percent"`
	Answers   []AnsweredItemResponse `json:"answers"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}
