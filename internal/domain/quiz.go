package domain

// SentinelAnswer is the answer text meaning the attached image is the real answer.
const SentinelAnswer = "Lásd a képet."

// State is the lifecycle state of a quiz session
type State string

const (
	StateNotStarted State = "not-started"
	StateInProgress State = "in-progress"
	StateFinished   State = "finished"
)

// Question is one entry of the quiz data set. Immutable once loaded.
type Question struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Image      string   `json:"image,omitempty"`
	BadAnswers []string `json:"bad_answers,omitempty"`
}

// HasImage reports whether the question references an image resource.
func (q Question) HasImage() bool {
	return q.Image != ""
}

// Option is one selectable answer of the current question.
type Option struct {
	DisplayValue    string
	IsCorrectAnswer bool
	IsImage         bool
}

// QuestionView is the read model of the question under the cursor.
type QuestionView struct {
	Index       int
	Total       int
	Points      int
	Text        string
	ImageToShow string // empty when no image goes with the prompt
}

// AnsweredItem records one completed question. Never mutated after creation.
type AnsweredItem struct {
	Question             string
	UserAnswerText       string
	CorrectAnswerDisplay string
	IsCorrect            bool
	PointsAvailable      int
	PointsEarned         int
}

// Report is the final projection of a finished session.
type Report struct {
	Score     int
	MaxScore  int
	AnswerLog []AnsweredItem
}

// Progress is a lightweight snapshot of a session, valid in every state.
type Progress struct {
	State    State
	Index    int
	Total    int
	Score    int
	MaxScore int
}
