package quiz

import "quiz-engine/internal/domain"

// DefaultPoolSize is the number of questions drawn for one attempt.
const DefaultPoolSize = 30

// Session is the state of one quiz attempt.
type Session struct {
	pool      []domain.Question
	points    []int
	current   int
	score     int
	maxScore  int
	answerLog []domain.AnsweredItem
}

// NewSession shuffles a copy of raw and keeps the first min(size, len(raw))
// questions. Point values are fixed here for the lifetime of the session.
func NewSession(raw []domain.Question, size int, r Rand) *Session {
	shuffled := make([]domain.Question, len(raw))
	copy(shuffled, raw)
	Shuffle(r, shuffled)

	if size < 0 {
		size = 0
	}
	if size > len(shuffled) {
		size = len(shuffled)
	}
	pool := shuffled[:size:size]

	s := &Session{
		pool:      pool,
		points:    make([]int, len(pool)),
		answerLog: make([]domain.AnsweredItem, 0, len(pool)),
	}
	for i, q := range pool {
		s.points[i] = PointsOf(q.Question)
		s.maxScore += s.points[i]
	}
	return s
}

// Len returns the pool size.
func (s *Session) Len() int { return len(s.pool) }

// Index returns the cursor; it equals Len once every question is answered.
func (s *Session) Index() int { return s.current }

func (s *Session) Score() int    { return s.score }
func (s *Session) MaxScore() int { return s.maxScore }

// Exhausted reports whether every question in the pool has been answered.
func (s *Session) Exhausted() bool { return s.current >= len(s.pool) }

// Pool returns a copy of the selected questions in quiz order.
func (s *Session) Pool() []domain.Question {
	out := make([]domain.Question, len(s.pool))
	copy(out, s.pool)
	return out
}

// Current returns the question under the cursor and its point value.
func (s *Session) Current() (domain.Question, int, bool) {
	if s.Exhausted() {
		return domain.Question{}, 0, false
	}
	return s.pool[s.current], s.points[s.current], true
}

// AnswerLog returns a copy of the answered items in answering order.
func (s *Session) AnswerLog() []domain.AnsweredItem {
	out := make([]domain.AnsweredItem, len(s.answerLog))
	copy(out, s.answerLog)
	return out
}

// record scores chosen against the current question and advances the cursor.
// The caller guarantees the session is not exhausted.
func (s *Session) record(chosen domain.Option) domain.AnsweredItem {
	q, points := s.pool[s.current], s.points[s.current]

	item := domain.AnsweredItem{
		Question:             q.Question,
		UserAnswerText:       chosen.DisplayValue,
		CorrectAnswerDisplay: CorrectAnswerDisplay(q),
		IsCorrect:            chosen.IsCorrectAnswer,
		PointsAvailable:      points,
	}
	if item.IsCorrect {
		item.PointsEarned = points
	}

	s.score += item.PointsEarned
	s.answerLog = append(s.answerLog, item)
	s.current++
	return item
}
