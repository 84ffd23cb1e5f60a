package quiz

import (
	"fmt"
	"math/rand"
	"testing"

	"quiz-engine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedQuestions(n int) []domain.Question {
	qs := make([]domain.Question, n)
	for i := range qs {
		qs[i] = domain.Question{
			Question:   fmt.Sprintf("Kérdés %d (%d pont)", i, i%4+1),
			Answer:     fmt.Sprintf("válasz %d", i),
			BadAnswers: []string{"rossz 1", "rossz 2"},
		}
	}
	return qs
}

func TestNewSession_PoolIsDistinctSubset(t *testing.T) {
	for _, n := range []int{1, 5, 29, 30, 31, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			raw := numberedQuestions(n)
			s := NewSession(raw, DefaultPoolSize, rand.New(rand.NewSource(int64(n))))

			want := n
			if want > DefaultPoolSize {
				want = DefaultPoolSize
			}
			require.Equal(t, want, s.Len())

			known := make(map[string]bool, n)
			for _, q := range raw {
				known[q.Question] = true
			}
			seen := make(map[string]bool, want)
			for _, q := range s.Pool() {
				assert.True(t, known[q.Question], "fabricated question %q", q.Question)
				assert.False(t, seen[q.Question], "duplicated question %q", q.Question)
				seen[q.Question] = true
			}
		})
	}
}

func TestNewSession_DoesNotMutateInput(t *testing.T) {
	raw := numberedQuestions(10)
	before := append([]domain.Question(nil), raw...)

	NewSession(raw, DefaultPoolSize, rand.New(rand.NewSource(1)))

	assert.Equal(t, before, raw)
}

func TestNewSession_MaxScore(t *testing.T) {
	raw := numberedQuestions(40)
	s := NewSession(raw, DefaultPoolSize, rand.New(rand.NewSource(9)))

	sum := 0
	for _, q := range s.Pool() {
		sum += PointsOf(q.Question)
	}
	assert.Equal(t, sum, s.MaxScore())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Index())
	assert.Empty(t, s.AnswerLog())
}

func TestNewSession_Empty(t *testing.T) {
	s := NewSession(nil, DefaultPoolSize, zeroRand{})

	assert.Zero(t, s.Len())
	assert.Zero(t, s.MaxScore())
	assert.True(t, s.Exhausted())
	_, _, ok := s.Current()
	assert.False(t, ok)
}

func TestSession_RecordScoresAndAdvances(t *testing.T) {
	raw := []domain.Question{
		{Question: "Mi ez? (5 pont)", Answer: "kutya"},
		{Question: "Mi az? ", Answer: domain.SentinelAnswer, Image: "y.png"},
	}
	s := NewSession(raw, DefaultPoolSize, zeroRand{})
	// zeroRand rotates a two element slice once.
	require.Equal(t, "Mi az? ", s.Pool()[0].Question)

	item := s.record(domain.Option{DisplayValue: "z.png", IsCorrectAnswer: false})
	assert.Equal(t, domain.AnsweredItem{
		Question:             "Mi az? ",
		UserAnswerText:       "z.png",
		CorrectAnswerDisplay: "y.png",
		IsCorrect:            false,
		PointsAvailable:      1,
		PointsEarned:         0,
	}, item)
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Index())

	item = s.record(domain.Option{DisplayValue: "kutya", IsCorrectAnswer: true})
	assert.True(t, item.IsCorrect)
	assert.Equal(t, 5, item.PointsEarned)
	assert.Equal(t, 5, s.Score())
	assert.Equal(t, 6, s.MaxScore())
	assert.True(t, s.Exhausted())

	log := s.AnswerLog()
	require.Len(t, log, 2)
	assert.Equal(t, "Mi az? ", log[0].Question)
	assert.Equal(t, "Mi ez? (5 pont)", log[1].Question)
}

func TestSession_AnswerLogIsACopy(t *testing.T) {
	s := NewSession(numberedQuestions(2), DefaultPoolSize, zeroRand{})
	s.record(domain.Option{DisplayValue: "x", IsCorrectAnswer: true})

	log := s.AnswerLog()
	log[0].IsCorrect = false
	log[0].PointsEarned = 100

	assert.True(t, s.AnswerLog()[0].IsCorrect)
	assert.NotEqual(t, 100, s.AnswerLog()[0].PointsEarned)
}
