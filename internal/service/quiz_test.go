package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-engine/internal/config"
	"quiz-engine/internal/domain"
	"quiz-engine/internal/dto"
	"quiz-engine/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

// singleOptionQuestions have no distractors, so option 0 is always correct.
func singleOptionQuestions() []domain.Question {
	return []domain.Question{
		{Question: "Mi a kötés neve? (2 pont)", Answer: "nyolcas"},
		{Question: "Hány ága van? ", Answer: "három"},
	}
}

func testQuizConfig() config.QuizConfig {
	return config.QuizConfig{PoolSize: 30, FetchTimeout: time.Second, SessionTTL: time.Hour}
}

func TestQuizService_CreateSession(t *testing.T) {
	src := new(MockQuestionSource)
	src.On("FetchQuestions", mock.Anything).Return(singleOptionQuestions(), nil)
	svc := NewQuizService(src, testQuizConfig())

	resp, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	assert.True(t, util.IsULID(resp.SessionID))
	assert.Equal(t, string(domain.StateInProgress), resp.State)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 3, resp.MaxScore)
	assert.Zero(t, resp.Answered)
	src.AssertExpectations(t)
}

func TestQuizService_CreateSessionLoadError(t *testing.T) {
	src := new(MockQuestionSource)
	src.On("FetchQuestions", mock.Anything).Return(nil, errors.New("unexpected status 500"))
	svc := NewQuizService(src, testQuizConfig())

	resp, err := svc.CreateSession(context.Background())
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrLoad)

	impl := svc.(*quizService)
	assert.Empty(t, impl.sessions)
}

func TestQuizService_FullAttempt(t *testing.T) {
	src := new(MockQuestionSource)
	src.On("FetchQuestions", mock.Anything).Return(singleOptionQuestions(), nil)
	svc := NewQuizService(src, testQuizConfig())

	session, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	id := session.SessionID

	_, err = svc.GetReport(id)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	for i := 0; i < 2; i++ {
		q, err := svc.GetCurrentQuestion(id)
		require.NoError(t, err)
		assert.Equal(t, i, q.Index)
		assert.Equal(t, i+1, q.Number)
		assert.Equal(t, 2, q.Total)
		require.Len(t, q.Options, 1)
		assert.Equal(t, 0, q.Options[0].Index)
		assert.False(t, q.Options[0].IsImage)

		item, err := svc.SubmitAnswer(id, &dto.SubmitAnswerRequest{OptionIndex: intPtr(0)})
		require.NoError(t, err)
		assert.True(t, item.IsCorrect)
		assert.Equal(t, item.PointsAvailable, item.PointsEarned)
	}

	_, err = svc.GetCurrentQuestion(id)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	_, err = svc.SubmitAnswer(id, &dto.SubmitAnswerRequest{OptionIndex: intPtr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	report, err := svc.GetReport(id)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Score)
	assert.Equal(t, 3, report.MaxScore)
	assert.InDelta(t, 100.0, report.Percent, 0.001)
	assert.Len(t, report.Answers, 2)

	got, err := svc.GetSession(id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateFinished), got.State)
	assert.Equal(t, 2, got.Answered)
}

func TestQuizService_SubmitAnswerValidation(t *testing.T) {
	src := new(MockQuestionSource)
	src.On("FetchQuestions", mock.Anything).Return(singleOptionQuestions(), nil)
	svc := NewQuizService(src, testQuizConfig())
	session, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(session.SessionID, &dto.SubmitAnswerRequest{})
	assert.ErrorIs(t, err, &domain.DomainError{Code: domain.CodeInvalidInput})

	_, err = svc.SubmitAnswer(session.SessionID, &dto.SubmitAnswerRequest{OptionIndex: intPtr(7)})
	assert.ErrorIs(t, err, &domain.DomainError{Code: domain.CodeInvalidInput})

	got, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Zero(t, got.Answered)
}

func TestQuizService_UnknownSession(t *testing.T) {
	svc := NewQuizService(new(MockQuestionSource), testQuizConfig())
	id := util.NewULID()

	_, err := svc.GetSession(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = svc.GetCurrentQuestion(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = svc.SubmitAnswer(id, &dto.SubmitAnswerRequest{OptionIndex: intPtr(0)})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = svc.GetReport(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = svc.RestartSession(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, svc.DeleteSession(id), domain.ErrSessionNotFound)
}

func TestQuizService_RestartSession(t *testing.T) {
	src := new(MockQuestionSource)
	src.On("FetchQuestions", mock.Anything).Return(singleOptionQuestions(), nil).Twice()
	src.On("FetchQuestions", mock.Anything).Return(nil, errors.New("timeout"))
	svc := NewQuizService(src, testQuizConfig())

	session, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	id := session.SessionID
	_, err = svc.SubmitAnswer(id, &dto.SubmitAnswerRequest{OptionIndex: intPtr(0)})
	require.NoError(t, err)

	restarted, err := svc.RestartSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, restarted.SessionID)
	assert.Zero(t, restarted.Answered)
	assert.Zero(t, restarted.Score)

	_, err = svc.SubmitAnswer(id, &dto.SubmitAnswerRequest{OptionIndex: intPtr(0)})
	require.NoError(t, err)
	before, err := svc.GetSession(id)
	require.NoError(t, err)

	_, err = svc.RestartSession(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrLoad)

	after, err := svc.GetSession(id)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestQuizService_DeleteSession(t *testing.T) {
	src := new(MockQuestionSource)
	src.On("FetchQuestions", mock.Anything).Return(singleOptionQuestions(), nil)
	svc := NewQuizService(src, testQuizConfig())
	session, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(session.SessionID))

	_, err = svc.GetSession(session.SessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestQuizService_EvictIdle(t *testing.T) {
	src := new(MockQuestionSource)
	src.On("FetchQuestions", mock.Anything).Return(singleOptionQuestions(), nil)

	t.Run("EvictsStaleSessions", func(t *testing.T) {
		svc := NewQuizService(src, testQuizConfig())
		session, err := svc.CreateSession(context.Background())
		require.NoError(t, err)

		assert.Zero(t, svc.EvictIdle(time.Now()))
		assert.Equal(t, 1, svc.EvictIdle(time.Now().Add(2*time.Hour)))

		_, err = svc.GetSession(session.SessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("DisabledWithoutTTL", func(t *testing.T) {
		cfg := testQuizConfig()
		cfg.SessionTTL = 0
		svc := NewQuizService(src, cfg)
		_, err := svc.CreateSession(context.Background())
		require.NoError(t, err)

		assert.Zero(t, svc.EvictIdle(time.Now().Add(24*time.Hour)))
	})
}

func TestRunEvictor(t *testing.T) {
	src := new(MockQuestionSource)
	src.On("FetchQuestions", mock.Anything).Return(singleOptionQuestions(), nil)
	cfg := testQuizConfig()
	cfg.SessionTTL = time.Nanosecond
	svc := NewQuizService(src, cfg)
	session, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunEvictor(ctx, svc, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		impl := svc.(*quizService)
		impl.mu.Lock()
		defer impl.mu.Unlock()
		_, ok := impl.sessions[session.SessionID]
		return !ok
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("evictor did not stop")
	}
}
