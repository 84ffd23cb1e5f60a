package service

import (
	"context"
	"sync"
	"time"

	"quiz-engine/internal/config"
	"quiz-engine/internal/domain"
	"quiz-engine/internal/dto"
	"quiz-engine/internal/logger"
	"quiz-engine/internal/quiz"
	"quiz-engine/internal/util"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-session operations
type QuizService interface {
	CreateSession(ctx context.Context) (*dto.SessionResponse, error)
	GetSession(sessionID string) (*dto.SessionResponse, error)
	RestartSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	GetCurrentQuestion(sessionID string) (*dto.QuestionResponse, error)
	SubmitAnswer(sessionID string, req *dto.SubmitAnswerRequest) (*dto.AnsweredItemResponse, error)
	GetReport(sessionID string) (*dto.ReportResponse, error)
	DeleteSession(sessionID string) error
	EvictIdle(now time.Time) int
}

type sessionEntry struct {
	engine   *quiz.Engine
	lastSeen time.Time
}

// quizService implements QuizService with an in-memory registry of engines
type quizService struct {
	source     domain.QuestionSource
	cfg        config.QuizConfig
	engineOpts []quiz.EngineOption

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewQuizService creates a new instance of quizService
func NewQuizService(source domain.QuestionSource, cfg config.QuizConfig, opts ...quiz.EngineOption) QuizService {
	if cfg.PoolSize > 0 {
		opts = append([]quiz.EngineOption{quiz.WithPoolSize(cfg.PoolSize)}, opts...)
	}
	return &quizService{
		source:     source,
		cfg:        cfg,
		engineOpts: opts,
		sessions:   make(map[string]*sessionEntry),
	}
}

// CreateSession registers a new session and starts it. The session is
// registered before loading so a delete can cancel the load.
func (s *quizService) CreateSession(ctx context.Context) (*dto.SessionResponse, error) {
	id := util.NewULID()
	engine := quiz.NewEngine(s.source, s.engineOpts...)

	s.mu.Lock()
	s.sessions[id] = &sessionEntry{engine: engine, lastSeen: time.Now()}
	s.mu.Unlock()

	if err := s.start(ctx, engine); err != nil {
		s.mu.Lock()
		if entry, ok := s.sessions[id]; ok && entry.engine == engine {
			delete(s.sessions, id)
		}
		s.mu.Unlock()
		engine.Close()
		return nil, err
	}

	logger.Get().Info("Quiz session created",
		zap.String("sessionID", id),
		zap.String("state", string(engine.State())),
	)
	return sessionResponse(id, engine.Progress()), nil
}

// GetSession implements QuizService
func (s *quizService) GetSession(sessionID string) (*dto.SessionResponse, error) {
	engine, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return sessionResponse(sessionID, engine.Progress()), nil
}

// RestartSession discards the session's attempt and starts a new one.
// On a load error the previous attempt stays as it was.
func (s *quizService) RestartSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	engine, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.start(ctx, engine); err != nil {
		return nil, err
	}
	logger.Get().Info("Quiz session restarted", zap.String("sessionID", sessionID))
	return sessionResponse(sessionID, engine.Progress()), nil
}

// GetCurrentQuestion implements QuizService
func (s *quizService) GetCurrentQuestion(sessionID string) (*dto.QuestionResponse, error) {
	engine, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	view, err := engine.CurrentQuestionView()
	if err != nil {
		return nil, err
	}
	options, err := engine.Options()
	if err != nil {
		return nil, err
	}

	resp := &dto.QuestionResponse{
		SessionID: sessionID,
		Index:     view.Index,
		Number:    view.Index + 1,
		Total:     view.Total,
		Points:    view.Points,
		Text:      view.Text,
		Image:     view.ImageToShow,
		Options:   make([]dto.OptionResponse, 0, len(options)),
	}
	for i, o := range options {
		resp.Options = append(resp.Options, dto.OptionResponse{Index: i, Value: o.DisplayValue, IsImage: o.IsImage})
	}
	return resp, nil
}

// SubmitAnswer implements QuizService
func (s *quizService) SubmitAnswer(sessionID string, req *dto.SubmitAnswerRequest) (*dto.AnsweredItemResponse, error) {
	if req == nil || req.OptionIndex == nil {
		return nil, domain.NewInvalidInputError("option_index is required")
	}
	engine, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	item, err := engine.SubmitOption(*req.OptionIndex)
	if err != nil {
		return nil, err
	}

	logger.Get().Debug("Answer recorded",
		zap.String("sessionID", sessionID),
		zap.Bool("correct", item.IsCorrect),
		zap.Int("pointsEarned", item.PointsEarned),
	)

	resp := answeredItemResponse(item)
	resp.SessionState = string(engine.State())
	return &resp, nil
}

// GetReport implements QuizService
func (s *quizService) GetReport(sessionID string) (*dto.ReportResponse, error) {
	engine, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	report, err := engine.FinalReport()
	if err != nil {
		return nil, err
	}

	resp := &dto.ReportResponse{
		SessionID: sessionID,
		Score:     report.Score,
		MaxScore:  report.MaxScore,
		Answers:   make([]dto.AnsweredItemResponse, 0, len(report.AnswerLog)),
	}
	if report.MaxScore > 0 {
		resp.Percent = float64(report.Score) * 100 / float64(report.MaxScore)
	}
	for _, item := range report.AnswerLog {
		resp.Answers = append(resp.Answers, answeredItemResponse(item))
	}
	return resp, nil
}

// DeleteSession tears the session down; an in-flight load is ignored.
func (s *quizService) DeleteSession(sessionID string) error {
	s.mu.Lock()
	entry, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return domain.NewSessionNotFoundError(sessionID)
	}
	entry.engine.Close()
	logger.Get().Info("Quiz session deleted", zap.String("sessionID", sessionID))
	return nil
}

// EvictIdle closes and removes sessions not touched since now minus the
// configured TTL. It returns the number of evicted sessions.
func (s *quizService) EvictIdle(now time.Time) int {
	if s.cfg.SessionTTL <= 0 {
		return 0
	}
	cutoff := now.Add(-s.cfg.SessionTTL)

	var stale []*quiz.Engine
	s.mu.Lock()
	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			stale = append(stale, entry.engine)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, e := range stale {
		e.Close()
	}
	if len(stale) > 0 {
		logger.Get().Info("Evicted idle quiz sessions", zap.Int("count", len(stale)))
	}
	return len(stale)
}

// RunEvictor calls EvictIdle every interval until ctx is done.
func RunEvictor(ctx context.Context, s QuizService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.EvictIdle(now)
		}
	}
}

func (s *quizService) lookup(sessionID string) (*quiz.Engine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	entry.lastSeen = time.Now()
	return entry.engine, nil
}

func (s *quizService) start(ctx context.Context, engine *quiz.Engine) error {
	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}
	return engine.Start(ctx)
}

func sessionResponse(id string, p domain.Progress) *dto.SessionResponse {
	return &dto.SessionResponse{
		SessionID: id,
		State:     string(p.State),
		Answered:  p.Index,
		Total:     p.Total,
		Score:     p.Score,
		MaxScore:  p.MaxScore,
	}
}

func answeredItemResponse(item domain.AnsweredItem) dto.AnsweredItemResponse {
	return dto.AnsweredItemResponse{
		Question:        item.Question,
		UserAnswer:      item.UserAnswerText,
		CorrectAnswer:   item.CorrectAnswerDisplay,
		IsCorrect:       item.IsCorrect,
		PointsAvailable: item.PointsAvailable,
		PointsEarned:    item.PointsEarned,
	}
}
