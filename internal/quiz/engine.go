package quiz

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"quiz-engine/internal/domain"
	"quiz-engine/internal/logger"
)

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRand sets the randomness source used for pool and option shuffling.
func WithRand(r Rand) EngineOption { return func(e *Engine) { e.rnd = r } }

// WithPoolSize sets the number of questions drawn per attempt.
func WithPoolSize(n int) EngineOption { return func(e *Engine) { e.poolSize = n } }

// WithLogger overrides the global logger.
func WithLogger(l *zap.Logger) EngineOption { return func(e *Engine) { e.log = l } }

// Engine drives one quiz through not-started -> in-progress -> finished.
// Only the newest Start may install a session; a load that completes after
// a newer Start or after Close is discarded.
type Engine struct {
	source   domain.QuestionSource
	rnd      Rand
	poolSize int
	log      *zap.Logger

	mu         sync.Mutex
	state      domain.State
	session    *Session
	options    []domain.Option
	generation uint64
	cancelLoad context.CancelFunc
	closed     bool
}

// NewEngine creates an engine in state not-started.
func NewEngine(source domain.QuestionSource, opts ...EngineOption) *Engine {
	e := &Engine{
		source:   source,
		rnd:      globalRand{},
		poolSize: DefaultPoolSize,
		log:      logger.Get(),
		state:    domain.StateNotStarted,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Start fetches the question set and begins a fresh attempt. On a load
// error the previous session, if any, is left untouched.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.closed {
		state := e.state
		e.mu.Unlock()
		return domain.NewInvalidStateError("start on closed engine", state)
	}
	if e.cancelLoad != nil {
		e.cancelLoad()
	}
	e.generation++
	gen := e.generation
	loadCtx, cancel := context.WithCancel(ctx)
	e.cancelLoad = cancel
	e.mu.Unlock()
	defer cancel()

	raw, err := e.source.FetchQuestions(loadCtx)

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.generation || e.closed {
		e.log.Debug("Discarding superseded question load", zap.Uint64("generation", gen))
		return domain.NewLoadSupersededError()
	}
	e.cancelLoad = nil
	if err != nil {
		e.log.Error("Failed to load quiz questions", zap.Error(err))
		return domain.NewLoadError("quiz questions", err)
	}
	e.install(raw)
	return nil
}

// StartWith begins a fresh attempt from an already loaded question set.
// It supersedes any load still in flight.
func (e *Engine) StartWith(raw []domain.Question) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return domain.NewInvalidStateError("start on closed engine", e.state)
	}
	if e.cancelLoad != nil {
		e.cancelLoad()
		e.cancelLoad = nil
	}
	e.generation++
	e.install(raw)
	return nil
}

func (e *Engine) install(raw []domain.Question) {
	e.session = NewSession(raw, e.poolSize, e.rnd)
	e.options = nil
	e.state = domain.StateInProgress
	if e.session.Exhausted() {
		e.state = domain.StateFinished
	}
	e.log.Debug("Quiz session started",
		zap.Int("available", len(raw)),
		zap.Int("pool", e.session.Len()),
		zap.Int("max_score", e.session.MaxScore()),
	)
}

// Close tears the engine down. A load in flight is cancelled and its result
// ignored when it arrives.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancelLoad != nil {
		e.cancelLoad()
		e.cancelLoad = nil
	}
	e.generation++
	e.closed = true
}

// State returns the current lifecycle state.
func (e *Engine) State() domain.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Progress returns a snapshot of the running totals.
func (e *Engine) Progress() domain.Progress {
	e.mu.Lock()
	defer e.mu.Unlock()
	p := domain.Progress{State: e.state}
	if e.session != nil {
		p.Index = e.session.Index()
		p.Total = e.session.Len()
		p.Score = e.session.Score()
		p.MaxScore = e.session.MaxScore()
	}
	return p
}

// CurrentQuestionView returns the question under the cursor.
func (e *Engine) CurrentQuestionView() (domain.QuestionView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != domain.StateInProgress {
		return domain.QuestionView{}, domain.NewInvalidStateError("currentQuestionView", e.state)
	}
	q, points, _ := e.session.Current()
	return domain.QuestionView{
		Index:       e.session.Index(),
		Total:       e.session.Len(),
		Points:      points,
		Text:        q.Question,
		ImageToShow: PromptImage(q),
	}, nil
}

// BuildOptions generates a freshly shuffled option set for the current
// question. The set is kept until the question is answered so callers can
// refer to options by position.
func (e *Engine) BuildOptions() ([]domain.Option, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != domain.StateInProgress {
		return nil, domain.NewInvalidStateError("buildOptions", e.state)
	}
	e.options = nil
	return cloneOptions(e.currentOptions()), nil
}

// Options returns the option set of the current question, building it on
// first use.
func (e *Engine) Options() ([]domain.Option, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != domain.StateInProgress {
		return nil, domain.NewInvalidStateError("options", e.state)
	}
	return cloneOptions(e.currentOptions()), nil
}

// SubmitAnswer scores chosen against the current question, records it and
// advances. The session finishes when the pool is exhausted.
func (e *Engine) SubmitAnswer(chosen domain.Option) (domain.AnsweredItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != domain.StateInProgress {
		return domain.AnsweredItem{}, domain.NewInvalidStateError("submitAnswer", e.state)
	}
	return e.submit(chosen), nil
}

// SubmitOption answers with the option at index of the current option set.
func (e *Engine) SubmitOption(index int) (domain.AnsweredItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != domain.StateInProgress {
		return domain.AnsweredItem{}, domain.NewInvalidStateError("submitAnswer", e.state)
	}
	options := e.currentOptions()
	if index < 0 || index >= len(options) {
		return domain.AnsweredItem{}, domain.NewInvalidInputError("option index out of range").
			WithContext("options", len(options))
	}
	return e.submit(options[index]), nil
}

// currentOptions must be called with mu held and the engine in progress.
func (e *Engine) currentOptions() []domain.Option {
	if e.options == nil {
		q, _, _ := e.session.Current()
		e.options = BuildOptions(q, e.rnd, e.log)
	}
	return e.options
}

func (e *Engine) submit(chosen domain.Option) domain.AnsweredItem {
	item := e.session.record(chosen)
	e.options = nil
	if e.session.Exhausted() {
		e.state = domain.StateFinished
	}
	return item
}

// FinalReport projects the finished session.
func (e *Engine) FinalReport() (domain.Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != domain.StateFinished {
		return domain.Report{}, domain.NewInvalidStateError("finalReport", e.state)
	}
	return domain.Report{
		Score:     e.session.Score(),
		MaxScore:  e.session.MaxScore(),
		AnswerLog: e.session.AnswerLog(),
	}, nil
}

func cloneOptions(in []domain.Option) []domain.Option {
	out := make([]domain.Option, len(in))
	copy(out, in)
	return out
}
