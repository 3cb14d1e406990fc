package app

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"formquiz-service/internal/domain"
)

// SessionRepository abstracts where live quiz sessions are kept (in-memory, Redis, etc).
type SessionRepository interface {
	Put(session *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// QuizRepository loads quiz definitions (from cache/backing store).
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.QuizDefinition, error)
	// Invalidate drops any cached copy so the next GetQuiz reads the backing store.
	Invalidate(ctx context.Context, quizID string) error
}

// Option customizes a QuizService.
type Option func(*QuizService)

// WithClock replaces time.Now for deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *QuizService) { s.now = now }
}

// WithScheduler replaces the ticker-backed countdown scheduler.
func WithScheduler(scheduler Scheduler) Option {
	return func(s *QuizService) { s.scheduler = scheduler }
}

// WithRandSeed makes question and option shuffling reproducible.
func WithRandSeed(seed int64) Option {
	return func(s *QuizService) {
		s.newRand = func() *rand.Rand { return rand.New(rand.NewSource(seed)) }
	}
}

// WithRecordTimeout bounds how long persisting a completed attempt may take.
func WithRecordTimeout(d time.Duration) Option {
	return func(s *QuizService) { s.recordTimeout = d }
}

// QuizService contains the quiz-taking use cases.
type QuizService struct {
	sessions      SessionRepository
	quizzes       QuizRepository
	attempts      *AttemptLog
	now           func() time.Time
	scheduler     Scheduler
	newRand       func() *rand.Rand
	recordTimeout time.Duration
}

func NewQuizService(sessions SessionRepository, quizzes QuizRepository, attempts *AttemptLog, opts ...Option) *QuizService {
	s := &QuizService{
		sessions:      sessions,
		quizzes:       quizzes,
		attempts:      attempts,
		now:           time.Now,
		scheduler:     NewTickerScheduler(),
		newRand:       func() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) },
		recordTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the quiz and begins a timed attempt for the participant.
// Refusals (ErrQuizUnavailable, ErrAttemptsExhausted) create no session.
func (s *QuizService) Start(ctx context.Context, quizID, participantID string) (SessionView, error) {
	quiz, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return SessionView{}, err
	}
	used, err := s.attempts.Count(ctx, quizID, participantID)
	if err != nil {
		return SessionView{}, err
	}

	session := NewSession(quiz, SessionOptions{
		ParticipantID: participantID,
		AttemptsUsed:  used,
		Now:           s.now,
		Scheduler:     s.scheduler,
		Rand:          s.newRand(),
		Record:        s.recordAttempt,
	})
	view, err := session.Start()
	if err != nil {
		return view, err
	}
	s.sessions.Put(session)
	log.Printf("quiz %s: session %s started (attempt %d/%d)", quizID, session.ID(), view.AttemptsUsed, view.MaxAttempts)
	return view, nil
}

// Answer records the answer to the session's current question.
func (s *QuizService) Answer(_ context.Context, sessionID, value string) (SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return session.Answer(value)
}

// Next moves to the following question.
func (s *QuizService) Next(_ context.Context, sessionID string) (SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return session.Next()
}

// Previous moves to the preceding question.
func (s *QuizService) Previous(_ context.Context, sessionID string) (SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return session.Previous()
}

// JumpTo moves to the question at index.
func (s *QuizService) JumpTo(_ context.Context, sessionID string, index int) (SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return session.JumpTo(index)
}

// Submit scores and completes the current attempt.
func (s *QuizService) Submit(_ context.Context, sessionID string) (domain.QuizAttempt, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return domain.QuizAttempt{}, err
	}
	return session.Submit()
}

// Retake starts a new attempt from a completed session.
func (s *QuizService) Retake(_ context.Context, sessionID string) (SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return session.Retake()
}

// View returns the current snapshot of a session.
func (s *QuizService) View(_ context.Context, sessionID string) (SessionView, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return session.View(), nil
}

// Subscribe returns a channel that receives session views on every change and tick.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *QuizService) Subscribe(_ context.Context, sessionID string) (<-chan SessionView, func(), error) {
	session, err := s.session(sessionID)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := session.Subscribe()
	return ch, cancel, nil
}

// Close stops the session's countdown and forgets the session.
func (s *QuizService) Close(_ context.Context, sessionID string) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	session.Close()
	s.sessions.Delete(sessionID)
}

// ReloadQuiz discards the cached definition and loads it again. Sessions already running
// keep the definition they started with.
func (s *QuizService) ReloadQuiz(ctx context.Context, quizID string) (domain.QuizDefinition, error) {
	if err := s.quizzes.Invalidate(ctx, quizID); err != nil {
		return domain.QuizDefinition{}, fmt.Errorf("invalidate quiz %s: %w", quizID, err)
	}
	quiz, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return domain.QuizDefinition{}, err
	}
	log.Printf("quiz %s: definition reloaded (%d questions)", quizID, len(quiz.Questions))
	return quiz, nil
}

// Attempts lists the attempt log of a quiz.
func (s *QuizService) Attempts(ctx context.Context, quizID string) ([]domain.QuizAttempt, error) {
	return s.attempts.List(ctx, quizID)
}

func (s *QuizService) session(sessionID string) (*Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *QuizService) recordAttempt(attempt domain.QuizAttempt) {
	ctx, cancel := context.WithTimeout(context.Background(), s.recordTimeout)
	defer cancel()
	if err := s.attempts.Record(ctx, attempt); err != nil {
		log.Printf("quiz %s: record attempt %s: %v", attempt.QuizID, attempt.ID, err)
		return
	}
	log.Printf("quiz %s: attempt %d scored %d/%d (%d%%, passed=%v, timeExpired=%v)",
		attempt.QuizID, attempt.AttemptNumber, attempt.Score, attempt.TotalPoints,
		attempt.Percentage, attempt.Passed, attempt.TimeExpired)
}
