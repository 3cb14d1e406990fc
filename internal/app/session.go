package app

import (
	"math/rand"
	"sync"
	"time"

	"formquiz-service/internal/domain"
	"github.com/google/uuid"
)

// Status is the lifecycle state of a quiz session.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// QuestionView is a question as shown to the participant, without its answer key.
type QuestionView struct {
	ID               string              `json:"id"`
	Type             domain.QuestionType `json:"type"`
	Question         string              `json:"question"`
	Options          []string            `json:"options,omitempty"`
	Points           int                 `json:"points"`
	TimeLimitSeconds int                 `json:"timeLimitSeconds,omitempty"`
}

// SessionView is a snapshot of a session for the presentation layer.
type SessionView struct {
	SessionID     string              `json:"sessionId"`
	QuizID        string              `json:"quizId"`
	Status        Status              `json:"status"`
	Question      *QuestionView       `json:"question,omitempty"`
	CurrentIndex  int                 `json:"currentIndex"`
	QuestionCount int                 `json:"questionCount"`
	TimeRemaining int                 `json:"timeRemaining"`
	Progress      float64             `json:"progress"`
	Answers       map[string]string   `json:"answers"`
	AttemptsUsed  int                 `json:"attemptsUsed"`
	MaxAttempts   int                 `json:"maxAttempts"`
	CanRetake     bool                `json:"canRetake"`
	ResultsHidden bool                `json:"resultsHidden,omitempty"`
	Attempt       *domain.QuizAttempt `json:"attempt,omitempty"`
}

// SessionOptions carries the collaborators a session needs.
type SessionOptions struct {
	ParticipantID string
	AttemptsUsed  int
	Now           func() time.Time
	Scheduler     Scheduler
	Rand          *rand.Rand
	// Record receives every completed attempt, outside the session lock.
	Record func(domain.QuizAttempt)
}

// Session drives one participant through timed attempts of a single quiz.
type Session struct {
	id            string
	participantID string
	quiz          domain.QuizDefinition
	now           func() time.Time
	scheduler     Scheduler
	rnd           *rand.Rand
	record        func(domain.QuizAttempt)

	mu           sync.Mutex
	status       Status
	questions    []domain.QuizQuestion
	current      int
	answers      map[string]string
	timer        *countdown
	remaining    int
	startedAt    time.Time
	attemptsUsed int
	attempt      *domain.QuizAttempt
	closed       bool
	subscribers  map[chan SessionView]struct{}
}

// NewSession creates a session in the NotStarted state.
func NewSession(quiz domain.QuizDefinition, opts SessionOptions) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewTickerScheduler()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		id:            uuid.NewString(),
		participantID: opts.ParticipantID,
		quiz:          quiz,
		now:           opts.Now,
		scheduler:     opts.Scheduler,
		rnd:           opts.Rand,
		record:        opts.Record,
		status:        StatusNotStarted,
		answers:       make(map[string]string),
		attemptsUsed:  opts.AttemptsUsed,
		subscribers:   make(map[chan SessionView]struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// QuizID returns the id of the quiz being attempted.
func (s *Session) QuizID() string {
	return s.quiz.ID
}

// Start enters InProgress. Refusals leave the session untouched.
func (s *Session) Start() (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusNotStarted {
		return s.snapshotLocked(), domain.ErrNotInProgress
	}
	if err := s.quiz.Validate(); err != nil {
		return s.snapshotLocked(), err
	}
	if !s.quiz.Available(s.now()) {
		return s.snapshotLocked(), domain.ErrQuizUnavailable
	}
	if s.attemptsUsed >= s.quiz.Settings.MaxAttempts {
		return s.snapshotLocked(), domain.ErrAttemptsExhausted
	}
	s.beginAttemptLocked()
	return s.broadcastLocked(), nil
}

// Retake resets a completed session to a fresh attempt.
func (s *Session) Retake() (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusCompleted {
		return s.snapshotLocked(), domain.ErrNotCompleted
	}
	if !s.quiz.Settings.AllowRetakes {
		return s.snapshotLocked(), domain.ErrRetakeNotAllowed
	}
	if s.attemptsUsed >= s.quiz.Settings.MaxAttempts {
		return s.snapshotLocked(), domain.ErrAttemptsExhausted
	}
	s.beginAttemptLocked()
	return s.broadcastLocked(), nil
}

func (s *Session) beginAttemptLocked() {
	s.timer.stop()
	s.timer = nil

	s.attemptsUsed++
	s.status = StatusInProgress
	s.current = 0
	s.answers = make(map[string]string)
	s.attempt = nil
	s.questions = s.orderQuestionsLocked()
	s.startedAt = s.now()
	s.remaining = s.quiz.Settings.TimeLimitMinutes * 60

	c := &countdown{remaining: s.remaining}
	c.cancel = s.scheduler.Every(time.Second, func() { s.tick(c) })
	s.timer = c
}

func (s *Session) orderQuestionsLocked() []domain.QuizQuestion {
	questions := make([]domain.QuizQuestion, len(s.quiz.Questions))
	copy(questions, s.quiz.Questions)
	if s.quiz.Settings.RandomizeQuestions {
		s.rnd.Shuffle(len(questions), func(i, j int) { questions[i], questions[j] = questions[j], questions[i] })
	}
	if s.quiz.Settings.RandomizeOptions {
		for i := range questions {
			if questions[i].Type != domain.QuestionMultipleChoice {
				continue
			}
			options := append([]string(nil), questions[i].Options...)
			s.rnd.Shuffle(len(options), func(a, b int) { options[a], options[b] = options[b], options[a] })
			questions[i].Options = options
		}
	}
	return questions
}

func (s *Session) tick(c *countdown) {
	s.mu.Lock()
	if s.timer != c || s.status != StatusInProgress {
		s.mu.Unlock()
		return
	}
	c.remaining--
	s.remaining = c.remaining
	if c.remaining > 0 {
		s.broadcastLocked()
		s.mu.Unlock()
		return
	}
	attempt := s.completeLocked(true)
	s.broadcastLocked()
	s.mu.Unlock()

	s.emit(attempt)
}

// Answer records or overwrites the answer to the current question.
func (s *Session) Answer(value string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusInProgress {
		return s.snapshotLocked(), domain.ErrNotInProgress
	}
	s.answers[s.questions[s.current].ID] = value
	return s.broadcastLocked(), nil
}

// Next moves forward one question, staying on the last one.
func (s *Session) Next() (SessionView, error) {
	return s.navigate(func(current, count int) int { return min(current+1, count-1) })
}

// Previous moves back one question, staying on the first one.
func (s *Session) Previous() (SessionView, error) {
	return s.navigate(func(current, _ int) int { return max(current-1, 0) })
}

// JumpTo moves to an arbitrary question.
func (s *Session) JumpTo(index int) (SessionView, error) {
	s.mu.Lock()
	if s.status == StatusInProgress && (index < 0 || index >= len(s.questions)) {
		view := s.snapshotLocked()
		s.mu.Unlock()
		return view, domain.ErrQuestionIndex
	}
	s.mu.Unlock()
	return s.navigate(func(int, int) int { return index })
}

func (s *Session) navigate(next func(current, count int) int) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusInProgress {
		return s.snapshotLocked(), domain.ErrNotInProgress
	}
	s.current = next(s.current, len(s.questions))
	return s.broadcastLocked(), nil
}

// Submit scores the attempt and completes the session.
func (s *Session) Submit() (domain.QuizAttempt, error) {
	s.mu.Lock()
	if s.status != StatusInProgress {
		s.mu.Unlock()
		return domain.QuizAttempt{}, domain.ErrNotInProgress
	}
	attempt := s.completeLocked(false)
	s.broadcastLocked()
	s.mu.Unlock()

	s.emit(attempt)
	return attempt, nil
}

func (s *Session) completeLocked(timeExpired bool) domain.QuizAttempt {
	s.timer.stop()
	s.timer = nil

	completedAt := s.now()
	records, score, total := scoreAnswers(s.questions, s.answers)
	percentage := Percentage(score, total)
	attempt := domain.QuizAttempt{
		ID:               uuid.NewString(),
		QuizID:           s.quiz.ID,
		SessionID:        s.id,
		ParticipantID:    s.participantID,
		Score:            score,
		TotalPoints:      total,
		Percentage:       percentage,
		TimeSpentSeconds: int(completedAt.Sub(s.startedAt) / time.Second),
		Answers:          records,
		Passed:           percentage >= s.quiz.Settings.PassingScorePercent,
		TimeExpired:      timeExpired,
		StartedAt:        s.startedAt,
		CompletedAt:      completedAt,
		AttemptNumber:    s.attemptsUsed,
	}
	s.status = StatusCompleted
	s.attempt = &attempt
	return attempt
}

func (s *Session) emit(attempt domain.QuizAttempt) {
	if s.record != nil {
		s.record(attempt)
	}
}

// View returns the current snapshot.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close cancels the countdown and releases subscribers.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.stop()
	s.timer = nil
	s.closed = true
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
}

// Subscribe returns a channel of views published on every change and tick.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *Session) Subscribe() (<-chan SessionView, func()) {
	ch := make(chan SessionView, 8)

	s.mu.Lock()
	initial := s.snapshotLocked()
	if s.closed {
		s.mu.Unlock()
		ch <- initial
		close(ch)
		return ch, func() {}
	}
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) broadcastLocked() SessionView {
	view := s.snapshotLocked()
	for ch := range s.subscribers {
		select {
		case ch <- view:
		default:
			// drop the oldest view so slow readers never block the timer
			select {
			case <-ch:
			default:
			}
			ch <- view
		}
	}
	return view
}

func (s *Session) snapshotLocked() SessionView {
	view := SessionView{
		SessionID:     s.id,
		QuizID:        s.quiz.ID,
		Status:        s.status,
		CurrentIndex:  s.current,
		QuestionCount: len(s.quiz.Questions),
		TimeRemaining: s.remaining,
		Answers:       make(map[string]string, len(s.answers)),
		AttemptsUsed:  s.attemptsUsed,
		MaxAttempts:   s.quiz.Settings.MaxAttempts,
	}
	for id, answer := range s.answers {
		view.Answers[id] = answer
	}
	if s.status == StatusInProgress && len(s.questions) > 0 {
		q := s.questions[s.current]
		view.Question = &QuestionView{
			ID:               q.ID,
			Type:             q.Type,
			Question:         q.Question,
			Options:          append([]string(nil), q.Options...),
			Points:           q.Points,
			TimeLimitSeconds: q.TimeLimitSeconds,
		}
		view.Progress = float64(len(s.answers)) / float64(len(s.questions))
	}
	if s.status == StatusCompleted && s.attempt != nil {
		attempt := *s.attempt
		if !s.quiz.Settings.ShowResultsImmediately {
			attempt.Answers = nil
			view.ResultsHidden = true
		}
		view.Attempt = &attempt
		view.Progress = 1
		view.CanRetake = s.quiz.Settings.AllowRetakes && s.attemptsUsed < s.quiz.Settings.MaxAttempts
	}
	return view
}
