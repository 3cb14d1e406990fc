package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"formquiz-service/internal/app"
	"formquiz-service/internal/domain"
	"formquiz-service/internal/infra/memory"
)

func TestSubmitScoresAndRecords(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, sampleQuiz())

	view, err := env.service.Start(ctx, "quiz-1", "u1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if view.Status != app.StatusInProgress || view.TimeRemaining != 60 || view.AttemptsUsed != 1 {
		t.Fatalf("unexpected start view %+v", view)
	}
	if view.Question == nil || view.Question.ID != "q1" {
		t.Fatalf("expected first question, got %+v", view.Question)
	}

	id := view.SessionID
	mustView(t)(env.service.Answer(ctx, id, "4"))
	mustView(t)(env.service.Next(ctx, id))
	mustView(t)(env.service.Answer(ctx, id, "true"))
	mustView(t)(env.service.Next(ctx, id))
	mustView(t)(env.service.Answer(ctx, id, " paris "))

	env.advance(42 * time.Second)
	attempt, err := env.service.Submit(ctx, id)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if attempt.Score != 4 || attempt.TotalPoints != 4 || attempt.Percentage != 100 || !attempt.Passed {
		t.Fatalf("unexpected attempt %+v", attempt)
	}
	if attempt.TimeExpired || attempt.TimeSpentSeconds != 42 || attempt.AttemptNumber != 1 {
		t.Fatalf("unexpected attempt metadata %+v", attempt)
	}

	if _, err := env.service.Submit(ctx, id); !errors.Is(err, domain.ErrNotInProgress) {
		t.Fatalf("expected second submit refused, got %v", err)
	}

	logged, err := env.service.Attempts(ctx, "quiz-1")
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if len(logged) != 1 || logged[0].ID != attempt.ID {
		t.Fatalf("expected the attempt to be logged once, got %+v", logged)
	}
	if env.scheduler.activeCount() != 0 {
		t.Fatalf("expected countdown cancelled after submit")
	}
}

func TestPassedBoundaries(t *testing.T) {
	// one of two equally weighted questions answered correctly: 50%
	for _, passing := range []int{0, 1, 49, 50, 51, 99, 100} {
		quiz := sampleQuiz()
		quiz.Questions = quiz.Questions[:2]
		quiz.Settings.PassingScorePercent = passing
		env := newTestEnv(t, quiz)
		ctx := context.Background()

		view, err := env.service.Start(ctx, "quiz-1", "u1")
		if err != nil {
			t.Fatalf("start: %v", err)
		}
		mustView(t)(env.service.Answer(ctx, view.SessionID, "4"))
		attempt, err := env.service.Submit(ctx, view.SessionID)
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if attempt.Percentage != 50 {
			t.Fatalf("expected 50%%, got %d", attempt.Percentage)
		}
		if want := 50 >= passing; attempt.Passed != want {
			t.Errorf("passing=%d: passed=%v, want %v", passing, attempt.Passed, want)
		}
	}
}

func TestStartRefusedWhenAttemptsExhausted(t *testing.T) {
	ctx := context.Background()
	quiz := sampleQuiz()
	quiz.Settings.MaxAttempts = 2
	env := newTestEnv(t, quiz)
	seedCount(t, env.store, "quiz:quiz-1:attempt-count:u1", 2)

	view, err := env.service.Start(ctx, "quiz-1", "u1")
	if !errors.Is(err, domain.ErrAttemptsExhausted) {
		t.Fatalf("expected attempts exhausted, got %v", err)
	}
	if view.AttemptsUsed != 2 || view.Status != app.StatusNotStarted {
		t.Fatalf("expected untouched view, got %+v", view)
	}
	if !domain.IsRefusal(err) {
		t.Fatalf("expected refusal classification")
	}
	used, _ := app.NewAttemptLog(env.store).Count(ctx, "quiz-1", "u1")
	if used != 2 {
		t.Fatalf("expected persisted count unchanged, got %d", used)
	}
	if env.sessions.Len() != 0 || env.scheduler.activeCount() != 0 {
		t.Fatalf("refusal must not create a session or timer")
	}
}

func TestStartRefusedWhenUnavailable(t *testing.T) {
	past := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		mutate func(q *domain.QuizDefinition)
	}{
		{name: "inactive", mutate: func(q *domain.QuizDefinition) { q.Settings.IsActive = false }},
		{name: "expired", mutate: func(q *domain.QuizDefinition) { q.Settings.ExpiresAt = &past }},
		{name: "empty", mutate: func(q *domain.QuizDefinition) { q.Questions = nil }},
		{name: "choice without options", mutate: func(q *domain.QuizDefinition) { q.Questions[0].Options = []string{} }},
		{name: "unknown question type", mutate: func(q *domain.QuizDefinition) { q.Questions[2].Type = "essay" }},
		{name: "blank question text", mutate: func(q *domain.QuizDefinition) { q.Questions[1].Question = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := sampleQuiz()
			tt.mutate(&quiz)
			env := newTestEnv(t, quiz)
			_, err := env.service.Start(context.Background(), "quiz-1", "u1")
			if !errors.Is(err, domain.ErrQuizUnavailable) {
				t.Fatalf("expected unavailable, got %v", err)
			}
		})
	}
}

func TestTimeoutForcesSubmit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, sampleQuiz())

	view, err := env.service.Start(ctx, "quiz-1", "u1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	mustView(t)(env.service.Answer(ctx, view.SessionID, "4"))

	env.scheduler.fire(59)
	current, _ := env.service.View(ctx, view.SessionID)
	if current.Status != app.StatusInProgress || current.TimeRemaining != 1 {
		t.Fatalf("expected 1 second left, got %+v", current)
	}

	env.advance(60 * time.Second)
	env.scheduler.fire(1)
	current, _ = env.service.View(ctx, view.SessionID)
	if current.Status != app.StatusCompleted || current.Attempt == nil {
		t.Fatalf("expected forced completion, got %+v", current)
	}
	attempt := current.Attempt
	if !attempt.TimeExpired || attempt.TimeSpentSeconds != 60 {
		t.Fatalf("expected expired attempt after 60s, got %+v", attempt)
	}
	if attempt.Score != 1 || attempt.Percentage != 25 {
		t.Fatalf("expected 1/4 points, got %d (%d%%)", attempt.Score, attempt.Percentage)
	}
	for _, answer := range attempt.Answers[1:] {
		if answer.IsCorrect || answer.Points != 0 {
			t.Fatalf("expected unanswered question to score 0, got %+v", answer)
		}
	}
	if env.scheduler.activeCount() != 0 {
		t.Fatalf("expected countdown cancelled on timeout")
	}

	logged, _ := env.service.Attempts(ctx, "quiz-1")
	if len(logged) != 1 || !logged[0].TimeExpired {
		t.Fatalf("expected timed-out attempt logged, got %+v", logged)
	}
}

func TestRetakeResetsSession(t *testing.T) {
	ctx := context.Background()
	quiz := sampleQuiz()
	quiz.Settings.AllowRetakes = true
	quiz.Settings.MaxAttempts = 3
	env := newTestEnv(t, quiz)

	view, err := env.service.Start(ctx, "quiz-1", "u1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	id := view.SessionID
	mustView(t)(env.service.Answer(ctx, id, "4"))
	mustView(t)(env.service.JumpTo(ctx, id, 2))
	mustView(t)(env.service.Answer(ctx, id, "Paris"))
	env.scheduler.fire(5)
	if _, err := env.service.Submit(ctx, id); err != nil {
		t.Fatalf("submit: %v", err)
	}

	before, _ := env.service.View(ctx, id)
	if !before.CanRetake {
		t.Fatalf("expected retake to be offered")
	}
	after, err := env.service.Retake(ctx, id)
	if err != nil {
		t.Fatalf("retake: %v", err)
	}
	if after.CurrentIndex != 0 || len(after.Answers) != 0 {
		t.Fatalf("expected reset index and answers, got %+v", after)
	}
	if after.AttemptsUsed != before.AttemptsUsed+1 {
		t.Fatalf("expected attempts to grow by one: %d -> %d", before.AttemptsUsed, after.AttemptsUsed)
	}
	if after.TimeRemaining != 60 || after.Attempt != nil {
		t.Fatalf("expected fresh countdown, got %+v", after)
	}
}

func TestSingleCountdownAcrossRetakes(t *testing.T) {
	ctx := context.Background()
	quiz := sampleQuiz()
	quiz.Settings.AllowRetakes = true
	quiz.Settings.MaxAttempts = 3
	env := newTestEnv(t, quiz)

	view, _ := env.service.Start(ctx, "quiz-1", "u1")
	id := view.SessionID
	if env.scheduler.activeCount() != 1 {
		t.Fatalf("expected one countdown after start, got %d", env.scheduler.activeCount())
	}
	_, _ = env.service.Submit(ctx, id)
	if env.scheduler.activeCount() != 0 {
		t.Fatalf("expected no countdown after submit, got %d", env.scheduler.activeCount())
	}
	_, _ = env.service.Retake(ctx, id)
	if env.scheduler.activeCount() != 1 {
		t.Fatalf("expected one countdown after retake, got %d", env.scheduler.activeCount())
	}

	env.scheduler.fire(1)
	current, _ := env.service.View(ctx, id)
	if current.TimeRemaining != 59 {
		t.Fatalf("expected a single decrement, got %d", current.TimeRemaining)
	}

	// a stale handle from the first attempt must not decrement the new countdown
	env.scheduler.fireCancelled()
	current, _ = env.service.View(ctx, id)
	if current.TimeRemaining != 59 {
		t.Fatalf("stale countdown decremented the new attempt: %d", current.TimeRemaining)
	}

	attempt, _ := env.service.Submit(ctx, id)
	if attempt.AttemptNumber != 2 {
		t.Fatalf("expected second attempt, got %d", attempt.AttemptNumber)
	}
	if env.scheduler.activeCount() != 0 {
		t.Fatalf("expected no countdown after final submit")
	}
}

func TestRetakeRefusals(t *testing.T) {
	ctx := context.Background()

	env := newTestEnv(t, sampleQuiz())
	view, _ := env.service.Start(ctx, "quiz-1", "u1")
	if _, err := env.service.Retake(ctx, view.SessionID); !errors.Is(err, domain.ErrNotCompleted) {
		t.Fatalf("expected retake before submit refused, got %v", err)
	}
	_, _ = env.service.Submit(ctx, view.SessionID)
	if _, err := env.service.Retake(ctx, view.SessionID); !errors.Is(err, domain.ErrRetakeNotAllowed) {
		t.Fatalf("expected retakes disallowed, got %v", err)
	}

	quiz := sampleQuiz()
	quiz.Settings.AllowRetakes = true
	quiz.Settings.MaxAttempts = 1
	env = newTestEnv(t, quiz)
	view, _ = env.service.Start(ctx, "quiz-1", "u1")
	_, _ = env.service.Submit(ctx, view.SessionID)
	completed, err := env.service.Retake(ctx, view.SessionID)
	if !errors.Is(err, domain.ErrAttemptsExhausted) {
		t.Fatalf("expected attempts exhausted, got %v", err)
	}
	if completed.Status != app.StatusCompleted || completed.AttemptsUsed != 1 {
		t.Fatalf("expected completed session untouched, got %+v", completed)
	}
}

func TestAttemptNumberPersistsAcrossSessions(t *testing.T) {
	ctx := context.Background()
	quiz := sampleQuiz()
	quiz.Settings.MaxAttempts = 2
	env := newTestEnv(t, quiz)

	for want := 1; want <= 2; want++ {
		view, err := env.service.Start(ctx, "quiz-1", "u1")
		if err != nil {
			t.Fatalf("start %d: %v", want, err)
		}
		attempt, err := env.service.Submit(ctx, view.SessionID)
		if err != nil {
			t.Fatalf("submit %d: %v", want, err)
		}
		if attempt.AttemptNumber != want {
			t.Fatalf("expected attempt %d, got %d", want, attempt.AttemptNumber)
		}
		env.service.Close(ctx, view.SessionID)
	}
	if _, err := env.service.Start(ctx, "quiz-1", "u1"); !errors.Is(err, domain.ErrAttemptsExhausted) {
		t.Fatalf("expected third start refused, got %v", err)
	}
	if _, err := env.service.Start(ctx, "quiz-1", "u2"); err != nil {
		t.Fatalf("other participants keep their own count: %v", err)
	}
}

func TestProgressCountsAnsweredQuestions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, sampleQuiz())
	view, err := env.service.Start(ctx, "quiz-1", "u1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	id := view.SessionID
	if view.Progress != 0 {
		t.Fatalf("expected no progress before answering, got %v", view.Progress)
	}

	mustView(t)(env.service.Answer(ctx, id, "4"))
	view = mustView(t)(env.service.Answer(ctx, id, "5"))
	if view.Progress != 1.0/3 {
		t.Fatalf("overwriting an answer must not count twice, got %v", view.Progress)
	}
	view = mustView(t)(env.service.JumpTo(ctx, id, 2))
	if view.Progress != 1.0/3 {
		t.Fatalf("navigation must not change progress, got %v", view.Progress)
	}
	view = mustView(t)(env.service.Answer(ctx, id, "Paris"))
	if view.Progress != 2.0/3 {
		t.Fatalf("expected two of three answered, got %v", view.Progress)
	}

	if _, err := env.service.Submit(ctx, id); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if done := mustView(t)(env.service.View(ctx, id)); done.Progress != 1 {
		t.Fatalf("expected full progress once completed, got %v", done.Progress)
	}
}

type swappableLoader struct {
	mu   sync.Mutex
	quiz domain.QuizDefinition
}

func (l *swappableLoader) set(quiz domain.QuizDefinition) {
	l.mu.Lock()
	l.quiz = quiz
	l.mu.Unlock()
}

func (l *swappableLoader) LoadQuiz(_ context.Context, quizID string) (domain.QuizDefinition, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if quizID != l.quiz.ID {
		return domain.QuizDefinition{}, domain.ErrQuizNotFound
	}
	return domain.NormalizeQuiz(l.quiz), nil
}

func TestReloadQuizPicksUpNewDefinition(t *testing.T) {
	ctx := context.Background()
	loader := &swappableLoader{quiz: sampleQuiz()}
	service := app.NewQuizService(memory.NewSessionStore(), memory.NewQuizRepository(loader, time.Hour),
		app.NewAttemptLog(memory.NewStore()), app.WithScheduler(newManualScheduler()))

	first, err := service.Start(ctx, "quiz-1", "u1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	changed := sampleQuiz()
	changed.Settings.TimeLimitMinutes = 5
	loader.set(changed)

	cached, err := service.Start(ctx, "quiz-1", "u2")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if cached.TimeRemaining != 60 {
		t.Fatalf("expected cached definition before reload, got %ds", cached.TimeRemaining)
	}

	reloaded, err := service.ReloadQuiz(ctx, "quiz-1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Settings.TimeLimitMinutes != 5 {
		t.Fatalf("expected reloaded definition, got %+v", reloaded.Settings)
	}
	fresh, err := service.Start(ctx, "quiz-1", "u3")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if fresh.TimeRemaining != 300 {
		t.Fatalf("expected new time limit after reload, got %ds", fresh.TimeRemaining)
	}
	if view := mustView(t)(service.View(ctx, first.SessionID)); view.TimeRemaining != 60 {
		t.Fatalf("running session must keep its definition, got %ds", view.TimeRemaining)
	}

	if _, err := service.ReloadQuiz(ctx, "missing"); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestNavigationBounds(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, sampleQuiz())
	view, _ := env.service.Start(ctx, "quiz-1", "u1")
	id := view.SessionID

	prev, _ := env.service.Previous(ctx, id)
	if prev.CurrentIndex != 0 {
		t.Fatalf("expected to stay on first question, got %d", prev.CurrentIndex)
	}
	for i := 0; i < 5; i++ {
		view, _ = env.service.Next(ctx, id)
	}
	if view.CurrentIndex != 2 || view.Progress != 0 {
		t.Fatalf("expected to stop on last question with nothing answered, got %+v", view)
	}
	if _, err := env.service.JumpTo(ctx, id, 3); !errors.Is(err, domain.ErrQuestionIndex) {
		t.Fatalf("expected out of range jump refused, got %v", err)
	}
	jumped, err := env.service.JumpTo(ctx, id, 1)
	if err != nil || jumped.CurrentIndex != 1 || jumped.Question.ID != "q2" {
		t.Fatalf("expected jump to q2, got %+v (%v)", jumped, err)
	}
	if _, err := env.service.Answer(ctx, "missing", "x"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session not found, got %v", err)
	}
}

func TestAnswerIsNotTypeChecked(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, sampleQuiz())
	view, _ := env.service.Start(ctx, "quiz-1", "u1")

	updated, err := env.service.Answer(ctx, view.SessionID, "free text on a multiple-choice question")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if updated.Answers["q1"] == "" {
		t.Fatalf("expected answer recorded")
	}
}

func TestHiddenResults(t *testing.T) {
	ctx := context.Background()
	quiz := sampleQuiz()
	quiz.Settings.ShowResultsImmediately = false
	env := newTestEnv(t, quiz)
	view, _ := env.service.Start(ctx, "quiz-1", "u1")
	_, _ = env.service.Submit(ctx, view.SessionID)

	done, _ := env.service.View(ctx, view.SessionID)
	if !done.ResultsHidden || done.Attempt == nil || done.Attempt.Answers != nil {
		t.Fatalf("expected per-question review hidden, got %+v", done.Attempt)
	}
}

func TestRandomizationKeepsQuestions(t *testing.T) {
	ctx := context.Background()
	quiz := sampleQuiz()
	quiz.Settings.RandomizeQuestions = true
	quiz.Settings.RandomizeOptions = true
	env := newTestEnv(t, quiz, app.WithRandSeed(7))

	view, _ := env.service.Start(ctx, "quiz-1", "u1")
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		current, _ := env.service.JumpTo(ctx, view.SessionID, i)
		seen[current.Question.ID] = true
		if current.Question.Type == domain.QuestionTrueFalse && current.Question.Options[0] != "True" {
			t.Fatalf("true-false options must not be shuffled: %v", current.Question.Options)
		}
	}
	if len(seen) != 3 {
		t.Fatalf("expected every question once, got %v", seen)
	}
}

func TestSubscribeReceivesTicks(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, sampleQuiz())
	view, _ := env.service.Start(ctx, "quiz-1", "u1")

	ch, cancel, err := env.service.Subscribe(ctx, view.SessionID)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer cancel()
	<-ch // initial snapshot

	env.scheduler.fire(1)
	update := <-ch
	if update.TimeRemaining != 59 {
		t.Fatalf("expected tick update, got %+v", update)
	}

	env.service.Close(ctx, view.SessionID)
	if _, ok := <-ch; ok {
		t.Fatalf("expected channel closed after session close")
	}
	if _, err := env.service.View(ctx, view.SessionID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected closed session forgotten, got %v", err)
	}
}

type testEnv struct {
	service   *app.QuizService
	store     *memory.Store
	sessions  *memory.SessionStore
	scheduler *manualScheduler

	mu  sync.Mutex
	now time.Time
}

func newTestEnv(t *testing.T, quiz domain.QuizDefinition, opts ...app.Option) *testEnv {
	t.Helper()
	env := &testEnv{
		store:     memory.NewStore(),
		sessions:  memory.NewSessionStore(),
		scheduler: newManualScheduler(),
		now:       time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	quizzes := memory.NewQuizRepository(memory.NewStaticQuizLoader(map[string]domain.QuizDefinition{
		quiz.ID: quiz,
	}), 5*time.Minute)
	opts = append([]app.Option{app.WithClock(env.clock), app.WithScheduler(env.scheduler)}, opts...)
	env.service = app.NewQuizService(env.sessions, quizzes, app.NewAttemptLog(env.store), opts...)
	return env
}

func (e *testEnv) clock() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.now
}

func (e *testEnv) advance(d time.Duration) {
	e.mu.Lock()
	e.now = e.now.Add(d)
	e.mu.Unlock()
}

func mustView(t *testing.T) func(app.SessionView, error) app.SessionView {
	t.Helper()
	return func(view app.SessionView, err error) app.SessionView {
		t.Helper()
		if err != nil {
			t.Fatalf("command failed: %v", err)
		}
		return view
	}
}

func seedCount(t *testing.T, store app.Store, key string, count int) {
	t.Helper()
	raw, _ := json.Marshal(count)
	if err := store.Set(context.Background(), key, raw); err != nil {
		t.Fatalf("seed count: %v", err)
	}
}

// manualScheduler fires scheduled callbacks only when the test asks it to.
type manualScheduler struct {
	mu        sync.Mutex
	next      int
	active    map[int]func()
	cancelled []func()
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{active: make(map[int]func())}
}

func (m *manualScheduler) Every(_ time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.next
	m.next++
	m.active[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if f, ok := m.active[id]; ok {
			delete(m.active, id)
			m.cancelled = append(m.cancelled, f)
		}
	}
}

func (m *manualScheduler) fire(n int) {
	for i := 0; i < n; i++ {
		m.mu.Lock()
		fns := make([]func(), 0, len(m.active))
		for _, fn := range m.active {
			fns = append(fns, fn)
		}
		m.mu.Unlock()
		for _, fn := range fns {
			fn()
		}
	}
}

// fireCancelled simulates a late tick racing with cancellation.
func (m *manualScheduler) fireCancelled() {
	m.mu.Lock()
	fns := append([]func(){}, m.cancelled...)
	m.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (m *manualScheduler) activeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.active)
}

func sampleQuiz() domain.QuizDefinition {
	return domain.QuizDefinition{
		ID:    "quiz-1",
		Title: "General knowledge",
		Questions: []domain.QuizQuestion{
			{ID: "q1", Type: domain.QuestionMultipleChoice, Question: "What is 2 + 2?", Options: []string{"3", "4", "5"}, CorrectAnswer: "4", Points: 1},
			{ID: "q2", Type: domain.QuestionTrueFalse, Question: "The sky is blue.", CorrectAnswer: "True", Points: 1},
			{ID: "q3", Type: domain.QuestionShortAnswer, Question: "Capital of France?", CorrectAnswer: "Paris", Points: 2},
		},
		Settings: domain.QuizSettings{
			TimeLimitMinutes:       1,
			PassingScorePercent:    60,
			ShowResultsImmediately: true,
			IsActive:               true,
			MaxAttempts:            1,
		},
	}
}
