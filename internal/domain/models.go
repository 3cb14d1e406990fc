package domain

import "time"

// QuestionType enumerates the quiz question kinds the engine can score.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionTrueFalse      QuestionType = "true-false"
	QuestionShortAnswer    QuestionType = "short-answer"
)

// TrueFalseOptions is the fixed option list of a true-false question.
var TrueFalseOptions = []string{"True", "False"}

// QuizQuestion is one scored question of a quiz.
type QuizQuestion struct {
	ID               string       `json:"id" validate:"required"`
	Type             QuestionType `json:"type" validate:"required,oneof=multiple-choice true-false short-answer"`
	Question         string       `json:"question" validate:"required"`
	Options          []string     `json:"options,omitempty" validate:"required_if=Type multiple-choice,omitempty,min=1"`
	CorrectAnswer    string       `json:"correctAnswer"`
	Points           int          `json:"points" validate:"gte=0"`
	TimeLimitSeconds int          `json:"timeLimitSeconds,omitempty" validate:"gte=0"`
	Explanation      string       `json:"explanation,omitempty"`
}

// QuizSettings controls timing, scoring and availability of a quiz.
type QuizSettings struct {
	TimeLimitMinutes       int        `json:"timeLimitMinutes" validate:"gte=1"`
	PassingScorePercent    int        `json:"passingScorePercent" validate:"gte=0,lte=100"`
	ShowResultsImmediately bool       `json:"showResultsImmediately"`
	AllowRetakes           bool       `json:"allowRetakes"`
	RandomizeQuestions     bool       `json:"randomizeQuestions"`
	RandomizeOptions       bool       `json:"randomizeOptions"`
	IsActive               bool       `json:"isActive"`
	MaxAttempts            int        `json:"maxAttempts" validate:"gte=1"`
	ExpiresAt              *time.Time `json:"expiresAt,omitempty"`
}

// Branding is presentation metadata carried along with a quiz definition.
type Branding struct {
	PrimaryColor string `json:"primaryColor"`
	LogoURL      string `json:"logoUrl,omitempty"`
}

// QuizDefinition is the read-only input of a quiz session.
type QuizDefinition struct {
	ID          string         `json:"id" validate:"required"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []QuizQuestion `json:"questions" validate:"dive"`
	Settings    QuizSettings   `json:"settings"`
	Branding    *Branding      `json:"branding,omitempty"`
}

// TotalPoints sums the points of every question.
func (q QuizDefinition) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}

// Available reports whether the quiz may be attempted at the given instant.
// Definitions that fail Validate are never available.
func (q QuizDefinition) Available(now time.Time) bool {
	if !q.Settings.IsActive || q.Validate() != nil {
		return false
	}
	if q.Settings.ExpiresAt != nil && !q.Settings.ExpiresAt.After(now) {
		return false
	}
	return len(q.Questions) > 0 && q.TotalPoints() > 0
}

// AnswerRecord is the scored outcome of a single question within an attempt.
type AnswerRecord struct {
	QuestionID    string `json:"questionId"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	Points        int    `json:"points"`
}

// QuizAttempt is produced once per submit and never mutated afterwards.
type QuizAttempt struct {
	ID               string         `json:"id"`
	QuizID           string         `json:"quizId"`
	SessionID        string         `json:"sessionId"`
	ParticipantID    string         `json:"participantId"`
	Score            int            `json:"score"`
	TotalPoints      int            `json:"totalPoints"`
	Percentage       int            `json:"percentage"`
	TimeSpentSeconds int            `json:"timeSpentSeconds"`
	Answers          []AnswerRecord `json:"answers"`
	Passed           bool           `json:"passed"`
	TimeExpired      bool           `json:"timeExpired"`
	StartedAt        time.Time      `json:"startedAt"`
	CompletedAt      time.Time      `json:"completedAt"`
	AttemptNumber    int            `json:"attemptNumber"`
}

// FormQuestion is a question of a generated (non-scored) form.
type FormQuestion struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// FormSettings are the presentation settings of a generated form.
type FormSettings struct {
	Theme            string `json:"theme"`
	SubmitButtonText string `json:"submitButtonText"`
	ThankYouMessage  string `json:"thankYouMessage"`
}

// GeneratedForm is the output of the AI generation pipeline.
type GeneratedForm struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []FormQuestion `json:"questions"`
	Settings    FormSettings   `json:"settings"`
}

// StoredForm is a generated form persisted under its own id.
type StoredForm struct {
	ID        string        `json:"id"`
	Form      GeneratedForm `json:"form"`
	CreatedAt time.Time     `json:"createdAt"`
}
