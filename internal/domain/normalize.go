package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DefaultQuizSettings applies when a stored quiz predates the settings object.
func DefaultQuizSettings() QuizSettings {
	return QuizSettings{
		TimeLimitMinutes:       10,
		PassingScorePercent:    70,
		ShowResultsImmediately: true,
		IsActive:               true,
		MaxAttempts:            1,
	}
}

// DefaultBranding applies when a stored quiz has no branding object.
func DefaultBranding() Branding {
	return Branding{PrimaryColor: "#3b82f6"}
}

// DefaultFormSettings fills blank settings of generated forms.
func DefaultFormSettings() FormSettings {
	return FormSettings{
		Theme:            "default",
		SubmitButtonText: "Submit",
		ThankYouMessage:  "Thank you for your submission!",
	}
}

// storedQuiz mirrors QuizDefinition with optional sub-objects so older records decode.
type storedQuiz struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []QuizQuestion `json:"questions"`
	Settings    *QuizSettings  `json:"settings"`
	Branding    *Branding      `json:"branding"`
}

// DecodeQuiz unmarshals a stored quiz record and upgrades it to the current shape.
// Stored data is never rewritten; upgrades happen on every read.
func DecodeQuiz(data []byte) (QuizDefinition, error) {
	var raw storedQuiz
	if err := json.Unmarshal(data, &raw); err != nil {
		return QuizDefinition{}, fmt.Errorf("decode quiz: %w", err)
	}
	quiz := QuizDefinition{
		ID:          raw.ID,
		Title:       raw.Title,
		Description: raw.Description,
		Questions:   raw.Questions,
		Branding:    raw.Branding,
	}
	if raw.Settings != nil {
		quiz.Settings = *raw.Settings
	} else {
		quiz.Settings = DefaultQuizSettings()
	}
	return NormalizeQuiz(quiz), nil
}

// NormalizeQuiz fills defaults that older or hand-written definitions may omit.
func NormalizeQuiz(quiz QuizDefinition) QuizDefinition {
	defaults := DefaultQuizSettings()
	if quiz.Settings.TimeLimitMinutes < 1 {
		quiz.Settings.TimeLimitMinutes = defaults.TimeLimitMinutes
	}
	if quiz.Settings.MaxAttempts < 1 {
		quiz.Settings.MaxAttempts = defaults.MaxAttempts
	}
	if quiz.Settings.PassingScorePercent < 0 {
		quiz.Settings.PassingScorePercent = 0
	}
	if quiz.Settings.PassingScorePercent > 100 {
		quiz.Settings.PassingScorePercent = 100
	}
	if quiz.Branding == nil {
		b := DefaultBranding()
		quiz.Branding = &b
	}

	questions := make([]QuizQuestion, len(quiz.Questions))
	for i, q := range quiz.Questions {
		if q.ID == "" {
			q.ID = strconv.Itoa(i + 1)
		}
		if q.Type == "" {
			q.Type = QuestionMultipleChoice
		}
		if q.Points <= 0 {
			q.Points = 1
		}
		if q.Type == QuestionTrueFalse {
			q.Options = append([]string(nil), TrueFalseOptions...)
		}
		questions[i] = q
	}
	quiz.Questions = questions
	return quiz
}

// NormalizeForm assigns missing question ids and fills blank settings.
func NormalizeForm(form GeneratedForm) GeneratedForm {
	defaults := DefaultFormSettings()
	if strings.TrimSpace(form.Settings.Theme) == "" {
		form.Settings.Theme = defaults.Theme
	}
	if strings.TrimSpace(form.Settings.SubmitButtonText) == "" {
		form.Settings.SubmitButtonText = defaults.SubmitButtonText
	}
	if strings.TrimSpace(form.Settings.ThankYouMessage) == "" {
		form.Settings.ThankYouMessage = defaults.ThankYouMessage
	}
	questions := make([]FormQuestion, len(form.Questions))
	for i, q := range form.Questions {
		if q.ID == "" {
			q.ID = strconv.Itoa(i + 1)
		}
		questions[i] = q
	}
	form.Questions = questions
	return form
}
