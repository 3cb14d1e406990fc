package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"formquiz-service/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const fence = "```"

// StripFences removes a Markdown code fence wrapped around model output.
// Text before the opening fence and after the closing one is dropped.
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	start := strings.Index(s, fence)
	if start < 0 {
		return s
	}
	s = s[start+len(fence):]
	// drop the info string ("json", "JSON", ...) of the opening fence
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && isInfoString(s[:nl]) {
		s = s[nl+1:]
	} else if isInfoString(s) {
		s = ""
	}
	if end := strings.LastIndex(s, fence); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}

func isInfoString(s string) bool {
	s = strings.TrimSpace(s)
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return false
		}
	}
	return true
}

// flexString accepts JSON strings, numbers and booleans; models are loose about ids.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("expected string, number or bool, got %s", data)
	}
	*f = flexString(fmt.Sprint(b))
	return nil
}

type formPayload struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Questions   []formQuestionPayload `json:"questions" validate:"required,dive"`
	Settings    *formSettingsPayload  `json:"settings" validate:"required"`
}

type formQuestionPayload struct {
	ID          flexString `json:"id"`
	Type        string     `json:"type" validate:"required,oneof=text email textarea number select radio checkbox date phone url rating file"`
	Question    string     `json:"question" validate:"required"`
	Required    bool       `json:"required"`
	Options     []string   `json:"options"`
	Placeholder string     `json:"placeholder"`
}

type formSettingsPayload struct {
	Theme            string `json:"theme"`
	SubmitButtonText string `json:"submitButtonText"`
	ThankYouMessage  string `json:"thankYouMessage"`
}

// ParseForm turns raw model output into a validated form.
func ParseForm(text string) (domain.GeneratedForm, error) {
	var payload formPayload
	if err := json.Unmarshal([]byte(StripFences(text)), &payload); err != nil {
		return domain.GeneratedForm{}, fmt.Errorf("decode form: %w", err)
	}
	if err := validate.Struct(payload); err != nil {
		return domain.GeneratedForm{}, fmt.Errorf("invalid form: %w", err)
	}

	form := domain.GeneratedForm{
		Title:       payload.Title,
		Description: payload.Description,
		Questions:   make([]domain.FormQuestion, 0, len(payload.Questions)),
		Settings: domain.FormSettings{
			Theme:            payload.Settings.Theme,
			SubmitButtonText: payload.Settings.SubmitButtonText,
			ThankYouMessage:  payload.Settings.ThankYouMessage,
		},
	}
	for _, q := range payload.Questions {
		form.Questions = append(form.Questions, domain.FormQuestion{
			ID:          string(q.ID),
			Type:        q.Type,
			Question:    q.Question,
			Required:    q.Required,
			Options:     q.Options,
			Placeholder: q.Placeholder,
		})
	}
	return domain.NormalizeForm(form), nil
}

type quizQuestionPayload struct {
	ID            flexString `json:"id"`
	Type          string     `json:"type" validate:"required,oneof=multiple-choice true-false short-answer"`
	Question      string     `json:"question" validate:"required"`
	Options       []string   `json:"options" validate:"required_if=Type multiple-choice"`
	CorrectAnswer flexString `json:"correctAnswer" validate:"required"`
	Points        int        `json:"points" validate:"gte=0"`
	Explanation   string     `json:"explanation"`
}

type questionList struct {
	Questions []quizQuestionPayload `json:"questions" validate:"required,min=1,dive"`
}

// ParseQuestions accepts either a bare JSON array of questions or an object with a
// "questions" array.
func ParseQuestions(text string) ([]domain.QuizQuestion, error) {
	body := []byte(StripFences(text))
	var list questionList
	switch {
	case bytes.HasPrefix(body, []byte("[")):
		if err := json.Unmarshal(body, &list.Questions); err != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
	case bytes.HasPrefix(body, []byte("{")):
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
	default:
		return nil, errors.New("decode questions: not a JSON array or object")
	}
	if err := validate.Struct(list); err != nil {
		return nil, fmt.Errorf("invalid questions: %w", err)
	}

	quiz := domain.QuizDefinition{Questions: make([]domain.QuizQuestion, 0, len(list.Questions))}
	for _, q := range list.Questions {
		quiz.Questions = append(quiz.Questions, domain.QuizQuestion{
			ID:            string(q.ID),
			Type:          domain.QuestionType(q.Type),
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: string(q.CorrectAnswer),
			Points:        q.Points,
			Explanation:   q.Explanation,
		})
	}
	return domain.NormalizeQuiz(quiz).Questions, nil
}
