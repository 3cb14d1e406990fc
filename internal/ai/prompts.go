package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"formquiz-service/internal/domain"
)

const formShape = `{
  "title": "Form title",
  "description": "Short description",
  "questions": [
    {"id": "1", "type": "text|email|textarea|number|select|radio|checkbox|date|phone|url|rating|file", "question": "Question text", "required": true, "options": ["Only for select, radio and checkbox"], "placeholder": "Optional placeholder"}
  ],
  "settings": {"theme": "default", "submitButtonText": "Submit", "thankYouMessage": "Thank you for your response!"}
}`

const questionShape = `[
  {"id": "1", "type": "multiple-choice|true-false|short-answer", "question": "Question text", "options": ["A", "B", "C", "D"], "correctAnswer": "A", "points": 1, "explanation": "Why the answer is correct"}
]`

const jsonOnly = "Respond with JSON only, without Markdown code fences or commentary."

func formPrompt(content, formType string) string {
	return fmt.Sprintf(`Create a %s form based on the following description:

%s

Return a JSON object with this structure:
%s

%s`, orDefault(formType, "general"), content, formShape, jsonOnly)
}

func urlPrompt(pageURL, pageText, formType string) string {
	return fmt.Sprintf(`The following text was extracted from the web page %s:

%s

Create a %s form that collects the information this page is about.
Return a JSON object with this structure:
%s

%s`, pageURL, pageText, orDefault(formType, "general"), formShape, jsonOnly)
}

func similarPrompt(reference domain.GeneratedForm, instructions string) string {
	raw, _ := json.MarshalIndent(reference, "", "  ")
	extra := ""
	if strings.TrimSpace(instructions) != "" {
		extra = "\nAdditional instructions: " + instructions + "\n"
	}
	return fmt.Sprintf(`Here is an existing form:

%s
%s
Create a new form with a similar purpose, structure and tone, but with fresh wording and questions.
Return a JSON object with this structure:
%s

%s`, raw, extra, formShape, jsonOnly)
}

func optimizePrompt(form domain.GeneratedForm) string {
	raw, _ := json.MarshalIndent(form, "", "  ")
	return fmt.Sprintf(`Improve the following form to increase completion rates: make questions clear and concise,
use the most suitable question types, and mark only essential questions as required.

%s

Return the improved form as a JSON object with this structure:
%s

%s`, raw, formShape, jsonOnly)
}

func quizPrompt(topic string, count int) string {
	return fmt.Sprintf(`Write %d quiz questions about the following topic:

%s

Mix multiple-choice, true-false and short-answer questions. For true-false questions the
correctAnswer is "True" or "False". For multiple-choice questions the correctAnswer must be
one of the options, verbatim.
Return a JSON array with this structure:
%s

%s`, count, topic, questionShape, jsonOnly)
}

func imagePrompt(count int) string {
	return fmt.Sprintf(`Look at the attached image and write %d quiz questions that test understanding of
what it shows. For multiple-choice questions the correctAnswer must be one of the options, verbatim.
Return a JSON array with this structure:
%s

%s`, count, questionShape, jsonOnly)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
