package app

import (
	"math"
	"strings"

	"formquiz-service/internal/domain"
)

// answersMatch compares a recorded answer to the key, ignoring case and surrounding whitespace.
func answersMatch(userAnswer, correctAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(correctAnswer))
}

// Percentage rounds 100*score/total half up; a zero total yields 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(100*float64(score)/float64(total) + 0.5))
}

// scoreAnswers grades every question in order. Unanswered questions earn nothing.
func scoreAnswers(questions []domain.QuizQuestion, answers map[string]string) ([]domain.AnswerRecord, int, int) {
	records := make([]domain.AnswerRecord, 0, len(questions))
	score, total := 0, 0
	for _, q := range questions {
		total += q.Points
		userAnswer, answered := answers[q.ID]
		correct := answered && answersMatch(userAnswer, q.CorrectAnswer)
		awarded := 0
		if correct {
			awarded = q.Points
			score += awarded
		}
		records = append(records, domain.AnswerRecord{
			QuestionID:    q.ID,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     correct,
			Points:        awarded,
		})
	}
	return records, score, total
}
