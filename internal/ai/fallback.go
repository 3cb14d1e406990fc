package ai

import "formquiz-service/internal/domain"

// FallbackForm is returned whenever a generated form cannot be obtained or parsed.
func FallbackForm() domain.GeneratedForm {
	return domain.GeneratedForm{
		Title:       "Contact Form",
		Description: "Please fill out the form below.",
		Questions: []domain.FormQuestion{
			{ID: "1", Type: "text", Question: "What is your name?", Required: true, Placeholder: "Enter your name"},
			{ID: "2", Type: "email", Question: "What is your email address?", Required: true, Placeholder: "Enter your email"},
		},
		Settings: domain.DefaultFormSettings(),
	}
}
