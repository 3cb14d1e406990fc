package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"formquiz-service/internal/domain"
	"github.com/google/uuid"
)

// FormGenerator produces forms and questions from a generative provider.
// Form variants never fail; question variants fail only with domain.ErrGenerationFailed.
type FormGenerator interface {
	Generate(ctx context.Context, content, formType string) domain.GeneratedForm
	GenerateFromURL(ctx context.Context, url, formType string) domain.GeneratedForm
	GenerateSimilar(ctx context.Context, reference domain.GeneratedForm, instructions string) domain.GeneratedForm
	Optimize(ctx context.Context, forms []domain.GeneratedForm) []domain.GeneratedForm
	QuizQuestions(ctx context.Context, topic string, count int) ([]domain.QuizQuestion, error)
	QuestionsFromImage(ctx context.Context, image []byte, count int) ([]domain.QuizQuestion, error)
}

// FormService generates forms and keeps them in the store.
type FormService struct {
	generator FormGenerator
	store     Store
	now       func() time.Time
}

func NewFormService(generator FormGenerator, store Store) *FormService {
	return &FormService{generator: generator, store: store, now: time.Now}
}

// Generate builds a form from a free-text description.
func (s *FormService) Generate(ctx context.Context, content, formType string) (domain.StoredForm, error) {
	return s.save(ctx, s.generator.Generate(ctx, content, formType))
}

// GenerateFromURL builds a form from the text content of a web page.
func (s *FormService) GenerateFromURL(ctx context.Context, url, formType string) (domain.StoredForm, error) {
	return s.save(ctx, s.generator.GenerateFromURL(ctx, url, formType))
}

// GenerateSimilar builds a new form modelled on a reference form.
func (s *FormService) GenerateSimilar(ctx context.Context, reference domain.GeneratedForm, instructions string) (domain.StoredForm, error) {
	return s.save(ctx, s.generator.GenerateSimilar(ctx, reference, instructions))
}

// Optimize improves several forms at once; the results are not persisted.
func (s *FormService) Optimize(ctx context.Context, forms []domain.GeneratedForm) []domain.GeneratedForm {
	return s.generator.Optimize(ctx, forms)
}

// QuizQuestions generates scored questions about a topic.
func (s *FormService) QuizQuestions(ctx context.Context, topic string, count int) ([]domain.QuizQuestion, error) {
	return s.generator.QuizQuestions(ctx, topic, count)
}

// QuestionsFromImage generates scored questions describing an image.
func (s *FormService) QuestionsFromImage(ctx context.Context, image []byte, count int) ([]domain.QuizQuestion, error) {
	return s.generator.QuestionsFromImage(ctx, image, count)
}

// Form loads a stored form by id.
func (s *FormService) Form(ctx context.Context, id string) (domain.StoredForm, error) {
	raw, err := s.store.Get(ctx, formKey(id))
	if err != nil {
		return domain.StoredForm{}, err
	}
	var stored domain.StoredForm
	if err := json.Unmarshal(raw, &stored); err != nil {
		return domain.StoredForm{}, fmt.Errorf("decode form: %w", err)
	}
	stored.Form = domain.NormalizeForm(stored.Form)
	return stored, nil
}

func (s *FormService) save(ctx context.Context, form domain.GeneratedForm) (domain.StoredForm, error) {
	stored := domain.StoredForm{
		ID:        uuid.NewString(),
		Form:      form,
		CreatedAt: s.now(),
	}
	if err := setJSON(ctx, s.store, formKey(stored.ID), stored); err != nil {
		return stored, fmt.Errorf("save form: %w", err)
	}
	return stored, nil
}

func formKey(id string) string {
	return "form:" + id
}
