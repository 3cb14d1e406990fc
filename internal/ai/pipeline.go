package ai

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	"formquiz-service/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Config bounds the work the pipeline does per request.
type Config struct {
	// Timeout bounds every provider call.
	Timeout time.Duration
	// FetchTimeout bounds downloading a page for GenerateFromURL.
	FetchTimeout time.Duration
	// MaxFetchBytes caps how much of a page is read.
	MaxFetchBytes int64
	// MaxPromptChars caps how much page text is embedded in a prompt.
	MaxPromptChars int
	// MaxImageDimension shrinks larger images before upload; 0 disables resizing.
	MaxImageDimension int
	// OptimizeConcurrency limits parallel provider calls in Optimize.
	OptimizeConcurrency int
	// AllowPrivateNetworks lets GenerateFromURL reach loopback, private and link-local
	// addresses. Off by default.
	AllowPrivateNetworks bool
}

// DefaultConfig returns the limits used when a field is left zero.
func DefaultConfig() Config {
	return Config{
		Timeout:             30 * time.Second,
		FetchTimeout:        10 * time.Second,
		MaxFetchBytes:       2 << 20,
		MaxPromptChars:      20000,
		MaxImageDimension:   1536,
		OptimizeConcurrency: 4,
	}
}

const (
	defaultQuestionCount = 5
	maxQuestionCount     = 20
)

// Pipeline asks the provider for content and parses the answer, falling back to a
// fixed form or domain.ErrGenerationFailed when anything goes wrong.
type Pipeline struct {
	provider Provider
	cfg      Config
	http     *http.Client
}

func NewPipeline(provider Provider, cfg Config) *Pipeline {
	defaults := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaults.FetchTimeout
	}
	if cfg.MaxFetchBytes <= 0 {
		cfg.MaxFetchBytes = defaults.MaxFetchBytes
	}
	if cfg.MaxPromptChars <= 0 {
		cfg.MaxPromptChars = defaults.MaxPromptChars
	}
	if cfg.OptimizeConcurrency <= 0 {
		cfg.OptimizeConcurrency = defaults.OptimizeConcurrency
	}
	return &Pipeline{
		provider: provider,
		cfg:      cfg,
		http:     newFetchClient(cfg.FetchTimeout, cfg.AllowPrivateNetworks),
	}
}

// Generate builds a form from a description of its content.
func (p *Pipeline) Generate(ctx context.Context, content, formType string) domain.GeneratedForm {
	return p.formOrFallback(ctx, "generate", formPrompt(content, formType))
}

// GenerateFromURL builds a form from the text of a web page.
func (p *Pipeline) GenerateFromURL(ctx context.Context, pageURL, formType string) domain.GeneratedForm {
	fetchCtx, cancel := context.WithTimeout(ctx, p.cfg.FetchTimeout)
	text, err := fetchPageText(fetchCtx, p.http, pageURL, p.cfg.MaxFetchBytes)
	cancel()
	if err != nil {
		log.Printf("ai url: %v", err)
		return FallbackForm()
	}
	return p.formOrFallback(ctx, "url", urlPrompt(pageURL, truncate(text, p.cfg.MaxPromptChars), formType))
}

// GenerateSimilar builds a new form modelled on a reference form.
func (p *Pipeline) GenerateSimilar(ctx context.Context, reference domain.GeneratedForm, instructions string) domain.GeneratedForm {
	return p.formOrFallback(ctx, "similar", similarPrompt(reference, instructions))
}

// Optimize improves each form independently. A form whose optimization fails is
// returned unchanged.
func (p *Pipeline) Optimize(ctx context.Context, forms []domain.GeneratedForm) []domain.GeneratedForm {
	out := make([]domain.GeneratedForm, len(forms))
	var g errgroup.Group
	g.SetLimit(p.cfg.OptimizeConcurrency)
	for i := range forms {
		g.Go(func() error {
			out[i] = p.optimizeOne(ctx, forms[i])
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (p *Pipeline) optimizeOne(ctx context.Context, form domain.GeneratedForm) domain.GeneratedForm {
	text, err := p.complete(ctx, optimizePrompt(form), nil)
	if err != nil {
		log.Printf("ai optimize: provider: %v", err)
		return form
	}
	optimized, err := ParseForm(text)
	if err != nil {
		log.Printf("ai optimize: %v", err)
		return form
	}
	return optimized
}

// QuizQuestions generates scored questions about a topic.
func (p *Pipeline) QuizQuestions(ctx context.Context, topic string, count int) ([]domain.QuizQuestion, error) {
	return p.questions(ctx, "questions", quizPrompt(topic, clampCount(count)), nil)
}

// QuestionsFromImage generates scored questions about an image.
func (p *Pipeline) QuestionsFromImage(ctx context.Context, image []byte, count int) ([]domain.QuizQuestion, error) {
	media, err := prepareImage(image, p.cfg.MaxImageDimension)
	if err != nil {
		log.Printf("ai image: %v", err)
		return nil, domain.ErrGenerationFailed
	}
	return p.questions(ctx, "image", imagePrompt(clampCount(count)), media)
}

func (p *Pipeline) questions(ctx context.Context, variant, prompt string, media *Media) ([]domain.QuizQuestion, error) {
	text, err := p.complete(ctx, prompt, media)
	if err != nil {
		log.Printf("ai %s: provider: %v", variant, err)
		return nil, domain.ErrGenerationFailed
	}
	questions, err := ParseQuestions(text)
	if err != nil {
		log.Printf("ai %s: %v", variant, err)
		return nil, domain.ErrGenerationFailed
	}
	return questions, nil
}

func (p *Pipeline) formOrFallback(ctx context.Context, variant, prompt string) domain.GeneratedForm {
	text, err := p.complete(ctx, prompt, nil)
	if err != nil {
		log.Printf("ai %s: provider: %v", variant, err)
		return FallbackForm()
	}
	form, err := ParseForm(text)
	if err != nil {
		log.Printf("ai %s: %v", variant, err)
		return FallbackForm()
	}
	return form
}

type completion struct {
	text string
	err  error
}

// complete calls the provider under the configured timeout. The call is abandoned
// when the context ends even if the provider ignores cancellation.
func (p *Pipeline) complete(ctx context.Context, prompt string, media *Media) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	done := make(chan completion, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- completion{err: fmt.Errorf("provider panic: %v", r)}
			}
		}()
		text, err := p.provider.Complete(ctx, prompt, media)
		done <- completion{text: text, err: err}
	}()

	select {
	case c := <-done:
		return c.text, c.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func clampCount(count int) int {
	if count <= 0 {
		return defaultQuestionCount
	}
	return min(count, maxQuestionCount)
}

func truncate(s string, maxChars int) string {
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxChars])
}
