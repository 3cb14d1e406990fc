package ai

import "context"

// Media is inline binary content sent along with a prompt.
type Media struct {
	Data     []byte
	MIMEType string
}

// Provider is a hosted generative model: prompt in, text out.
type Provider interface {
	Complete(ctx context.Context, prompt string, media *Media) (string, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, prompt string, media *Media) (string, error)

func (f ProviderFunc) Complete(ctx context.Context, prompt string, media *Media) (string, error) {
	return f(ctx, prompt, media)
}
