package port

import "context"

// ModelGateway sends a prompt to a hosted language model and returns its
// free-text reply.
type ModelGateway interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}
