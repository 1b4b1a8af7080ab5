package embedding

import "context"

// Provider contract
type Provider interface {
	// Create generates embeddings for the given texts.
	Create(ctx context.Context, texts ...string) ([][]float32, error)
}
