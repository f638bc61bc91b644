package scoring

import "context"

// Embedder encodes text into a fixed-length numeric vector. Implementations
// wrap external embedding models; cosine similarity is always computed here,
// never delegated. Tests substitute deterministic stubs.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
