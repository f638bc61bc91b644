package pipeline

import (
	"context"
	"sync"

	"github.com/jonathan/smartmatch/internal/ingestion"
	"github.com/jonathan/smartmatch/internal/types"
)

// SkillExtractor extracts a skill set from a document. llm.SkillExtractor
// satisfies it for model-backed extraction.
type SkillExtractor interface {
	Extract(ctx context.Context, text string) (types.SkillSet, error)
}

// ExtractFunc adapts a plain function to the SkillExtractor interface.
type ExtractFunc func(ctx context.Context, text string) (types.SkillSet, error)

// Extract calls f.
func (f ExtractFunc) Extract(ctx context.Context, text string) (types.SkillSet, error) {
	return f(ctx, text)
}

// MemoizedExtractor caches extraction results keyed by the SHA-256 hash of
// the input text, so analyzing the same resume against several postings
// only pays for extraction once. Errors are not cached.
type MemoizedExtractor struct {
	extract ExtractFunc

	mu    sync.RWMutex
	cache map[string]types.SkillSet
}

// NewMemoizedExtractor wraps an extraction function with a hash-keyed cache.
func NewMemoizedExtractor(extract ExtractFunc) *MemoizedExtractor {
	return &MemoizedExtractor{
		extract: extract,
		cache:   make(map[string]types.SkillSet),
	}
}

// Extract returns the cached skill set for text, running the underlying
// extraction on a cache miss.
func (m *MemoizedExtractor) Extract(ctx context.Context, text string) (types.SkillSet, error) {
	key := ingestion.ComputeHash(text)

	m.mu.RLock()
	cached, ok := m.cache[key]
	m.mu.RUnlock()
	if ok {
		return cached, nil
	}

	skills, err := m.extract(ctx, text)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.cache[key] = skills
	m.mu.Unlock()
	return skills, nil
}

// Len reports how many documents have cached extractions.
func (m *MemoizedExtractor) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}
