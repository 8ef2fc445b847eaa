package retrieval

import (
	"context"
	"errors"
	"testing"

	"fin-advisor-be/internal/entity"
	"fin-advisor-be/pkg/embedding"

	"github.com/stretchr/testify/assert"
)

type fakeEmbedder struct {
	err   error
	calls int
}

func (f *fakeEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2, 0.3}},
	}, nil
}

type fakeStore struct {
	passages []*entity.ScoredPassage
	err      error
	calls    int
	gotLimit int
}

func (f *fakeStore) SearchSimilar(ctx context.Context, emb []float32, limit int) ([]*entity.ScoredPassage, error) {
	f.calls++
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.passages) {
		return f.passages[:limit], nil
	}
	return f.passages, nil
}

func newNopLogger() *testLogger {
	return &testLogger{}
}

type testLogger struct{}

func (l *testLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *testLogger) Info(module, message string, details map[string]interface{})  {}
func (l *testLogger) Warn(module, message string, details map[string]interface{})  {}
func (l *testLogger) Error(module, message string, details map[string]interface{}) {}
func (l *testLogger) Sync() error                                                  { return nil }

func TestRetrieveReturnsFormattedPassages(t *testing.T) {
	store := &fakeStore{passages: []*entity.ScoredPassage{
		{DocumentId: "doc1", Content: "Diversification reduces risk.", Similarity: 0.92},
		{DocumentId: "doc2", Content: "Compounding grows wealth.", Similarity: 0.87},
	}}
	r := NewRetriever(store, &fakeEmbedder{}, 3, newNopLogger())

	result := r.Retrieve(context.Background(), "how do I reduce risk")

	assert.Equal(t, StatusOk, result.Status())
	block, ok := result.Block()
	assert.True(t, ok)
	assert.Equal(t, "1. Diversification reduces risk.\n\n2. Compounding grows wealth.\n\n", block)
	assert.Equal(t, 3, store.gotLimit)
}

func TestRetrieveEmptyStore(t *testing.T) {
	r := NewRetriever(&fakeStore{}, &fakeEmbedder{}, 3, newNopLogger())

	result := r.Retrieve(context.Background(), "anything")

	assert.Equal(t, StatusEmpty, result.Status())
	_, ok := result.Block()
	assert.False(t, ok)
}

func TestRetrieveEmbedderFailureDegrades(t *testing.T) {
	store := &fakeStore{}
	r := NewRetriever(store, &fakeEmbedder{err: errors.New("embedder down")}, 3, newNopLogger())

	result := r.Retrieve(context.Background(), "anything")

	assert.Equal(t, StatusErr, result.Status())
	assert.Error(t, result.Err())
	assert.Zero(t, store.calls, "store must not be queried without an embedding")
}

func TestRetrieveStoreFailureDegrades(t *testing.T) {
	r := NewRetriever(&fakeStore{err: errors.New("db offline")}, &fakeEmbedder{}, 3, newNopLogger())

	result := r.Retrieve(context.Background(), "anything")

	assert.Equal(t, StatusErr, result.Status())
	assert.Error(t, result.Err())
}

func TestRetrieveCachesSuccessfulBlocks(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := &fakeStore{passages: []*entity.ScoredPassage{
		{DocumentId: "doc1", Content: "Bonds pay interest.", Similarity: 0.9},
	}}
	r := NewRetriever(store, embedder, 3, newNopLogger())

	first := r.Retrieve(context.Background(), "what are bonds")
	second := r.Retrieve(context.Background(), "what are bonds")

	assert.Equal(t, StatusOk, first.Status())
	assert.Equal(t, StatusOk, second.Status())
	assert.Equal(t, 1, embedder.calls, "cache hit must skip the embedder")
	assert.Equal(t, 1, store.calls)

	firstBlock, _ := first.Block()
	secondBlock, _ := second.Block()
	assert.Equal(t, firstBlock, secondBlock)
}

func TestRetrieveDoesNotCacheFailures(t *testing.T) {
	embedder := &fakeEmbedder{}
	store := &fakeStore{err: errors.New("db offline")}
	r := NewRetriever(store, embedder, 3, newNopLogger())

	r.Retrieve(context.Background(), "anything")
	r.Retrieve(context.Background(), "anything")

	assert.Equal(t, 2, embedder.calls)
	assert.Equal(t, 2, store.calls)
}
