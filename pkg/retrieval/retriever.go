package retrieval

import (
	"context"
	"time"

	"fin-advisor-be/internal/entity"
	"fin-advisor-be/internal/pkg/logger"
	"fin-advisor-be/pkg/embedding"

	gocache "github.com/patrickmn/go-cache"
)

// PassageStore is the nearest-neighbor oracle: up to limit passages ranked by
// similarity, truncated to the store size.
type PassageStore interface {
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredPassage, error)
}

// Retriever embeds a query, asks the store for the top-k passages and
// normalizes the outcome into a Result. Failures of the store or the embedder
// degrade to Err — they are logged here and never abort the chat turn.
type Retriever struct {
	store    PassageStore
	embedder embedding.EmbeddingProvider
	topK     int
	cache    *gocache.Cache
	logger   logger.ILogger
}

func NewRetriever(store PassageStore, embedder embedding.EmbeddingProvider, topK int, log logger.ILogger) *Retriever {
	if topK <= 0 {
		topK = 3
	}
	return &Retriever{
		store:    store,
		embedder: embedder,
		topK:     topK,
		// Short TTL: repeated identical queries skip the embedding round-trip,
		// while knowledge-base edits become visible within a minute.
		cache:  gocache.New(time.Minute, 5*time.Minute),
		logger: log,
	}
}

func (r *Retriever) Retrieve(ctx context.Context, query string) Result {
	if cached, found := r.cache.Get(query); found {
		return Ok(cached.(string))
	}

	embedded, err := r.embedder.Generate(query, embedding.TaskTypeQuery)
	if err != nil {
		r.logger.Warn("retrieval", "query embedding failed, degrading to no knowledge", map[string]interface{}{
			"error": err.Error(),
		})
		return Err(err)
	}

	passages, err := r.store.SearchSimilar(ctx, embedded.Embedding.Values, r.topK)
	if err != nil {
		r.logger.Warn("retrieval", "similarity search failed, degrading to no knowledge", map[string]interface{}{
			"error": err.Error(),
		})
		return Err(err)
	}

	contents := make([]string, len(passages))
	for i, p := range passages {
		contents[i] = p.Content
	}

	result := FormatPassages(contents)
	if block, ok := result.Block(); ok {
		r.cache.SetDefault(query, block)
	}
	return result
}
