package contract

import (
	"context"

	"fin-advisor-be/internal/entity"
	"fin-advisor-be/internal/repository/specification"
)

type KnowledgeRepository interface {
	Create(ctx context.Context, doc *entity.KnowledgeDocument) error
	Update(ctx context.Context, doc *entity.KnowledgeDocument) error
	Delete(ctx context.Context, id string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateEmbedding stores the vector for a document; nil clears it so the
	// document drops out of similarity search until re-embedded.
	UpdateEmbedding(ctx context.Context, id string, embedding []float32) error

	// SearchSimilar returns up to limit embedded documents ordered by cosine
	// similarity to the query vector.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredPassage, error)
}
