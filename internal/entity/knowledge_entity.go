package entity

import "time"

// KnowledgeDocument is one passage of the financial knowledge base.
// The Id is caller-supplied ("doc1", "doc2", ...) so external corpora keep
// their identifiers across re-seeds.
type KnowledgeDocument struct {
	Id        string
	Content   string
	Metadata  map[string]interface{} // free-form: source, category, ...
	Embedded  bool                   // true once the embedding worker has stored a vector
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScoredPassage is a retrieval hit: document content plus cosine similarity.
type ScoredPassage struct {
	DocumentId string
	Content    string
	Similarity float64
}
