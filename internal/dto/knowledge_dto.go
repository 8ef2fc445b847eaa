package dto

import "time"

type AddKnowledgeDocumentRequest struct {
	Id       string                 `json:"id" validate:"required,max=128"`
	Content  string                 `json:"content" validate:"required"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type UpdateKnowledgeDocumentRequest struct {
	Content  string                 `json:"content" validate:"required"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type KnowledgeDocumentResponse struct {
	Id        string                 `json:"id"`
	Content   string                 `json:"content"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Embedded  bool                   `json:"embedded"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// PublishEmbedDocumentMessage is the payload on the embedding topic.
type PublishEmbedDocumentMessage struct {
	DocumentId string `json:"document_id"`
}
