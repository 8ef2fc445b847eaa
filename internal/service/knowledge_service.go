package service

import (
	"context"
	"encoding/json"
	"fmt"

	"fin-advisor-be/internal/dto"
	"fin-advisor-be/internal/entity"
	"fin-advisor-be/internal/pkg/logger"
	"fin-advisor-be/internal/repository/specification"
	"fin-advisor-be/internal/repository/unitofwork"
	"fin-advisor-be/pkg/events"
	pktNats "fin-advisor-be/pkg/nats"
)

var (
	ErrDocumentExists   = fmt.Errorf("document with this id already exists")
	ErrDocumentNotFound = fmt.Errorf("document not found")
)

// IKnowledgeService owns knowledge-base maintenance. Not on the chat hot path:
// documents are written here and picked up by the embedding consumer.
type IKnowledgeService interface {
	AddDocument(ctx context.Context, req *dto.AddKnowledgeDocumentRequest) (*dto.KnowledgeDocumentResponse, error)
	UpdateDocument(ctx context.Context, id string, req *dto.UpdateKnowledgeDocumentRequest) (*dto.KnowledgeDocumentResponse, error)
	DeleteDocument(ctx context.Context, id string) error
	GetDocument(ctx context.Context, id string) (*dto.KnowledgeDocumentResponse, error)
}

type knowledgeService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *knowledgeService) AddDocument(ctx context.Context, req *dto.AddKnowledgeDocumentRequest) (*dto.KnowledgeDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.KnowledgeRepository()

	existing, err := repo.FindOne(ctx, specification.ByDocumentID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// Duplicate ids never overwrite: warn and refuse.
		s.logger.Warn("knowledge", "duplicate document id, skipping", map[string]interface{}{
			"document_id": req.Id,
		})
		return nil, ErrDocumentExists
	}

	doc := entity.KnowledgeDocument{
		Id:       req.Id,
		Content:  req.Content,
		Metadata: req.Metadata,
	}
	if err := repo.Create(ctx, &doc); err != nil {
		return nil, err
	}

	if err := s.publishEmbed(ctx, doc.Id); err != nil {
		return nil, err
	}
	s.emitEvent(ctx, doc.Id, "added")

	return toKnowledgeDocumentResponse(&doc), nil
}

func (s *knowledgeService) UpdateDocument(ctx context.Context, id string, req *dto.UpdateKnowledgeDocumentRequest) (*dto.KnowledgeDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.KnowledgeRepository()

	doc, err := repo.FindOne(ctx, specification.ByDocumentID{ID: id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}

	doc.Content = req.Content
	doc.Metadata = req.Metadata
	if err := repo.Update(ctx, doc); err != nil {
		return nil, err
	}

	// Re-embed against the new content.
	if err := s.publishEmbed(ctx, doc.Id); err != nil {
		return nil, err
	}
	s.emitEvent(ctx, doc.Id, "updated")

	doc.Embedded = false
	return toKnowledgeDocumentResponse(doc), nil
}

func (s *knowledgeService) DeleteDocument(ctx context.Context, id string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.KnowledgeRepository()

	doc, err := repo.FindOne(ctx, specification.ByDocumentID{ID: id})
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrDocumentNotFound
	}

	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	s.emitEvent(ctx, id, "deleted")
	return nil
}

func (s *knowledgeService) GetDocument(ctx context.Context, id string) (*dto.KnowledgeDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.KnowledgeRepository().FindOne(ctx, specification.ByDocumentID{ID: id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}
	return toKnowledgeDocumentResponse(doc), nil
}

func (s *knowledgeService) publishEmbed(ctx context.Context, documentId string) error {
	payload := dto.PublishEmbedDocumentMessage{DocumentId: documentId}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payloadJson)
}

func (s *knowledgeService) emitEvent(ctx context.Context, documentId, action string) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.NewKnowledgeUpdatedEvent(documentId, action)); err != nil {
		s.logger.Warn("knowledge", "failed to publish knowledge event", map[string]interface{}{
			"document_id": documentId,
			"error":       err.Error(),
		})
	}
}

func toKnowledgeDocumentResponse(doc *entity.KnowledgeDocument) *dto.KnowledgeDocumentResponse {
	return &dto.KnowledgeDocumentResponse{
		Id:        doc.Id,
		Content:   doc.Content,
		Metadata:  doc.Metadata,
		Embedded:  doc.Embedded,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
