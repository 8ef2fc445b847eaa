package service

import (
	"context"

	"fin-advisor-be/internal/constant"
	"fin-advisor-be/internal/dto"
	"fin-advisor-be/internal/pkg/logger"
	"fin-advisor-be/internal/repository/unitofwork"
	"fin-advisor-be/pkg/dialogue"
	"fin-advisor-be/pkg/events"
	"fin-advisor-be/pkg/llm"
	pktNats "fin-advisor-be/pkg/nats"
	"fin-advisor-be/pkg/prompt"
	"fin-advisor-be/pkg/retrieval"
)

// IChatService runs one full advice turn: verify the user, retrieve knowledge,
// assemble the augmented task, drive the dialogue and extract the answer.
type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	retriever      *retrieval.Retriever
	assembler      *prompt.Assembler
	llmProvider    llm.LLMProvider
	eventPublisher *pktNats.Publisher
	maxRounds      int
	logger         logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	retriever *retrieval.Retriever,
	assembler *prompt.Assembler,
	llmProvider llm.LLMProvider,
	eventPublisher *pktNats.Publisher,
	maxRounds int,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		retriever:      retriever,
		assembler:      assembler,
		llmProvider:    llmProvider,
		eventPublisher: eventPublisher,
		maxRounds:      maxRounds,
		logger:         log,
	}
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Unknown users are rejected before any retrieval or model work happens.
	exists, err := uow.UserRepository().Exists(ctx, req.UserId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	knowledge := s.retriever.Retrieve(ctx, req.Message)
	task := s.assembler.Assemble(req.Message, knowledge)

	analyst := dialogue.NewAnalyst(s.llmProvider, constant.AnalystSystemInstruction)
	turn := dialogue.NewTurn(analyst, constant.TerminationToken, s.maxRounds)

	transcript, err := turn.Run(ctx, task)
	if err != nil {
		s.logger.Error("chat", "dialogue turn failed", map[string]interface{}{
			"user_id": req.UserId,
			"error":   err.Error(),
		})
		return nil, err
	}

	answer := transcript.FinalAnswer(constant.TerminationToken)

	resp := &dto.ChatResponse{
		AgentResponse: answer,
	}
	if block, ok := knowledge.Block(); ok {
		resp.RelevantKnowledge = &block
	}

	s.emitCompleted(ctx, req.UserId, transcript, resp.RelevantKnowledge != nil)

	return resp, nil
}

func (s *chatService) emitCompleted(ctx context.Context, userId int64, transcript dialogue.Transcript, usedKnowledge bool) {
	if s.eventPublisher == nil {
		return
	}
	turnId := ""
	if last, ok := transcript.Last(); ok {
		turnId = last.Id.String()
	}
	if err := s.eventPublisher.Publish(ctx, events.NewChatCompletedEvent(userId, turnId, usedKnowledge)); err != nil {
		s.logger.Warn("chat", "failed to publish chat event", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}
}
