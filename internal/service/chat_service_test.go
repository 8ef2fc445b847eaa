package service

import (
	"context"
	"errors"
	"testing"

	"fin-advisor-be/internal/constant"
	"fin-advisor-be/internal/dto"
	"fin-advisor-be/internal/entity"
	"fin-advisor-be/internal/repository/contract"
	"fin-advisor-be/internal/repository/unitofwork"
	"fin-advisor-be/pkg/dialogue"
	"fin-advisor-be/pkg/embedding"
	"fin-advisor-be/pkg/llm"
	"fin-advisor-be/pkg/prompt"
	"fin-advisor-be/pkg/retrieval"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeUserRepo struct {
	contract.UserRepository
	knownIds    map[int64]bool
	existsCalls int
}

func (f *fakeUserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	f.existsCalls++
	return f.knownIds[id], nil
}

type fakeUow struct {
	unitofwork.UnitOfWork
	users *fakeUserRepo
}

func (f *fakeUow) UserRepository() contract.UserRepository {
	return f.users
}

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type fakePassageStore struct {
	passages []*entity.ScoredPassage
	err      error
	calls    int
}

func (f *fakePassageStore) SearchSimilar(ctx context.Context, emb []float32, limit int) ([]*entity.ScoredPassage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.passages, nil
}

type fakeQueryEmbedder struct {
	calls int
}

func (f *fakeQueryEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.calls++
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.5, 0.5}},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type chatFixture struct {
	service  IChatService
	users    *fakeUserRepo
	store    *fakePassageStore
	embedder *fakeQueryEmbedder
	model    *fakeLLM
}

func newChatFixture(store *fakePassageStore, model *fakeLLM) *chatFixture {
	users := &fakeUserRepo{knownIds: map[int64]bool{1: true}}
	embedder := &fakeQueryEmbedder{}
	retriever := retrieval.NewRetriever(store, embedder, 3, nopLogger{})

	svc := NewChatService(
		&fakeUowFactory{uow: &fakeUow{users: users}},
		retriever,
		prompt.NewAssembler(),
		model,
		nil, // no event bus in unit tests
		8,
		nopLogger{},
	)

	return &chatFixture{service: svc, users: users, store: store, embedder: embedder, model: model}
}

// --- scenarios ---

func TestChatWithKnowledge(t *testing.T) {
	store := &fakePassageStore{passages: []*entity.ScoredPassage{
		{DocumentId: "doc1", Content: "Diversification reduces risk.", Similarity: 0.93},
	}}
	model := &fakeLLM{reply: "Spread your investments across assets. TERMINATE"}
	fx := newChatFixture(store, model)

	res, err := fx.service.Chat(context.Background(), &dto.ChatRequest{UserId: 1, Message: "how do I reduce risk?"})

	require.NoError(t, err)
	assert.Equal(t, "Spread your investments across assets.", res.AgentResponse)
	require.NotNil(t, res.RelevantKnowledge)
	assert.Equal(t, "1. Diversification reduces risk.\n\n", *res.RelevantKnowledge)
	assert.Equal(t, 1, fx.model.calls)
}

func TestChatEmptyKnowledgeBase(t *testing.T) {
	model := &fakeLLM{reply: "General advice applies here. TERMINATE"}
	fx := newChatFixture(&fakePassageStore{}, model)

	res, err := fx.service.Chat(context.Background(), &dto.ChatRequest{UserId: 1, Message: "anything"})

	require.NoError(t, err)
	assert.Equal(t, "General advice applies here.", res.AgentResponse)
	assert.Nil(t, res.RelevantKnowledge, "no genuine knowledge means no knowledge in the response")
	assert.Equal(t, 1, fx.model.calls, "the dialogue still runs with the no-knowledge marker")
}

func TestChatRetrievalFailureDegrades(t *testing.T) {
	store := &fakePassageStore{err: errors.New("vector store offline")}
	model := &fakeLLM{reply: "Advice without the knowledge base. TERMINATE"}
	fx := newChatFixture(store, model)

	res, err := fx.service.Chat(context.Background(), &dto.ChatRequest{UserId: 1, Message: "anything"})

	require.NoError(t, err, "retrieval failure must not fail the chat turn")
	assert.Equal(t, "Advice without the knowledge base.", res.AgentResponse)
	assert.Nil(t, res.RelevantKnowledge)
	assert.NotContains(t, res.AgentResponse, "vector store offline")
}

func TestChatUnknownUser(t *testing.T) {
	model := &fakeLLM{reply: "never called"}
	fx := newChatFixture(&fakePassageStore{}, model)

	res, err := fx.service.Chat(context.Background(), &dto.ChatRequest{UserId: 42, Message: "anything"})

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, res)
	assert.Zero(t, fx.embedder.calls, "unknown user must not trigger retrieval")
	assert.Zero(t, fx.store.calls)
	assert.Zero(t, fx.model.calls, "unknown user must not trigger the model")
}

func TestChatDialogueFailurePropagates(t *testing.T) {
	model := &fakeLLM{err: errors.New("model unreachable")}
	fx := newChatFixture(&fakePassageStore{}, model)

	res, err := fx.service.Chat(context.Background(), &dto.ChatRequest{UserId: 1, Message: "anything"})

	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestChatRoundLimitPropagates(t *testing.T) {
	// Model that never emits the token exhausts the round cap.
	model := &fakeLLM{reply: "still thinking"}
	fx := newChatFixture(&fakePassageStore{}, model)

	res, err := fx.service.Chat(context.Background(), &dto.ChatRequest{UserId: 1, Message: "anything"})

	assert.ErrorIs(t, err, dialogue.ErrRoundLimitExceeded)
	assert.Nil(t, res)
	assert.Equal(t, 8, fx.model.calls)
}

func TestChatTokenNeverLeaks(t *testing.T) {
	model := &fakeLLM{reply: "Advice body " + constant.TerminationToken}
	fx := newChatFixture(&fakePassageStore{}, model)

	res, err := fx.service.Chat(context.Background(), &dto.ChatRequest{UserId: 1, Message: "anything"})

	require.NoError(t, err)
	assert.NotContains(t, res.AgentResponse, constant.TerminationToken)
	assert.Equal(t, "Advice body", res.AgentResponse)
}
