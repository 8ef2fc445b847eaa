package service

import (
	"context"
	"testing"

	"fin-advisor-be/internal/dto"
	"fin-advisor-be/internal/entity"
	"fin-advisor-be/internal/repository/contract"
	"fin-advisor-be/internal/repository/specification"
	"fin-advisor-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKnowledgeRepo struct {
	contract.KnowledgeRepository
	docs map[string]*entity.KnowledgeDocument

	created []string
	updated []string
	deleted []string
}

func newFakeKnowledgeRepo() *fakeKnowledgeRepo {
	return &fakeKnowledgeRepo{docs: map[string]*entity.KnowledgeDocument{}}
}

func (f *fakeKnowledgeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeDocument, error) {
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByDocumentID); ok {
			return f.docs[byId.ID], nil
		}
	}
	return nil, nil
}

func (f *fakeKnowledgeRepo) Create(ctx context.Context, doc *entity.KnowledgeDocument) error {
	f.docs[doc.Id] = doc
	f.created = append(f.created, doc.Id)
	return nil
}

func (f *fakeKnowledgeRepo) Update(ctx context.Context, doc *entity.KnowledgeDocument) error {
	f.docs[doc.Id] = doc
	f.updated = append(f.updated, doc.Id)
	return nil
}

func (f *fakeKnowledgeRepo) Delete(ctx context.Context, id string) error {
	delete(f.docs, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeKnowledgeUow struct {
	unitofwork.UnitOfWork
	repo *fakeKnowledgeRepo
}

func (f *fakeKnowledgeUow) KnowledgeRepository() contract.KnowledgeRepository {
	return f.repo
}

type fakeKnowledgeUowFactory struct {
	uow *fakeKnowledgeUow
}

func (f *fakeKnowledgeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type recordingPublisher struct {
	payloads [][]byte
}

func (r *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	r.payloads = append(r.payloads, payload)
	return nil
}

func newKnowledgeFixture() (IKnowledgeService, *fakeKnowledgeRepo, *recordingPublisher) {
	repo := newFakeKnowledgeRepo()
	pub := &recordingPublisher{}
	svc := NewKnowledgeService(
		&fakeKnowledgeUowFactory{uow: &fakeKnowledgeUow{repo: repo}},
		pub,
		nil, // no event bus in unit tests
		nopLogger{},
	)
	return svc, repo, pub
}

func TestAddDocument(t *testing.T) {
	svc, repo, pub := newKnowledgeFixture()

	res, err := svc.AddDocument(context.Background(), &dto.AddKnowledgeDocumentRequest{
		Id:       "doc42",
		Content:  "Index funds track a market index.",
		Metadata: map[string]interface{}{"source": "manual"},
	})

	require.NoError(t, err)
	assert.Equal(t, "doc42", res.Id)
	assert.False(t, res.Embedded, "embedding happens asynchronously")
	assert.Equal(t, []string{"doc42"}, repo.created)
	assert.Len(t, pub.payloads, 1, "an embed job must be published for the new document")
}

func TestAddDocumentDuplicateIdIsRejected(t *testing.T) {
	svc, repo, pub := newKnowledgeFixture()
	repo.docs["doc1"] = &entity.KnowledgeDocument{Id: "doc1", Content: "original"}

	res, err := svc.AddDocument(context.Background(), &dto.AddKnowledgeDocumentRequest{
		Id:      "doc1",
		Content: "attempted overwrite",
	})

	assert.ErrorIs(t, err, ErrDocumentExists)
	assert.Nil(t, res)
	assert.Empty(t, repo.created, "duplicate id must not write")
	assert.Empty(t, pub.payloads, "duplicate id must not publish an embed job")
	assert.Equal(t, "original", repo.docs["doc1"].Content, "existing content untouched")
}

func TestUpdateDocumentTriggersReembed(t *testing.T) {
	svc, repo, pub := newKnowledgeFixture()
	repo.docs["doc1"] = &entity.KnowledgeDocument{Id: "doc1", Content: "old", Embedded: true}

	res, err := svc.UpdateDocument(context.Background(), "doc1", &dto.UpdateKnowledgeDocumentRequest{
		Content: "new content",
	})

	require.NoError(t, err)
	assert.Equal(t, "new content", res.Content)
	assert.False(t, res.Embedded, "update invalidates the stored vector")
	assert.Equal(t, []string{"doc1"}, repo.updated)
	assert.Len(t, pub.payloads, 1)
}

func TestUpdateDocumentNotFound(t *testing.T) {
	svc, _, pub := newKnowledgeFixture()

	_, err := svc.UpdateDocument(context.Background(), "ghost", &dto.UpdateKnowledgeDocumentRequest{Content: "x"})

	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.Empty(t, pub.payloads)
}

func TestDeleteDocument(t *testing.T) {
	svc, repo, _ := newKnowledgeFixture()
	repo.docs["doc1"] = &entity.KnowledgeDocument{Id: "doc1"}

	require.NoError(t, svc.DeleteDocument(context.Background(), "doc1"))
	assert.Equal(t, []string{"doc1"}, repo.deleted)

	err := svc.DeleteDocument(context.Background(), "doc1")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
