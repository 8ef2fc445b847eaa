package unitofwork

import (
	"context"

	"fin-advisor-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PortfolioRepository() contract.PortfolioRepository
	KnowledgeRepository() contract.KnowledgeRepository
}
