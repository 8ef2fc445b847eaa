package contract

import (
	"context"

	"fin-advisor-be/internal/entity"
	"fin-advisor-be/internal/repository/specification"
)

type PortfolioRepository interface {
	Create(ctx context.Context, item *entity.PortfolioItem) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PortfolioItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PortfolioItem, error)
	Delete(ctx context.Context, id int64) error
}
