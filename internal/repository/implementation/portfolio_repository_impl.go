package implementation

import (
	"context"
	"errors"

	"fin-advisor-be/internal/entity"
	"fin-advisor-be/internal/mapper"
	"fin-advisor-be/internal/model"
	"fin-advisor-be/internal/repository/contract"
	"fin-advisor-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PortfolioRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PortfolioMapper
}

func NewPortfolioRepository(db *gorm.DB) contract.PortfolioRepository {
	return &PortfolioRepositoryImpl{
		db:     db,
		mapper: mapper.NewPortfolioMapper(),
	}
}

func (r *PortfolioRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PortfolioRepositoryImpl) Create(ctx context.Context, item *entity.PortfolioItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *PortfolioRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PortfolioItem, error) {
	var m model.PortfolioItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PortfolioRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PortfolioItem, error) {
	var models []*model.PortfolioItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PortfolioItem, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *PortfolioRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.PortfolioItem{}, id).Error
}
