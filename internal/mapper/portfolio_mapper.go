package mapper

import (
	"fin-advisor-be/internal/entity"
	"fin-advisor-be/internal/model"
)

type PortfolioMapper struct{}

func NewPortfolioMapper() *PortfolioMapper {
	return &PortfolioMapper{}
}

func (m *PortfolioMapper) ToEntity(p *model.PortfolioItem) *entity.PortfolioItem {
	if p == nil {
		return nil
	}
	return &entity.PortfolioItem{
		Id:            p.Id,
		UserId:        p.UserId,
		StockTicker:   p.StockTicker,
		Quantity:      p.Quantity,
		PurchasePrice: p.PurchasePrice,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *PortfolioMapper) ToModel(p *entity.PortfolioItem) *model.PortfolioItem {
	if p == nil {
		return nil
	}
	return &model.PortfolioItem{
		Id:            p.Id,
		UserId:        p.UserId,
		StockTicker:   p.StockTicker,
		Quantity:      p.Quantity,
		PurchasePrice: p.PurchasePrice,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
