package service

import (
	"context"

	"fin-advisor-be/internal/dto"
	"fin-advisor-be/internal/entity"
	"fin-advisor-be/internal/repository/specification"
	"fin-advisor-be/internal/repository/unitofwork"
)

type IPortfolioService interface {
	Create(ctx context.Context, userId int64, req *dto.CreatePortfolioItemRequest) (*dto.PortfolioItemResponse, error)
	GetAllByUser(ctx context.Context, userId int64) ([]*dto.PortfolioItemResponse, error)
	Delete(ctx context.Context, userId int64, itemId int64) error
}

type portfolioService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPortfolioService(uowFactory unitofwork.RepositoryFactory) IPortfolioService {
	return &portfolioService{
		uowFactory: uowFactory,
	}
}

func (s *portfolioService) Create(ctx context.Context, userId int64, req *dto.CreatePortfolioItemRequest) (*dto.PortfolioItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	exists, err := uow.UserRepository().Exists(ctx, userId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	item := entity.PortfolioItem{
		UserId:        userId,
		StockTicker:   req.StockTicker,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
	}
	if err := uow.PortfolioRepository().Create(ctx, &item); err != nil {
		return nil, err
	}

	return toPortfolioItemResponse(&item), nil
}

func (s *portfolioService) GetAllByUser(ctx context.Context, userId int64) ([]*dto.PortfolioItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	exists, err := uow.UserRepository().Exists(ctx, userId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	items, err := uow.PortfolioRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PortfolioItemResponse, len(items))
	for i, item := range items {
		result[i] = toPortfolioItemResponse(item)
	}
	return result, nil
}

func (s *portfolioService) Delete(ctx context.Context, userId int64, itemId int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PortfolioRepository()

	item, err := repo.FindOne(ctx, specification.ByID{ID: itemId}, specification.ByUserID{UserID: userId})
	if err != nil {
		return err
	}
	if item == nil {
		return ErrPortfolioNotFound
	}

	return repo.Delete(ctx, itemId)
}

func toPortfolioItemResponse(item *entity.PortfolioItem) *dto.PortfolioItemResponse {
	return &dto.PortfolioItemResponse{
		Id:            item.Id,
		UserId:        item.UserId,
		StockTicker:   item.StockTicker,
		Quantity:      item.Quantity,
		PurchasePrice: item.PurchasePrice,
		CreatedAt:     item.CreatedAt,
	}
}
