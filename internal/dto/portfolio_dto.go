package dto

import "time"

type CreatePortfolioItemRequest struct {
	StockTicker   string  `json:"stock_ticker" validate:"required,max=12"`
	Quantity      int     `json:"quantity" validate:"required,gt=0"`
	PurchasePrice float64 `json:"purchase_price" validate:"required,gt=0"`
}

type PortfolioItemResponse struct {
	Id            int64     `json:"id"`
	UserId        int64     `json:"user_id"`
	StockTicker   string    `json:"stock_ticker"`
	Quantity      int       `json:"quantity"`
	PurchasePrice float64   `json:"purchase_price"`
	CreatedAt     time.Time `json:"created_at"`
}
