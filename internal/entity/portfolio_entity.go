package entity

import "time"

type PortfolioItem struct {
	Id            int64
	UserId        int64
	StockTicker   string
	Quantity      int
	PurchasePrice float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
