package model

import "time"

type PortfolioItem struct {
	Id            int64     `gorm:"primaryKey;autoIncrement"`
	UserId        int64     `gorm:"not null;index"`
	StockTicker   string    `gorm:"index;not null"`
	Quantity      int       `gorm:"not null"`
	PurchasePrice float64   `gorm:"not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (PortfolioItem) TableName() string {
	return "portfolio_items"
}
