package models

import "time"

type Product struct {
	ID            uint      `gorm:"primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Price         float64   `gorm:"not null"`
	StockQuantity int       `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// StockLevel is a read-only projection used by the stock report.
type StockLevel struct {
	ID            uint
	Name          string
	StockQuantity int
}
