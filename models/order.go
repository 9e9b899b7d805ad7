package models

import (
	"time"
)

type Order struct {
	ID               uint      `gorm:"primaryKey"`
	Date             time.Time `gorm:"type:date;not null"`
	ExpectedDelivery time.Time `gorm:"type:date;not null"`
	CustomerID       uint      `gorm:"index;not null"`
	Customer         *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`

	// Lines is filled by the order repository, it is not a mapped column.
	Lines []OrderProduct `gorm:"-"`
}
