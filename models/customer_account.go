package models

import "time"

// CustomerAccount holds login credentials for exactly one Customer.
// Password is a bcrypt hash, never the clear text.
type CustomerAccount struct {
	ID         uint      `gorm:"primaryKey"`
	Username   string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password   string    `gorm:"type:varchar(255);not null"`
	CustomerID uint      `gorm:"uniqueIndex;not null"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}
