package models

// OrderProduct is one line of the order/product association.
type OrderProduct struct {
	OrderID       uint     `gorm:"primaryKey;autoIncrement:false"`
	Order         *Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProductID     uint     `gorm:"primaryKey;autoIncrement:false;index"`
	Product       *Product `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	OrderQuantity int      `gorm:"not null;default:1"`
}
