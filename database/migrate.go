package database

import (
	"gorm.io/gorm"

	"github.com/yeremiapane/ecommerce-api/models"
	"github.com/yeremiapane/ecommerce-api/utils"
)

// Models lists every mapped entity in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.Customer{},
		&models.CustomerAccount{},
		&models.Product{},
		&models.Order{},
		&models.OrderProduct{},
	}
}

// Migrate creates or updates the tables, indexes and foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}

	for _, m := range Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err == nil {
			utils.InfoLogger.Debugf("Table verified: %s", stmt.Schema.Table)
		}
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
