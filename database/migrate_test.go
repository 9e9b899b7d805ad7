package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/ecommerce-api/database"
	"github.com/yeremiapane/ecommerce-api/models"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	m := db.Migrator()
	assert.True(t, m.HasTable(&models.Customer{}))
	assert.True(t, m.HasTable(&models.CustomerAccount{}))
	assert.True(t, m.HasTable(&models.Product{}))
	assert.True(t, m.HasTable(&models.Order{}))
	assert.True(t, m.HasTable("order_products"))
	assert.True(t, m.HasColumn(&models.OrderProduct{}, "order_quantity"))

	dangling := models.Order{CustomerID: 999}
	assert.Error(t, db.Create(&dangling).Error, "foreign key on orders.customer_id")

	// migrating twice is a no-op
	require.NoError(t, database.Migrate(db))
}
