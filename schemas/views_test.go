package schemas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/ecommerce-api/models"
)

func TestDumpOrder_EmbedsProducts(t *testing.T) {
	order := models.Order{
		ID:               3,
		Date:             time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		ExpectedDelivery: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
		CustomerID:       5,
		Lines: []models.OrderProduct{
			{OrderID: 3, ProductID: 1, OrderQuantity: 2, Product: &models.Product{ID: 1, Name: "Mug", Price: 8.5}},
			{OrderID: 3, ProductID: 2, OrderQuantity: 1},
		},
	}

	view := DumpOrder(order)
	assert.Equal(t, "2024-01-02", view.Date)
	assert.Equal(t, "2024-01-09", view.ExpectedDelivery)
	assert.Equal(t, uint(5), view.CustomerID)
	assert.Equal(t, []OrderProductView{{ID: 1, Name: "Mug", Price: 8.5, Quantity: 2}}, view.Products)
}

func TestDumpCustomerAccount_OmitsPassword(t *testing.T) {
	account := models.CustomerAccount{
		ID:         1,
		Username:   "shopper01",
		Password:   "$2a$10$hash",
		CustomerID: 4,
		Customer:   &models.Customer{ID: 4, Name: "Ada", Email: "ada@example.com", Phone: "1"},
	}

	view := DumpCustomerAccount(account)
	assert.Equal(t, "shopper01", view.Username)
	if assert.NotNil(t, view.Customer) {
		assert.Equal(t, "ada@example.com", view.Customer.Email)
	}
}

func TestDumpLists_NeverNil(t *testing.T) {
	assert.NotNil(t, DumpCustomers(nil))
	assert.NotNil(t, DumpProducts(nil))
	assert.NotNil(t, DumpOrders(nil))
	assert.NotNil(t, DumpCustomerAccounts(nil))
	assert.NotNil(t, DumpStockLevels(nil))
}
