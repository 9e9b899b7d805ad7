package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/ecommerce-api/controllers"
	"github.com/yeremiapane/ecommerce-api/database"
	"github.com/yeremiapane/ecommerce-api/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger("error")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type response struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func setupRouter(t *testing.T) *gin.Engine {
	db := setupTestDB(t)
	r := gin.New()

	customerCtrl := controllers.NewCustomerController(db, nil)
	r.GET("/customers", customerCtrl.GetAllCustomers)
	r.POST("/customers", customerCtrl.CreateCustomer)
	r.GET("/customers/:id", customerCtrl.GetCustomerByID)
	r.PUT("/customers/:id", customerCtrl.UpdateCustomer)
	r.DELETE("/customers/:id", customerCtrl.DeleteCustomer)

	accountCtrl := controllers.NewCustomerAccountController(db, nil)
	r.GET("/customeraccounts", accountCtrl.GetAllAccounts)
	r.POST("/customeraccounts", accountCtrl.CreateAccount)
	r.GET("/customeraccounts/:id", accountCtrl.GetAccountByID)
	r.PUT("/customeraccounts/:id", accountCtrl.UpdateAccount)
	r.DELETE("/customeraccounts/:id", accountCtrl.DeleteAccount)

	productCtrl := controllers.NewProductController(db, nil)
	r.GET("/products", productCtrl.GetAllProducts)
	r.POST("/products", productCtrl.CreateProduct)
	r.GET("/products/checkstock", productCtrl.CheckStock)
	r.GET("/products/:id", productCtrl.GetProductByID)
	r.PUT("/products/:id", productCtrl.UpdateProduct)
	r.DELETE("/products/:id", productCtrl.DeleteProduct)

	orderCtrl := controllers.NewOrderController(db, nil)
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/track_by_id", orderCtrl.TrackOrder)
	r.GET("/orders/orderhistory", orderCtrl.OrderHistory)
	r.GET("/orders/:id", orderCtrl.GetOrderByID)
	r.PUT("/orders/:id", orderCtrl.UpdateOrder)
	r.DELETE("/orders/:id", orderCtrl.DeleteOrder)

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) (int, response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func decode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}

// createID posts body and returns the id of the new row.
func createID(t *testing.T, r *gin.Engine, path string, body interface{}) uint {
	t.Helper()
	code, resp := doRequest(t, r, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, code, resp.Message)

	var created struct {
		ID uint `json:"id"`
	}
	decode(t, resp.Data, &created)
	require.NotZero(t, created.ID)
	return created.ID
}

func customerBody(email string) map[string]interface{} {
	return map[string]interface{}{"name": "Jane Doe", "email": email, "phone": "555-0100"}
}

func productBody(name string, price float64, stock int) map[string]interface{} {
	return map[string]interface{}{"name": name, "price": price, "stock_quantity": stock}
}

func orderBody(customerID uint) map[string]interface{} {
	return map[string]interface{}{
		"date":              "2024-03-01",
		"expected_delivery": "2024-03-05",
		"customer_id":       customerID,
	}
}

func path(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
