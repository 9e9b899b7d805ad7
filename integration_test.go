package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/ecommerce-api/config"
	"github.com/yeremiapane/ecommerce-api/database"
	"github.com/yeremiapane/ecommerce-api/events"
	"github.com/yeremiapane/ecommerce-api/router"
	"github.com/yeremiapane/ecommerce-api/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger("error")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndIntegration walks the main flow against the full router:
// customer -> account -> products -> order -> reports -> cascade delete,
// with a websocket subscriber watching the events.
func TestEndToEndIntegration(t *testing.T) {
	cfg := config.Config{
		DBDriver:           config.DriverSQLite,
		DBName:             ":memory:",
		DBLogLevel:         "silent",
		CORSAllowedOrigins: []string{"*"},
	}
	db, err := config.InitDB(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	hub := events.NewHub()
	srv := httptest.NewServer(router.SetupRouter(db, hub, cfg))
	defer srv.Close()

	wsURL := "ws" + srv.URL[len("http"):] + "/ws/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	customerID := createTest(t, srv.URL+"/customers", map[string]interface{}{
		"name": "Jane Doe", "email": "jane@example.com", "phone": "555-0100",
	})

	var msg events.Message
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, events.EventCustomerCreated, msg.Event)

	createTest(t, srv.URL+"/customeraccounts", map[string]interface{}{
		"username": "janedoe01", "password": "Str0ng#Pass", "customer_id": customerID,
	})
	widget := createTest(t, srv.URL+"/products", map[string]interface{}{
		"name": "Widget", "price": 2.5, "stock_quantity": 4,
	})
	gadget := createTest(t, srv.URL+"/products", map[string]interface{}{
		"name": "Gadget", "price": 10, "stock_quantity": 1,
	})

	orderID := createTest(t, fmt.Sprintf("%s/orders?Product=%d&Product=%d", srv.URL, widget, gadget), map[string]interface{}{
		"date": "2024-05-01", "expected_delivery": "2024-05-03", "customer_id": customerID,
	})

	code, body := getTest(t, fmt.Sprintf("%s/orders/track_by_id?order_id=%d", srv.URL, orderID))
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), `"expected_delivery":"2024-05-03"`)

	code, body = getTest(t, fmt.Sprintf("%s/orders/orderhistory?customer_id=%d", srv.URL, customerID))
	require.Equal(t, http.StatusOK, code)
	var history []map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Data, &history))
	require.Len(t, history, 1)
	assert.Len(t, history[0]["products"], 2)

	code, _ = getTest(t, srv.URL+"/products/checkstock")
	assert.Equal(t, http.StatusOK, code)

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/customers/%d", srv.URL, customerID), nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	code, _ = getTest(t, fmt.Sprintf("%s/orders/orderhistory?customer_id=%d", srv.URL, customerID))
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = getTest(t, fmt.Sprintf("%s/orders/%d", srv.URL, orderID))
	assert.Equal(t, http.StatusNotFound, code)
}

func createTest(t *testing.T, url string, payload map[string]interface{}) uint {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body utils.JSONResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, http.StatusCreated, resp.StatusCode, body.Message)

	data := body.Data.(map[string]interface{})
	return uint(data["id"].(float64))
}

type rawResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func getTest(t *testing.T, url string) (int, rawResponse) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body rawResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}
