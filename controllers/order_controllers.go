package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/ecommerce-api/events"
	"github.com/yeremiapane/ecommerce-api/models"
	"github.com/yeremiapane/ecommerce-api/repositories"
	"github.com/yeremiapane/ecommerce-api/schemas"
	"github.com/yeremiapane/ecommerce-api/utils"
)

const msgOrderNotFound = "Order not found"

type OrderController struct {
	Orders *repositories.OrderRepository
	Hub    *events.Hub
}

func NewOrderController(db *gorm.DB, hub *events.Hub) *OrderController {
	return &OrderController{
		Orders: repositories.NewOrderRepository(db),
		Hub:    hub,
	}
}

// GetAllOrders -> GET /orders, each with its products
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, msgOrderNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", schemas.DumpOrders(orders))
}

// GetOrderByID -> GET /orders/:id
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := oc.Orders.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, msgOrderNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", schemas.DumpOrder(*order))
}

// CreateOrder -> POST /orders?Product=1&Product=2
//
// Product ids that do not resolve are skipped rather than rejected.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	rec, ok := loadPayload(c, schemas.OrderSchema)
	if !ok {
		return
	}
	ids := productIDs(c)

	order := models.Order{
		Date:             rec.Date("date"),
		ExpectedDelivery: rec.Date("expected_delivery"),
		CustomerID:       uint(rec.Int("customer_id")),
	}
	if err := oc.Orders.Create(c.Request.Context(), &order, ids); err != nil {
		respondStoreError(c, err, msgOrderNotFound)
		return
	}

	utils.InfoLogger.Printf("New order created (ID=%d, customer=%d, lines=%d)", order.ID, order.CustomerID, len(order.Lines))
	oc.Hub.Publish(events.EventOrderCreated, schemas.DumpOrder(order))
	utils.RespondJSON(c, http.StatusCreated, "New order added successfully", gin.H{"id": order.ID})
}

// UpdateOrder -> PUT /orders/:id. Lines are replaced only when at least
// one Product parameter parses as an id; malformed values alone keep them.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := oc.Orders.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, msgOrderNotFound)
		return
	}

	rec, ok := loadPayload(c, schemas.OrderSchema)
	if !ok {
		return
	}
	ids := productIDs(c)

	order.Date = rec.Date("date")
	order.ExpectedDelivery = rec.Date("expected_delivery")
	order.CustomerID = uint(rec.Int("customer_id"))
	if err := oc.Orders.Update(c.Request.Context(), order, ids, len(ids) > 0); err != nil {
		respondStoreError(c, err, msgOrderNotFound)
		return
	}

	oc.Hub.Publish(events.EventOrderUpdated, schemas.DumpOrder(*order))
	utils.RespondJSON(c, http.StatusOK, "Order updated successfully", gin.H{"id": order.ID})
}

// DeleteOrder -> DELETE /orders/:id
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := oc.Orders.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, msgOrderNotFound)
		return
	}

	oc.Hub.Publish(events.EventOrderDeleted, gin.H{"id": id})
	utils.RespondJSON(c, http.StatusOK, "Order removed successfully", gin.H{"id": id})
}

// TrackOrder -> GET /orders/track_by_id?order_id=
func (oc *OrderController) TrackOrder(c *gin.Context) {
	id, ok := queryID(c, "order_id")
	if !ok {
		return
	}

	order, err := oc.Orders.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, msgOrderNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order tracking", schemas.DumpTracking(*order))
}

// OrderHistory -> GET /orders/orderhistory?customer_id=
func (oc *OrderController) OrderHistory(c *gin.Context) {
	customerID, ok := queryID(c, "customer_id")
	if !ok {
		return
	}

	orders, err := oc.Orders.ByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondStoreError(c, err, msgOrderNotFound)
		return
	}
	if len(orders) == 0 {
		utils.RespondError(c, http.StatusNotFound, &CustomError{"No orders found for this customer"})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order history", schemas.DumpOrders(orders))
}
