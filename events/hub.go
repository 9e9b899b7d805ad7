package events

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/yeremiapane/ecommerce-api/utils"
)

// Event types
const (
	EventCustomerCreated        = "customer_created"
	EventCustomerUpdated        = "customer_updated"
	EventCustomerDeleted        = "customer_deleted"
	EventCustomerAccountCreated = "customer_account_created"
	EventCustomerAccountUpdated = "customer_account_updated"
	EventCustomerAccountDeleted = "customer_account_deleted"
	EventProductCreated         = "product_created"
	EventProductUpdated         = "product_updated"
	EventProductDeleted         = "product_deleted"
	EventOrderCreated           = "order_created"
	EventOrderUpdated           = "order_updated"
	EventOrderDeleted           = "order_deleted"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub fans change events out to websocket subscribers. A nil *Hub is
// valid and drops every message.
type Hub struct {
	clients   map[*websocket.Conn]struct{}
	mutex     sync.Mutex
	upgrader  websocket.Upgrader
	writeWait time.Duration
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]struct{}),
		writeWait: 5 * time.Second,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeWS upgrades the request and keeps the subscriber until it
// disconnects. Inbound messages are read and discarded.
func (h *Hub) ServeWS(c *gin.Context) {
	if !websocket.IsWebSocketUpgrade(c.Request) {
		c.AbortWithStatusJSON(http.StatusBadRequest, utils.JSONResponse{
			Status:  false,
			Message: "websocket upgrade required",
		})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("Websocket upgrade failed: %v", err)
		return
	}
	h.register(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.unregister(conn)
}

// Clients returns the number of connected subscribers.
func (h *Hub) Clients() int {
	if h == nil {
		return 0
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Publish sends one event to every subscriber. A subscriber that cannot
// be written to within writeWait is dropped.
func (h *Hub) Publish(event string, data interface{}) {
	if h == nil {
		return
	}

	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling %s event: %v", event, err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(h.writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			utils.ErrorLogger.Printf("Error sending %s event, dropping subscriber: %v", event, err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
	utils.InfoLogger.Debugf("Broadcast %s to %d subscribers", event, len(h.clients))
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}
