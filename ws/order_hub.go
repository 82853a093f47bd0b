package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/minsmanse/bar/entity"
)

// Event names on the order channel.
const (
	EventOrderCreated = "order-created"
	EventOrderUpdated = "order-updated"
)

const writeTimeout = 5 * time.Second

// OrderEvent is the envelope pushed to every connected viewer.
type OrderEvent struct {
	Event string        `json:"event"`
	Order *entity.Order `json:"order"`
}

// OrderHub fans order events out to every connected admin/guest view.
// There is no replay and no ack: a viewer that (re)connects must re-fetch
// the order list over REST, events only keep an already-synced list fresh.
type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run owns the client set. Start it once, before the HTTP server.
func (h *OrderHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				// a slow or dead viewer is dropped, never waited on
				conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderCreated implements services.OrderNotifier.
func (h *OrderHub) OrderCreated(o *entity.Order) {
	h.broadcast <- OrderEvent{Event: EventOrderCreated, Order: o}
}

// OrderUpdated implements services.OrderNotifier.
func (h *OrderHub) OrderUpdated(o *entity.Order) {
	h.broadcast <- OrderEvent{Event: EventOrderUpdated, Order: o}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn

	go h.waitForClose(conn)
}

// waitForClose drains the connection until the peer goes away. The channel is
// server-to-client only, so inbound frames are discarded.
func (h *OrderHub) waitForClose(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
