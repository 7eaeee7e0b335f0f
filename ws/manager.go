package ws

import (
	"sync"

	"chefbazaar_backend/internal/logger"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/services/dto"
)

// WebSocketManager fans order status events out to every connected
// listener. It is broadcast-only: incoming frames are drained and
// ignored, and delivery is unacknowledged.
type WebSocketManager struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan any
	mu         sync.RWMutex
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan any, 256),
	}
}

func (manager *WebSocketManager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			if old, ok := manager.clients[client.ID]; ok {
				// Reconnect: the newer connection wins.
				close(old.Send)
			}
			manager.clients[client.ID] = client
			total := len(manager.clients)
			manager.mu.Unlock()
			logger.Info("WebSocket client registered", "client", client.ID, "total", total)

		case client := <-manager.unregister:
			manager.mu.Lock()
			if current, ok := manager.clients[client.ID]; ok && current == client {
				close(client.Send)
				delete(manager.clients, client.ID)
				logger.Info("WebSocket client unregistered", "client", client.ID, "total", len(manager.clients))
			}
			manager.mu.Unlock()

		case message := <-manager.broadcast:
			manager.broadcastMessage(message)
		}
	}
}

// PublishOrderStatus satisfies services.Notifier. It hands the event to
// the broadcast loop without waiting for delivery.
func (manager *WebSocketManager) PublishOrderStatus(orderID string, newStatus models.OrderStatus) {
	event := dto.OrderStatusEvent{
		Event:     "order-status",
		OrderID:   orderID,
		NewStatus: newStatus,
	}

	select {
	case manager.broadcast <- event:
	default:
		// The loop is saturated; the event is dropped rather than
		// stalling the order transition.
		logger.Warn("WebSocket broadcast dropped", "orderId", orderID)
	}
}

func (manager *WebSocketManager) broadcastMessage(message any) {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	for clientID, client := range manager.clients {
		select {
		case client.Send <- message:
		default:
			// Slow consumer, disconnect it instead of blocking the rest.
			go func(c *Client) {
				manager.unregister <- c
			}(client)
			logger.Warn("WebSocket client disconnected due to full send channel", "client", clientID)
		}
	}
}

func (manager *WebSocketManager) GetClientCount() int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.clients)
}

func (manager *WebSocketManager) IsClientConnected(clientID string) bool {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	_, exists := manager.clients[clientID]
	return exists
}
