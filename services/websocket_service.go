package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"carebridge-org/carebridge/broker"
	"carebridge-org/carebridge/config"
	"carebridge-org/carebridge/database"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
)

// WebSocketServiceInterface defines the operations provided by the WebSocket service
type WebSocketServiceInterface interface {
	Start(cfg config.Config)
	Stop()
	HandleConnection(c *gin.Context)
	SetMessageInputChannel(ch chan *nats.Msg)
}

// Client represents a connected WebSocket client
type Client struct {
	ID     string
	UserID string
	Hub    *WebSocketService
	Conn   *websocket.Conn
	Send   chan []byte
}

// ServerMessage is the envelope pushed to connected clients
type ServerMessage struct {
	Type    string      `json:"type"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// WebSocketService pushes broker events to connected clients. Its main
// consumer is the notification bell: a notification event is routed
// only to clients authenticated as its recipient.
type WebSocketService struct {
	clients      map[string]*Client
	register     chan *Client
	unregister   chan *Client
	clientsMutex sync.RWMutex

	upgrader websocket.Upgrader
	db       *database.Database
	subjects []string

	messages chan *nats.Msg
	consumer *broker.Consumer

	isRunning bool
	stopChan  chan struct{}
}

// NewWebSocketService creates a new WebSocket service
func NewWebSocketService(db *database.Database, subjects []string) *WebSocketService {
	return &WebSocketService{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		db:       db,
		subjects: subjects,

		messages: make(chan *nats.Msg, 256),

		isRunning: false,
		stopChan:  make(chan struct{}),
	}
}

// SetMessageInputChannel replaces the internal message channel - useful for testing
func (ws *WebSocketService) SetMessageInputChannel(ch chan *nats.Msg) {
	ws.messages = ch
}

// Start begins the hub and subscribes to the configured broker subjects
func (ws *WebSocketService) Start(cfg config.Config) {
	if ws.isRunning {
		return
	}
	ws.isRunning = true

	go ws.run()

	consumer, err := broker.InitConsumer(cfg, ws.subjects, "websocket")
	if err != nil {
		log.Printf("Failed to connect WebSocket service to NATS: %v", err)
		log.Println("WebSocket service will run with reduced functionality")
		return
	}
	ws.consumer = consumer

	go func() {
		for msg := range consumer.GetMessageChannel() {
			select {
			case ws.messages <- msg:
			default:
				log.Println("Warning: WebSocket message channel is full, discarding message")
			}
		}
	}()

	log.Println("WebSocket service started")
}

// Stop gracefully shuts down the WebSocket service
func (ws *WebSocketService) Stop() {
	if !ws.isRunning {
		return
	}

	ws.isRunning = false
	close(ws.stopChan)

	if ws.consumer != nil {
		ws.consumer.Close()
	}

	ws.clientsMutex.Lock()
	for _, client := range ws.clients {
		if client != nil && client.Conn != nil {
			client.Conn.Close()
		}
	}
	ws.clientsMutex.Unlock()

	log.Println("WebSocket service stopped")
}

// run handles the main client message hub
func (ws *WebSocketService) run() {
	for {
		select {
		case <-ws.stopChan:
			return

		case client := <-ws.register:
			ws.clientsMutex.Lock()
			ws.clients[client.ID] = client
			ws.clientsMutex.Unlock()
			log.Printf("Client connected: %s (user: %s)", client.ID, client.UserID)

		case client := <-ws.unregister:
			ws.clientsMutex.Lock()
			if _, ok := ws.clients[client.ID]; ok {
				delete(ws.clients, client.ID)
				close(client.Send)
				log.Printf("Client disconnected: %s", client.ID)
			}
			ws.clientsMutex.Unlock()

		case msg := <-ws.messages:
			ws.handleBrokerMessage(msg)
		}
	}
}

// HandleConnection upgrades an authenticated HTTP request to a
// WebSocket connection. WebSocketAuthMiddleware has already placed the
// caller's identity in the context.
func (ws *WebSocketService) HandleConnection(c *gin.Context) {
	userIDValue, exists := c.Get("userID")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	conn, err := ws.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		return
	}

	client := &Client{
		ID:     uuid.New().String(),
		UserID: userID.String(),
		Hub:    ws,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	ws.register <- client

	go client.readPump()
	go client.writePump()
}

// handleBrokerMessage routes a broker event to the clients that own it.
// Events without a user_id are delivered to every connected client.
func (ws *WebSocketService) handleBrokerMessage(msg *nats.Msg) {
	var eventData map[string]interface{}
	if err := json.Unmarshal(msg.Data, &eventData); err != nil {
		log.Printf("Error parsing broker message: %v", err)
		return
	}

	eventType := msg.Header.Get("Event-Key")
	if typeVal, ok := eventData["type"].(string); ok {
		eventType = typeVal
	}

	recipientID, _ := eventData["user_id"].(string)

	serverMsg := ServerMessage{
		Type:    "event",
		Event:   eventType,
		Payload: eventData,
	}

	jsonData, err := json.Marshal(serverMsg)
	if err != nil {
		log.Printf("Error serializing server message: %v", err)
		return
	}

	ws.clientsMutex.RLock()
	defer ws.clientsMutex.RUnlock()

	for _, client := range ws.clients {
		if recipientID != "" && client.UserID != recipientID {
			continue
		}
		select {
		case client.Send <- jsonData:
		default:
			log.Printf("Client %s send buffer full, dropping message", client.ID)
		}
	}
}

// readPump discards inbound frames and tears the client down on error.
// The bell stream is push-only; clients talk to the REST API instead.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
	}
}

// writePump forwards queued messages to the client connection
func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

var WebSocketServiceInstance *WebSocketService
