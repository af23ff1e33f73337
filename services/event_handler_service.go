package services

import (
	"encoding/json"
	"log"
	"time"

	"carebridge-org/carebridge/broker"
	"carebridge-org/carebridge/database"
	"carebridge-org/carebridge/models"
)

type EventHandlerServiceInterface interface {
	Start()
	Stop()
	ProcessPendingEvents()
}

// EventHandlerService drains the outbox: it polls for undispatched
// rows and publishes them to their broker subject.
type EventHandlerService struct {
	db        *database.Database
	isRunning bool
	ticker    *time.Ticker
}

func NewEventHandlerService(db *database.Database) EventHandlerServiceInterface {
	return &EventHandlerService{
		db:        db,
		isRunning: false,
		ticker:    time.NewTicker(1 * time.Second),
	}
}

func (s *EventHandlerService) Start() {
	if s.isRunning {
		return
	}
	s.isRunning = true
	go s.ProcessPendingEvents()
}

func (s *EventHandlerService) Stop() {
	if !s.isRunning {
		return
	}
	s.isRunning = false
	s.ticker.Stop()
}

func (s *EventHandlerService) ProcessPendingEvents() {
	for range s.ticker.C {
		if !s.isRunning {
			return
		}

		var events []models.OutboxEvent
		if err := s.db.DB.Where("dispatched = ?", false).Find(&events).Error; err != nil {
			log.Printf("Error fetching events: %v", err)
			continue
		}

		for _, event := range events {
			if err := s.dispatchEvent(event); err != nil {
				log.Printf("Error dispatching event %s: %v", event.ID, err)
				continue
			}
		}
	}
}

func (s *EventHandlerService) dispatchEvent(event models.OutboxEvent) error {
	subject := broker.SubjectForEntity(event.Entity)

	var dataMap map[string]interface{}
	if err := json.Unmarshal(event.Data, &dataMap); err != nil {
		log.Printf("Warning: Could not unmarshal event data: %v", err)
		dataMap = make(map[string]interface{})
	}

	payload := map[string]interface{}{
		"event_id":  event.ID.String(),
		"timestamp": event.Timestamp,
		"type":      event.Event,
		"entity":    event.Entity,
		"data":      dataMap,
	}

	// Promote the recipient id so the websocket hub can route the
	// event without digging into the data map.
	if userID, exists := dataMap["user_id"]; exists {
		payload["user_id"] = userID
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if err := broker.DefaultProducer.PublishMessage(subject, event.Event, string(jsonData)); err != nil {
		return err
	}

	now := time.Now()
	return s.db.DB.Model(&event).Updates(map[string]interface{}{
		"dispatched":    true,
		"dispatched_at": now,
		"status":        "completed",
	}).Error
}

var EventHandlerServiceInstance EventHandlerServiceInterface
