package broker

import (
	"log"

	"carebridge-org/carebridge/config"

	"github.com/nats-io/nats.go"
)

// Producer publishes serialized domain events to NATS subjects
type Producer struct {
	conn *nats.Conn
}

// DefaultProducer is initialized by InitProducer in main
var DefaultProducer *Producer

func InitProducer(cfg config.Config) error {
	conn, err := nats.Connect(cfg.NatsURL,
		nats.Name("carebridge-producer"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return err
	}

	DefaultProducer = &Producer{conn: conn}
	log.Printf("NATS producer connected to %s", cfg.NatsURL)
	return nil
}

// PublishMessage publishes a message to a subject. The key is carried
// in a header so consumers can route without parsing the payload.
func (p *Producer) PublishMessage(subject string, key string, value string) error {
	if p == nil || p.conn == nil {
		log.Println("NATS producer is not initialized, dropping message")
		return nats.ErrConnectionClosed
	}

	msg := nats.NewMsg(subject)
	msg.Header.Set("Event-Key", key)
	msg.Data = []byte(value)

	if err := p.conn.PublishMsg(msg); err != nil {
		log.Printf("Failed to publish message to %s: %v", subject, err)
		return err
	}
	return nil
}

func CloseProducer() {
	if DefaultProducer != nil && DefaultProducer.conn != nil {
		DefaultProducer.conn.Drain()
		DefaultProducer.conn.Close()
		DefaultProducer = nil
	}
}
