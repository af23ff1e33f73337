package broker

import (
	"log"

	"carebridge-org/carebridge/config"

	"github.com/nats-io/nats.go"
)

// Consumer subscribes to one or more subjects and exposes received
// messages on a single channel.
type Consumer struct {
	conn     *nats.Conn
	subs     []*nats.Subscription
	messages chan *nats.Msg
}

func InitConsumer(cfg config.Config, subjects []string, group string) (*Consumer, error) {
	conn, err := nats.Connect(cfg.NatsURL,
		nats.Name("carebridge-"+group),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, err
	}

	consumer := &Consumer{
		conn:     conn,
		messages: make(chan *nats.Msg, 256),
	}

	for _, subject := range subjects {
		sub, err := conn.QueueSubscribe(subject, group, func(msg *nats.Msg) {
			select {
			case consumer.messages <- msg:
			default:
				log.Printf("Consumer channel full, dropping message from %s", msg.Subject)
			}
		})
		if err != nil {
			consumer.Close()
			return nil, err
		}
		consumer.subs = append(consumer.subs, sub)
	}

	log.Printf("NATS consumer started, listening to subjects: %v", subjects)
	return consumer, nil
}

// GetMessageChannel returns the channel messages are delivered on
func (c *Consumer) GetMessageChannel() chan *nats.Msg {
	return c.messages
}

func (c *Consumer) Close() {
	for _, sub := range c.subs {
		if err := sub.Unsubscribe(); err != nil {
			log.Printf("Failed to unsubscribe from %s: %v", sub.Subject, err)
		}
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
