package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartTicketConsumer drains the ticket queue and appends each event to a
// log file under dir.  It reconnects with a fixed backoff until ctx is
// cancelled, so a broker restart does not require a server restart.
func StartTicketConsumer(ctx context.Context, url, dir string) {
	const backoff = 5 * time.Second
	for {
		if ctx.Err() != nil {
			return
		}
		if err := consumeOnce(ctx, url, dir); err != nil {
			log.Printf("queue: consumer stopped: %v, retrying in %s", err, backoff)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
	}
}

func consumeOnce(ctx context.Context, url, dir string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(TicketQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", TicketQueue, err)
	}

	deliveries, err := ch.Consume(TicketQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", TicketQueue, err)
	}

	log.Printf("queue: consuming %s", TicketQueue)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			if err := handleDelivery(dir, d.Body); err != nil {
				// Do not requeue: a malformed body would redeliver forever.
				log.Printf("queue: handle delivery failed: %v", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func handleDelivery(dir string, body []byte) error {
	var ev TicketCreatedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("decode ticket event: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "ticket.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ticket log: %w", err)
	}
	defer f.Close()
	line := fmt.Sprintf("%s ticket=%s event=%q user=%s principal=%s\n",
		ev.OccurredAt.Format(time.RFC3339), ev.TicketID, ev.EventName, ev.UserID, ev.Principal)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write ticket log: %w", err)
	}
	return nil
}
