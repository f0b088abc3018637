package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"product-service/internal/config"
)

// KafkaProducer sends domain events to a Kafka topic.
//
// Delivery is fire-and-forget: Publish returns immediately and the send
// completes on a background goroutine. A failed send is logged and contained
// here; it never reaches the caller.
type KafkaProducer struct {
	writer          *kafka.Writer
	brokers         []string
	topic           string
	deliveryTimeout time.Duration
}

func NewKafkaProducer(cfg config.KafkaConfig) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}

	return &KafkaProducer{
		writer:          writer,
		brokers:         cfg.Brokers,
		topic:           cfg.Topic,
		deliveryTimeout: time.Duration(cfg.DeliveryTimeout) * time.Second,
	}
}

// Publish serializes payload and hands it off to the broker asynchronously.
// The returned error covers serialization only; delivery outcome is logged.
func (p *KafkaProducer) Publish(ctx context.Context, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	go p.send(key, data)
	return nil
}

func (p *KafkaProducer) send(key string, data []byte) {
	// Detached from the request context: the HTTP response must not wait for
	// broker acknowledgement, and a request cancellation must not abort the send.
	ctx, cancel := context.WithTimeout(context.Background(), p.deliveryTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Error().
			Err(err).
			Str("topic", p.topic).
			Str("key", key).
			RawJSON("payload", data).
			Msg("Failed to send event")
		return
	}

	log.Info().
		Str("topic", p.topic).
		Str("key", key).
		RawJSON("payload", data).
		Msg("Event sent")
}

// EnsureTopic creates the configured topic if it does not exist yet.
func EnsureTopic(ctx context.Context, cfg config.KafkaConfig) error {
	conn, err := kafka.DialContext(ctx, "tcp", cfg.Brokers[0])
	if err != nil {
		return fmt.Errorf("failed to dial kafka broker: %w", err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("failed to resolve kafka controller: %w", err)
	}

	controllerConn, err := kafka.DialContext(ctx, "tcp",
		net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return fmt.Errorf("failed to dial kafka controller: %w", err)
	}
	defer controllerConn.Close()

	err = controllerConn.CreateTopics(kafka.TopicConfig{
		Topic:             cfg.Topic,
		NumPartitions:     cfg.Partitions,
		ReplicationFactor: cfg.ReplicationFactor,
	})
	if err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		return fmt.Errorf("failed to create topic %s: %w", cfg.Topic, err)
	}

	return nil
}

// Ping verifies broker connectivity. Called by the health endpoint.
func (p *KafkaProducer) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	conn, err := kafka.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("kafka broker unreachable: %w", err)
	}
	return conn.Close()
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
