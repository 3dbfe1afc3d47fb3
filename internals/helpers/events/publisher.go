package events

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
	"github.com/bytedance/sonic"

	"koperasi_backend/internals/configs"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event dikirim setiap kali konten situs berubah lewat panel admin.
type Event struct {
	Resource string    `json:"resource"`
	Action   string    `json:"action"`
	ID       string    `json:"id,omitempty"`
	At       time.Time `json:"at"`
}

func NewEvent(resource, action, id string) Event {
	return Event{Resource: resource, Action: action, ID: id, At: time.Now().UTC()}
}

// Publisher mengirim event perubahan konten.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// NopPublisher dipakai saat KAFKA_BROKERS kosong.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }

// KafkaPublisher implements Publisher using Sarama.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}
	log.Printf("[INFO] Kafka producer connected, topic=%s", topic)
	return &KafkaPublisher{producer: producer, topic: topic}, nil
}

// NewPublisherFromEnv: KafkaPublisher bila KAFKA_BROKERS diset, selain itu NopPublisher.
func NewPublisherFromEnv() Publisher {
	brokers := configs.GetEnvList("KAFKA_BROKERS")
	if len(brokers) == 0 {
		return NopPublisher{}
	}
	p, err := NewKafkaPublisher(brokers, configs.GetEnv("KAFKA_TOPIC", "koperasi.content"))
	if err != nil {
		log.Printf("[WARN] Kafka tidak tersedia, event dimatikan: %v", err)
		return NopPublisher{}
	}
	return p
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev Event) error {
	payload, err := sonic.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.Resource),
		Value: sarama.ByteEncoder(payload),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send to topic %s: %w", p.topic, err)
	}
	log.Printf("[INFO] event %s.%s sent partition=%d offset=%d", ev.Resource, ev.Action, partition, offset)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// Emit mengirim event; kegagalan hanya di-log karena perubahan di DB sudah terjadi.
func Emit(ctx context.Context, p Publisher, resource, action, id string) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, NewEvent(resource, action, id)); err != nil {
		log.Printf("[WARN] publish event %s.%s gagal: %v", resource, action, err)
	}
}
