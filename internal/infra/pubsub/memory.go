package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

var (
	_ PublisherFactory = (*MemoryPublisherFactory)(nil)
	_ ConsumerFactory  = (*MemoryConsumerFactory)(nil)
)

type MemoryPublisherFactory struct {
	broker *MemoryBroker
}

func NewMemoryPublisherFactory() *MemoryPublisherFactory {
	return NewMemoryPublisherFactoryWithBroker(GetMemoryBroker())
}

func NewMemoryPublisherFactoryWithBroker(broker *MemoryBroker) *MemoryPublisherFactory {
	return &MemoryPublisherFactory{
		broker: broker,
	}
}

func (f *MemoryPublisherFactory) New(topic Topic, _ Message) (Publisher, error) {
	return &MemoryPublisher{
		broker: f.broker,
		topic:  topic,
	}, nil
}

type MemoryPublisher struct {
	broker *MemoryBroker
	topic  Topic
}

func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	return p.broker.Publish(ctx, p.topic, key, message)
}

type MemoryConsumerFactory struct {
	broker *MemoryBroker
	group  string
}

func NewMemoryConsumerFactory(group string) *MemoryConsumerFactory {
	return NewMemoryConsumerFactoryWithBroker(GetMemoryBroker(), group)
}

func NewMemoryConsumerFactoryWithBroker(broker *MemoryBroker, group string) *MemoryConsumerFactory {
	return &MemoryConsumerFactory{
		broker: broker,
		group:  group,
	}
}

func (f *MemoryConsumerFactory) New() Consumer {
	return &MemoryConsumer{
		broker: f.broker,
		group:  f.group,
	}
}

type MemoryConsumer struct {
	broker *MemoryBroker
	group  string
}

func (c *MemoryConsumer) Consume(topic Topic, handler MessageHandler, _ Prototype) error {
	return c.broker.Subscribe(topic, c.group, handler)
}

type MessageEvent struct {
	Topic   Topic
	Key     Key
	Message Message
}

// MemoryBroker delivers messages synchronously to one handler per group
// and keeps every published event for inspection.
type MemoryBroker struct {
	mu          sync.RWMutex
	history     map[Topic][]MessageEvent
	subscribers map[Topic]map[string]MessageHandler
}

var (
	memoryBroker     *MemoryBroker
	memoryBrokerOnce sync.Once
)

func GetMemoryBroker() *MemoryBroker {
	memoryBrokerOnce.Do(func() {
		memoryBroker = NewMemoryBroker()
	})
	return memoryBroker
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		history:     make(map[Topic][]MessageEvent),
		subscribers: make(map[Topic]map[string]MessageHandler),
	}
}

func (b *MemoryBroker) Publish(ctx context.Context, topic Topic, key Key, message Message) error {
	event := MessageEvent{Topic: topic, Key: key, Message: message}

	b.mu.Lock()
	b.history[topic] = append(b.history[topic], event)
	handlers := make([]MessageHandler, 0, len(b.subscribers[topic]))
	for _, handler := range b.subscribers[topic] {
		handlers = append(handlers, handler)
	}
	b.mu.Unlock()

	for _, handler := range handlers {
		if err := handler(ctx, key, message); err != nil {
			slog.Error("memory broker handler failed",
				slog.String("topic", string(topic)),
				slog.String("key", string(key)),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

func (b *MemoryBroker) Subscribe(topic Topic, group string, handler MessageHandler) error {
	if handler == nil {
		return fmt.Errorf("subscribing group %s to %s: nil handler", group, topic)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscribers[topic]; !ok {
		b.subscribers[topic] = make(map[string]MessageHandler)
	}
	b.subscribers[topic][group] = handler

	return nil
}

func (b *MemoryBroker) Messages(topic Topic) []MessageEvent {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]MessageEvent, len(b.history[topic]))
	copy(result, b.history[topic])
	return result
}

func (b *MemoryBroker) GetMessageCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.history[topic])
}

func (b *MemoryBroker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.history = make(map[Topic][]MessageEvent)
	b.subscribers = make(map[Topic]map[string]MessageHandler)
}
