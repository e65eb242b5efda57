package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lovoo/goka"
)

const (
	maxRetries    int = 10
	retryInterval     = 5 * time.Second
)

type publisherKey struct {
	brokers string
	topic   string
}

type publisherInstance struct {
	publisher *SimpleKafkaPublisher
	once      sync.Once
	err       error
}

// Emitters are shared per broker set and topic.
var (
	publishersMap   = make(map[publisherKey]*publisherInstance)
	publishersMutex sync.Mutex
)

func NewKafkaPublisher(brokers []string, topic string, prototype any) (*SimpleKafkaPublisher, error) {
	key := publisherKey{
		brokers: strings.Join(brokers, ","),
		topic:   topic,
	}

	publishersMutex.Lock()
	instance, exists := publishersMap[key]
	if !exists {
		instance = &publisherInstance{}
		publishersMap[key] = instance
	}
	publishersMutex.Unlock()

	instance.once.Do(func() {
		slog.Debug("creating kafka publisher",
			slog.String("topic", topic),
			slog.String("prototype_type", fmt.Sprintf("%T", prototype)),
		)

		for try := 0; try < maxRetries; try++ {
			slog.Debug("connecting to kafka brokers", slog.String("brokers", key.brokers), slog.Int("try", try))
			e, err := goka.NewEmitter(brokers, goka.Stream(topic), newJSONCodec(prototype))
			if err == nil {
				instance.publisher = &SimpleKafkaPublisher{emitter: e}
				return
			}
			slog.Warn("kafka emitter not ready", slog.String("error", err.Error()))
			time.Sleep(retryInterval)
		}

		instance.err = fmt.Errorf("impossible to connect to kafka brokers after %d retries", maxRetries)
	})

	if instance.err != nil {
		return nil, instance.err
	}

	return instance.publisher, nil
}

var _ Publisher = (*SimpleKafkaPublisher)(nil)

type SimpleKafkaPublisher struct {
	emitter *goka.Emitter
}

func (p *SimpleKafkaPublisher) Publish(_ context.Context, key Key, message Message) error {
	slog.Debug("publishing message", slog.String("key", string(key)))
	err := p.emitter.EmitSync(string(key), message)
	if err != nil {
		slog.Error("emitting message", slog.String("error", err.Error()))
		return err
	}

	return nil
}

var _ PublisherFactory = (*KafkaPublisherFactory)(nil)

type KafkaPublisherFactory struct {
	brokers []string
}

func NewKafkaPublisherFactory(brokers []string) *KafkaPublisherFactory {
	return &KafkaPublisherFactory{brokers: brokers}
}

func (f *KafkaPublisherFactory) New(topic Topic, prototype Message) (Publisher, error) {
	publisher, err := NewKafkaPublisher(f.brokers, string(topic), prototype)
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	return publisher, nil
}

var _ ConsumerFactory = (*KafkaConsumerFactory)(nil)

type KafkaConsumerFactory struct {
	brokers []string
	group   string
}

func NewKafkaConsumerFactory(brokers []string, group string) *KafkaConsumerFactory {
	return &KafkaConsumerFactory{
		brokers: brokers,
		group:   group,
	}
}

func (f *KafkaConsumerFactory) New() Consumer {
	return &SimpleKafkaConsumer{
		brokers: f.brokers,
		group:   goka.Group(f.group),
	}
}

var _ Consumer = (*SimpleKafkaConsumer)(nil)

type SimpleKafkaConsumer struct {
	brokers []string
	group   goka.Group
}

// Consume blocks running a goka processor for the topic.
func (c *SimpleKafkaConsumer) Consume(topic Topic, handler MessageHandler, prototype Prototype) error {
	cb := func(ctx goka.Context, msg any) {
		if err := handler(ctx.Context(), Key(ctx.Key()), msg); err != nil {
			slog.Error("handling kafka message",
				slog.String("topic", string(topic)),
				slog.String("error", err.Error()),
			)
		}
	}

	gg := goka.DefineGroup(
		c.group,
		goka.Input(goka.Stream(topic), newJSONCodec(prototype), cb),
	)
	p, err := goka.NewProcessor(c.brokers, gg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	return p.Run(context.Background())
}
