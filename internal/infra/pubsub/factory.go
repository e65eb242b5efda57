package pubsub

const EnvironmentLocal = "local"

// Factory picks the in-memory broker for local runs and Kafka otherwise.
type Factory struct {
	publisherFactory PublisherFactory
	consumerFactory  ConsumerFactory
}

type FactoryOptions struct {
	Environment   string
	KafkaBrokers  []string
	ConsumerGroup string
}

func NewFactory(opts FactoryOptions) *Factory {
	if opts.Environment == EnvironmentLocal || opts.Environment == "" {
		return &Factory{
			publisherFactory: NewMemoryPublisherFactory(),
			consumerFactory:  NewMemoryConsumerFactory(opts.ConsumerGroup),
		}
	}

	return &Factory{
		publisherFactory: NewKafkaPublisherFactory(opts.KafkaBrokers),
		consumerFactory:  NewKafkaConsumerFactory(opts.KafkaBrokers, opts.ConsumerGroup),
	}
}

func (f *Factory) GetPublisherFactory() PublisherFactory {
	return f.publisherFactory
}

func (f *Factory) GetConsumerFactory() ConsumerFactory {
	return f.consumerFactory
}
