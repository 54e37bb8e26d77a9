package configs

import "time"

// Event sinks.
const (
	SinkLog   = "log"
	SinkKafka = "kafka"
	SinkRedis = "redis"
)

// Events configures the outbox relay.
type Events struct {
	Sink          string        `env:"SINK" envDefault:"log"`
	RelayInterval time.Duration `env:"RELAY_INTERVAL" envDefault:"2s"`
	BatchSize     int           `env:"BATCH_SIZE" envDefault:"100"`
}

// Kafka configures the kafka sink.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"crowdfund.ledger.events"`
}

// Redis configures the redis sink. Events are published to
// ChannelPrefix + event type.
type Redis struct {
	URL           string `env:"URL" envDefault:"redis://localhost:6379/0"`
	ChannelPrefix string `env:"CHANNEL_PREFIX" envDefault:"crowdfund:"`
}
