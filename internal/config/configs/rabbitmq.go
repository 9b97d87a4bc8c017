package configs

// RabbitMQ configures the event publisher. An empty URL disables it and
// events are only logged.
type RabbitMQ struct {
	URL   string `env:"URL"`
	Queue string `env:"QUEUE" envDefault:"crowdfund_events"`
}
