package configs

import "time"

// Relay configures the outbox relay that forwards ledger events to the
// publisher.
type Relay struct {
	Interval  time.Duration `env:"INTERVAL" envDefault:"2s"`
	BatchSize int           `env:"BATCH_SIZE" envDefault:"100"`
}
