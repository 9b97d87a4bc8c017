package configs

// Sentry configures error reporting. Reporting is off when DSN is empty.
type Sentry struct {
	DSN              string  `env:"DSN"`
	TracesSampleRate float64 `env:"TRACES_SAMPLE_RATE" envDefault:"0"`
}
