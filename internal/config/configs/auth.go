package configs

import "time"

// Auth configures the HS256 bearer tokens that carry the caller address.
type Auth struct {
	Secret   string        `env:"JWT_SECRET" envDefault:"change-me"`
	Issuer   string        `env:"JWT_ISSUER" envDefault:"crowdfund"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}
