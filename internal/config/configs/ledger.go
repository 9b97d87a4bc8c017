package configs

// Ledger selects the settlement policies of the campaign ledger.
type Ledger struct {
	// RefundMode is "pull" (donors claim refunds) or "push" (EndCampaign
	// refunds every donor in one call).
	RefundMode string `env:"REFUND_MODE" envDefault:"pull"`
	// DeadlinePolicy is "strict" (no contributions after the deadline) or
	// "grace" (contributions accepted until the campaign is ended).
	DeadlinePolicy string `env:"DEADLINE_POLICY" envDefault:"strict"`
	// Faucet enables the deposit endpoint that credits accounts with new
	// value. Only meant for development.
	Faucet bool `env:"FAUCET" envDefault:"false"`
}
