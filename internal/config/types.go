package config

type Config struct {
	DatabaseURL   string
	JWTSecret     string
	SessionSecret string
	WebhookURL    string // optional, empty disables outbound events
	BaseURL       string
	Environment   string
}

// reports whether the outbound webhook collaborator is configured
func (c *Config) WebhooksEnabled() bool {
	return c.WebhookURL != ""
}
