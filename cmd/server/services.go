package main

import (
	"codeberg.org/creatorkit/server/creatorkit/usage"
	"codeberg.org/creatorkit/server/internal/config"
	"codeberg.org/creatorkit/server/internal/logger"
	"codeberg.org/creatorkit/server/internal/quota"
	"codeberg.org/creatorkit/server/internal/toolkit"
	"codeberg.org/creatorkit/server/internal/webhooks"
)

// creates the generation engine, quota policy, and event sender
func InitializeServices(cfg *config.Config, ledger *usage.Ledger) *Services {
	engine := toolkit.New()
	registry := toolkit.NewRegistry(engine)
	policy := quota.New(ledger)
	events := webhooks.NewSender(cfg.WebhookURL)

	if !events.Enabled() {
		logger.Info("webhooks disabled, no WEBHOOK_URL configured")
	}

	logger.Info("services initialized",
		"tools", len(registry.List()),
		"daily_limit", policy.Limit(),
		"webhooks_enabled", events.Enabled(),
	)

	return &Services{
		Registry: registry,
		Policy:   policy,
		Events:   events,
	}
}
