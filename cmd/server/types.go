package main

import (
	"codeberg.org/creatorkit/server/creatorkit/profiles"
	"codeberg.org/creatorkit/server/creatorkit/runs"
	"codeberg.org/creatorkit/server/creatorkit/usage"
	"codeberg.org/creatorkit/server/internal/config"
	"codeberg.org/creatorkit/server/internal/quota"
	"codeberg.org/creatorkit/server/internal/toolkit"
	"codeberg.org/creatorkit/server/internal/webhooks"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	profileRepo *profiles.Repository
	runRepo     *runs.Repository
	ledger      *usage.Ledger
	services    *Services
	router      *gin.Engine
}

// holds the generation engine and its collaborators
type Services struct {
	Registry *toolkit.Registry
	Policy   *quota.Policy
	Events   *webhooks.Sender
}
