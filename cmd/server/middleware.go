package main

import (
	"time"

	"codeberg.org/creatorkit/server/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://creatorkit.dev"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// per-IP rate limit for the anonymous-capable generate route; the
// per-user daily quota is enforced separately by the quota policy
func GenerateRateLimitMiddleware() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted("30-M")
	if err != nil {
		logger.Fatal("failed to parse rate limit", "error", err)
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
