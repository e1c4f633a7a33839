//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"codeberg.org/creatorkit/server/creatorkit/profiles"
	"codeberg.org/creatorkit/server/internal/auth"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// load environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// connect to database
	dbConnString := os.Getenv("DATABASE_URL")
	if dbConnString == "" {
		log.Fatal("DATABASE_URL not set")
	}

	dbPool, err := pgxpool.New(context.Background(), dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()
	profileRepo := profiles.NewRepository(dbPool)

	// create or find test profile
	testEmail := "test@creatorkit.dev"
	profile, _, err := profileRepo.FindOrCreateByProvider(ctx, "test", "test-user-123", testEmail)
	if err != nil {
		log.Fatalf("Failed to create test profile: %v", err)
	}

	fmt.Printf("✅ Test profile ready: %s (ID: %s)\n", profile.Email, profile.ID)

	// generate JWT token
	token, err := auth.GenerateJWT(profile.ID, testEmail)
	if err != nil {
		log.Fatalf("Failed to generate JWT: %v", err)
	}

	fmt.Printf("\n🔑 Test JWT Token:\n%s\n\n", token)
	fmt.Printf("Export this token for testing:\nexport TEST_TOKEN=\"%s\"\n", token)
}
