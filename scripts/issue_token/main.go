package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"pc-build-tracker-backend/internal/auth"
	"pc-build-tracker-backend/internal/config"
)

// Prints a bearer token for local testing against a running server
func main() {
	userID := flag.String("user", "", "user id to put in the token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_TTL_MINUTES)")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lifetime := *ttl
	if lifetime <= 0 {
		lifetime = time.Duration(cfg.JWTTTLMinutes) * time.Minute
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, lifetime)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	token, err := tokens.Generate(*userID)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Println(token)
}
