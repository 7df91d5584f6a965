package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/wanderplan/travel-planner-api/internal/platform/auth/tokens"
)

// Tiny dev-only token minter.
//
// It signs a bearer token with the same HS256 secret the API verifies
// against, for exercising protected endpoints from curl without going
// through signup/login.
//
//	JWT_SECRET=local-secret go run ./cmd/devtoken -sub alice
func main() {
	sub := flag.String("sub", "", "token subject (username), required")
	issuer := flag.String("iss", getenv("JWT_ISSUER", "travel-planner-api"), "token issuer")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *sub == "" {
		log.Fatal("missing -sub")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("missing JWT_SECRET")
	}

	token, err := tokens.New(secret, *issuer, *ttl).Sign(*sub)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
