// Command devtoken prints a bearer token for local testing, signed with JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"cvapi/internal/auth"
	"cvapi/internal/config"
	"cvapi/internal/logging"
)

func main() {
	cfg := config.Load()
	log := logging.New("devtoken", logging.Options{Level: cfg.Log.Level, Output: os.Stderr, Location: cfg.Log.Location()})

	user := flag.String("user", "", "user id placed in the token subject")
	ttl := flag.Duration("ttl", cfg.Auth.TokenTTL(), "token lifetime")
	flag.Parse()

	if *user == "" {
		log.Error("missing -user flag")
		flag.Usage()
		os.Exit(2)
	}

	verifier, err := auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	if err != nil {
		log.Error("cannot build signer", "error", err)
		os.Exit(1)
	}

	token, err := verifier.Issue(*user, *ttl)
	if err != nil {
		log.Error("cannot sign token", "error", err)
		os.Exit(1)
	}

	log.Info("token_issued", "user_id", *user, "expires_at", time.Now().Add(*ttl).In(cfg.Log.Location()).Format(time.RFC3339))
	fmt.Println(token)
}
