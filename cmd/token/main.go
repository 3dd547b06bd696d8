// Package main mints a bearer token for the notes API write endpoints.
// Usage: notes-token [--subject NAME] [--ttl 24h] [--output json]
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"notes-api/internal/handler/http/auth"
)

// TokenOutput is the JSON output format.
type TokenOutput struct {
	Token     string    `json:"token"`
	Subject   string    `json:"subject"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func main() {
	var (
		subject      string
		ttl          time.Duration
		outputFormat string
	)

	flag.StringVar(&subject, "subject", "admin", "Token subject (sub claim)")
	flag.DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		fmt.Fprintln(os.Stderr, "Error: JWT_SECRET is required")
		os.Exit(1)
	}
	if ttl <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --ttl must be positive")
		os.Exit(1)
	}

	now := time.Now()
	token, err := auth.IssueToken(secret, subject, auth.RoleWriter, ttl, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if outputFormat == "json" {
		out := TokenOutput{
			Token:     token,
			Subject:   subject,
			Role:      auth.RoleWriter,
			ExpiresAt: now.Add(ttl).UTC(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(token)
}
