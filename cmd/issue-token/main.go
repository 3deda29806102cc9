// Command issue-token prints a bearer token for the onboard API.
//
//	JWT_SECRET=... issue-token -sub hr@example.com -role HR_ADMIN
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dgallion1/onboard/internal/auth"
	"github.com/dgallion1/onboard/internal/config"
)

func main() {
	sub := flag.String("sub", "", "token subject, usually the user's email")
	role := flag.String("role", string(auth.RoleHire), "HR_ADMIN or HIRE")
	ttl := flag.Duration("ttl", 0, "token lifetime (default TOKEN_TTL)")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *ttl > 0 {
		cfg.TokenTTL = *ttl
	}

	r, err := auth.ParseRole(*role)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	tokens, err := auth.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	token, err := tokens.Issue(*sub, r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Println(token)
}
