// Command opstoken prints an operator bearer token for the query API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"proximity/config"
	"proximity/internal/domain/service"
	"proximity/internal/infra/auth"
	"proximity/internal/infra/clock"
)

func main() {
	subject := flag.String("subject", "", "operator identity written to the token subject")
	scopes := flag.String("scopes", service.ScopeLedgerRead+","+service.ScopeGeofenceRead, "comma separated scopes")
	flag.Parse()

	if *subject == "" {
		slog.Error("subject is required")
		os.Exit(2)
	}

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	tokenSvc, err := auth.NewJWTService(cfg.Auth, clock.New())
	if err != nil {
		slog.Error("Failed to create token service", slog.Any("error", err))
		os.Exit(1)
	}

	token, err := tokenSvc.IssueOperatorToken(*subject, strings.Split(*scopes, ","))
	if err != nil {
		slog.Error("Failed to issue token", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Println(token)
}
