package main

// Check a running instance:
//   go run ./cmd/apicheck --base-url http://localhost:8080

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"portfolio-backend/internal/apicheck"
	"portfolio-backend/internal/shared/telemetry"
)

func main() {
	v := viper.New()
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.AutomaticEnv()

	flags := pflag.NewFlagSet("apicheck", pflag.ExitOnError)
	baseURL := flags.String("base-url", v.GetString("API_BASE_URL"), "API origin, without the /api prefix")
	clientName := flags.String("client-name", "apicheck", "client_name used for the status round trip")
	_ = flags.Parse(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	checker := apicheck.New(*baseURL)
	checker.ClientName = *clientName
	report := checker.Run(ctx)

	for _, res := range report.Results {
		fields := map[string]any{"check": res.Name, "duration_ms": res.Duration.Milliseconds()}
		if res.Passed {
			telemetry.Info("apicheck.pass", fields)
			continue
		}
		fields["error"] = res.Error
		telemetry.Error("apicheck.fail", fields)
	}

	passed, total := report.Counts()
	telemetry.Info("apicheck.summary", map[string]any{"base_url": *baseURL, "passed": passed, "total": total})
	if !report.Passed() {
		stop()
		os.Exit(1)
	}
}
