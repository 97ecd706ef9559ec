package main

// Interactive recipe finder:
//   go run ./cmd/chef

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"chef-backend/internal/bootstrap"
	"chef-backend/internal/shared/config"
	"chef-backend/internal/shared/server/middleware"
	"chef-backend/internal/shared/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		exitErr(fmt.Sprintf("load config: %v", err))
	}
	telemetry.Init(telemetry.Config{Level: "warn", Format: "console", Output: os.Stderr})

	ctx := context.Background()
	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		exitErr(fmt.Sprintf("bootstrap: %v", err))
	}
	defer app.Close()

	out := &syncWriter{w: os.Stdout}
	splash(out, cfg.SplashDelay)

	sh := newShell(out, middleware.DefaultPrincipal, app.DiscoveryService, app.PantryService, cfg.Debounce)
	defer sh.close()
	sh.run(ctx, bufio.NewScanner(os.Stdin))
}

// splash shows the banner for the full delay; input is not read until it ends.
// The last sixth of the delay is the fade.
func splash(out *syncWriter, delay time.Duration) {
	if delay <= 0 {
		return
	}
	fade := delay / 6
	fmt.Fprintln(out, "  ~ Chef ~")
	fmt.Fprintln(out, "  what's in your kitchen?")
	time.Sleep(delay - fade)
	fmt.Fprintln(out)
	time.Sleep(fade)
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
