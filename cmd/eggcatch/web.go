package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggcatch/internal/games/catch"
	"github.com/vovakirdan/eggcatch/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the browser front end",
	Long: `Start an HTTP server with a canvas client. Each browser tab runs its own
session on the server over a WebSocket; best scores are shared.

Examples:
  eggcatch web
  eggcatch web --addr :9000

Then open http://localhost:8080 (add ?mode=marathon for marathon rounds).`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	mustValidConfig(catch.ModeClassic)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	server := web.NewServer(web.Config{
		Addr:     flagWebAddr,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, store, appLogger.WithPrefix("eggcatch-web"))

	fmt.Printf("Starting Egg Catch web server on %s\n", flagWebAddr)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
