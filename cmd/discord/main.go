// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/keshon/raid-herald/internal/command/core"
	_ "github.com/keshon/raid-herald/internal/command/events"
	_ "github.com/keshon/raid-herald/internal/command/raid"
	_ "github.com/keshon/raid-herald/internal/command/settings"
	_ "github.com/keshon/raid-herald/internal/command/susa"

	"github.com/keshon/raid-herald/internal/config"
	"github.com/keshon/raid-herald/internal/discord"
	"github.com/keshon/raid-herald/internal/event"
	"github.com/keshon/raid-herald/internal/logging"
	"github.com/keshon/raid-herald/internal/mascot"
	"github.com/keshon/raid-herald/internal/roster"
	"github.com/keshon/raid-herald/internal/storage"
	v "github.com/keshon/raid-herald/internal/version"
)

func main() {
	cfg := config.New()
	logging.Setup(cfg.LogFilePath)

	log.Printf("[INFO] Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	r, err := roster.Load(cfg.RosterPath)
	if err != nil {
		log.Fatal(err)
	}

	events := event.NewRegistry()
	fetcher := mascot.NewFetcher()

	errCh := make(chan error, 1)
	go func() {
		if err := discord.StartBot(ctx, cfg, store, events, r, fetcher); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
