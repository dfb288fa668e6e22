package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/usecase"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/conf"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/data"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := conf.LoadFromEnv()
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	repos, err := data.NewRepositories(config.Intel.BaseURL, config.Intel.RequestTimeout, config.Prefs.DBPath)
	if err != nil {
		log.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Prefs.Close()

	registry := domain.NewRegistry()
	store := domain.NewStore()
	for _, ch := range registry.All() {
		store.Reset(ch.ID)
	}

	target := data.NewConsoleTarget()
	viewport := func() domain.Bounds { return config.Viewport.Bounds }

	merger := usecase.NewMerger(store)
	renderer := usecase.NewRenderer(store, target)
	monitor := usecase.NewViewportMonitor(store, registry, target, renderer, config.Viewport.Padding)
	driver := usecase.NewSyncDriver(store, registry, merger, renderer, target, repos.Transport, viewport, nil)

	hooks := service.NewHookRegistry()
	driver.SetObserver(hooks)
	if config.Debug {
		hooks.Register("debug-log", func(ev *usecase.SyncEvent) {
			fmt.Printf("[Hooks] Synced %s: %d records, %d new\n", ev.Channel.ID, len(ev.Response), ev.Accepted)
		})
	}

	ctx := context.Background()

	// Restore persisted state from the previous run
	if saved, err := repos.Prefs.Viewport(ctx); err == nil && saved != nil {
		monitor.Restore(*saved)
	}

	active, err := repos.Prefs.ActiveChannel(ctx)
	if err != nil || active == "" {
		active = registry.Default().ID
	}
	activeCh, known := registry.Resolve(active)
	if !known {
		active = activeCh.ID
	}
	target.SetVisible(active, true)
	if err := repos.Prefs.SaveActiveChannel(ctx, active); err != nil {
		log.Printf("Failed to persist active channel: %v", err)
	}

	poller := service.NewPoller(driver, monitor, registry, repos.Prefs, viewport, config.Chat.PollInterval)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("Starting intel chat follower (channel %s)...\n", active)
	poller.Start()

	<-sigCh
	fmt.Println("\nShutting down...")
	poller.Stop()
}
