package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"

	"reward-lab/auth"
	"reward-lab/internal"
	"reward-lab/observability"
	"reward-lab/repositories"
	"reward-lab/runtime"
	"reward-lab/runtime/workers"
	"reward-lab/services"
	"reward-lab/sink"
	"reward-lab/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for HTTP and background workers.
func run() error {
	// 1. Configuration & Logger
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Engine, sinks & supervision
	store := runtime.NewSessionStore()
	engine := runtime.NewEngine(log, store, config.EventBufferSize)

	archive := repositories.NewSessionArchive(db, log)
	stats := observability.NewEngagementStats()
	fanout := workers.NewEventFanout(log, engine.Events(),
		sink.NewArchiveSink(archive, log),
		sink.NewStatsSink(stats),
	)

	sup := workers.NewSupervisor(log)
	sup.Add(fanout)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 5. Debug inspector over the archive
	internal.StartDebugServer(db, config.DebugPort, "/inspect", internal.DefaultMapper, stats.Snapshot)

	// 6. HTTP ingestion API
	tiers := auth.NewStaticTierProvider(config.PremiumUsers, config.DeveloperUsers)
	svc := services.NewSessionService(engine, tiers, archive)
	router := transport.NewRouter(log, svc, config.AuthTokenDuration)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{Addr: address, Handler: router}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown did not finish cleanly", "error", err)
	}
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
