package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/quizdesk/auth"
	"github.com/danielhkuo/quizdesk/authoring"
	"github.com/danielhkuo/quizdesk/cliparse"
	"github.com/danielhkuo/quizdesk/db"
	"github.com/danielhkuo/quizdesk/middleware"
	"github.com/danielhkuo/quizdesk/router"
)

func main() {
	var err error

	// Optional .env in the working directory; real env wins
	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Connect to the database
	store, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", string(cfg.DatabaseType), "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	// Create schema (tables) and the bootstrap admin
	if err := store.Init(ctx); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", string(cfg.DatabaseType))

	if cfg.SeedDemo {
		if err := seedDemo(ctx, store); err != nil {
			slog.Error("demo seeding failed", "error", err)
			os.Exit(1)
		}
	}

	// Create router
	mux, err := router.NewRouter(store, cfg)
	if err != nil {
		slog.Error("router setup failed", "error", err)
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// seedDemo inserts the bundled demo quizzes owned by the bootstrap admin
func seedDemo(ctx context.Context, store *db.Store) error {
	admin, found, err := store.GetUserByUsername(ctx, auth.BootstrapAdminUsername)
	if err != nil {
		return err
	}
	if !found {
		slog.Warn("bootstrap admin missing, skipping demo quizzes")
		return nil
	}

	_, err = authoring.NewService(store).CreateDemoQuizzes(ctx, admin.ID)
	return err
}
