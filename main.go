package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/snap-point/insta-api/config"
	"github.com/snap-point/insta-api/events"
	"github.com/snap-point/insta-api/routes"
	"github.com/snap-point/insta-api/storage"
	"github.com/snap-point/insta-api/store"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	rootCmd := &cobra.Command{
		Use:   "insta-api",
		Short: "Social media REST API",
		RunE:  func(cmd *cobra.Command, args []string) error { return serve() },
	}
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE:  func(cmd *cobra.Command, args []string) error { return serve() },
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE:  func(cmd *cobra.Command, args []string) error { return migrate() },
		},
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func openStore(cfg *config.Config) (*store.Store, error) {
	db, err := config.OpenDatabase(cfg)
	if err != nil {
		return nil, err
	}
	return store.New(db), nil
}

func migrate() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer config.CloseDatabase(st.DB())

	if err := st.Migrate(); err != nil {
		return err
	}
	log.Println("Database migrated")
	return nil
}

func newStorage(cfg *config.Config) storage.Storage {
	if cfg.Storage.Backend == "r2" {
		return storage.NewR2Storage(cfg.R2)
	}
	return storage.NewDiskStorage(cfg.Storage.MediaRoot, cfg.Storage.MediaURL)
}

func newPublisher(cfg *config.Config) (events.Publisher, func()) {
	if cfg.NATSURL == "" {
		return events.LogPublisher{}, func() {}
	}
	pub, err := events.ConnectNATS(cfg.NATSURL, "insta", 5)
	if err != nil {
		log.Printf("NATS unavailable, logging events instead: %v", err)
		return events.LogPublisher{}, func() {}
	}
	return pub, pub.Close
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer config.CloseDatabase(st.DB())
	if err := st.Migrate(); err != nil {
		return err
	}

	stream, closeStream := newPublisher(cfg)
	defer closeStream()

	deps := routes.Dependencies{
		Store:      st,
		Storage:    newStorage(cfg),
		Events:     events.Multi{st.ActivityLog(), stream},
		JWTSecret:  cfg.JWTSecret,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
		Google:     cfg.Google,
	}
	if cfg.Storage.Backend == "disk" {
		deps.MediaRoot = cfg.Storage.MediaRoot
		deps.MediaURL = cfg.Storage.MediaURL
	}
	r := routes.NewRouter(deps)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:         300,
	})
	handler := handlers.ProxyHeaders(c.Handler(r))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		log.Printf("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("Server stopped")
	return nil
}
