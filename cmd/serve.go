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
	"github.com/spf13/cobra"

	"launchpage_studio/config"
	"launchpage_studio/internal/ai"
	"launchpage_studio/internal/api"
	"launchpage_studio/internal/httpclient"
	"launchpage_studio/internal/schemas"
	"launchpage_studio/internal/studio"
	"launchpage_studio/internal/web"
)

var serveConfigDir string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and the studio UI",
	Long:  `Start an HTTP server exposing /api/generate, /api/hero-image and the server-rendered studio at /.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigDir, "config-dir", ".", "Directory containing config.yaml")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(serveConfigDir) // Load from config.yaml or env vars
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Dependency Initialization ---
	aiGenerator, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	sessions := studio.NewStore(studio.Options{TTL: cfg.SessionTTL})
	go sessions.Run(ctx, time.Minute)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router, err := newRouter(cfg, aiGenerator, sessions)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.UpstreamLimit + 30*time.Second, // outlasts one provider call
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s (copy provider %s)", cfg.ServerAddress, cfg.Provider)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, serverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverCancel()

	// Stops the session sweeper.
	cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
	return nil
}

// newGenerator wires the provider backends. Credentials are looked up per
// request, so a missing key does not stop the server from starting.
func newGenerator(cfg config.Config) (*ai.Generator, error) {
	httpClient := httpclient.New(httpclient.Options{
		PreferIPv4: cfg.PreferIPv4,
		Timeout:    cfg.HTTPTimeout,
	})

	openAI := ai.NewOpenAIBackend(ai.OpenAIOptions{
		BaseURL:    cfg.OpenAIBaseURL,
		HTTPClient: httpClient,
		CopyModel:  cfg.CopyModel,
		ImageModel: cfg.ImageModel,
		ImageSize:  cfg.ImageSize,
	})
	openAIKey := ai.Credential{Name: config.OpenAIKeyVar, Lookup: config.Lookup}

	opts := ai.Options{
		Text:     openAI,
		TextKey:  ai.Credential{Name: cfg.CredentialVar(), Lookup: config.Lookup},
		Image:    openAI, // hero images always use OpenAI
		ImageKey: openAIKey,
		Timeout:  cfg.UpstreamLimit,
	}
	if cfg.Provider == "gemini" {
		opts.Text = ai.NewGeminiBackend(cfg.GeminiModel)
	}

	if cfg.StrictSchema {
		validator, err := schemas.NewLandingPageValidator()
		if err != nil {
			return nil, fmt.Errorf("cannot load landing page schema: %w", err)
		}
		opts.Schema = validator
		log.Println("Info: COPY_SCHEMA_STRICT is on; copy that does not match the landing page schema is rejected.")
	}

	return ai.NewGenerator(opts), nil
}

func newRouter(cfg config.Config, aiGenerator *ai.Generator, sessions *studio.Store) (*gin.Engine, error) {
	router := gin.New()        // Use gin.New() for more control over middleware
	router.Use(gin.Logger())   // Access log
	router.Use(gin.Recovery()) // Panics become a bare 500

	api.RegisterRoutes(router, api.NewAPIHandler(aiGenerator))

	studioHandler := web.NewHandler(sessions, aiGenerator, int(cfg.SessionTTL.Seconds()))
	if err := web.RegisterRoutes(router, studioHandler); err != nil {
		return nil, err
	}
	return router, nil
}
