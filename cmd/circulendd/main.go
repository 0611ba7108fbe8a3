// Command circulendd is the Circulend platform service.
// It serves the submission and scoring API and a health check.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/circulend/circulend/internal/advisory"
	"github.com/circulend/circulend/internal/api"
	"github.com/circulend/circulend/internal/applicant"
	"github.com/circulend/circulend/internal/archive"
	"github.com/circulend/circulend/internal/platform"
	"github.com/circulend/circulend/internal/scores"
	"github.com/circulend/circulend/internal/submission"
	"github.com/circulend/circulend/pkg/scoring"
)

type config struct {
	Port            string
	DatabaseURL     string
	APIKey          string
	AdvisoryURL     string
	AdvisoryTimeout string
	ArchiveBackend  string
	LocalStorePath  string
	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	GCSBucket       string
}

func loadConfig() config {
	return config{
		Port:            envOrDefault("PORT", "8080"),
		DatabaseURL:     envOrDefault("DATABASE_URL", "postgres://localhost:5432/circulend?sslmode=disable"),
		APIKey:          os.Getenv("API_KEY"),
		AdvisoryURL:     os.Getenv("ADVISORY_URL"),
		AdvisoryTimeout: envOrDefault("ADVISORY_TIMEOUT", "5s"),
		ArchiveBackend:  envOrDefault("ARCHIVE_BACKEND", "local"),
		LocalStorePath:  envOrDefault("LOCAL_STORAGE_PATH", "/tmp/circulend-data"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3Region:        os.Getenv("S3_REGION"),
		S3Endpoint:      os.Getenv("S3_ENDPOINT"),
		S3AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:     os.Getenv("S3_SECRET_KEY"),
		GCSBucket:       os.Getenv("GCS_BUCKET"),
	}
}

func main() {
	cfg := loadConfig()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if err := platform.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	payloadStore, err := newPayloadStore(cfg)
	if err != nil {
		log.Fatalf("init archive backend: %v", err)
	}

	var advisoryClient *advisory.Client
	if cfg.AdvisoryURL != "" {
		timeout, err := time.ParseDuration(cfg.AdvisoryTimeout)
		if err != nil {
			log.Fatalf("parse ADVISORY_TIMEOUT: %v", err)
		}
		advisoryClient = advisory.NewClient(cfg.AdvisoryURL, timeout)
		log.Printf("advisory service enabled: %s", cfg.AdvisoryURL)
	} else {
		log.Printf("advisory service disabled, scoring is rule-based only")
	}

	// Initialize services
	engine := scoring.NewEngine(scoring.DefaultIndicators()...)
	applicantSvc := applicant.NewService(db)
	scoresSvc := scores.NewService(db)
	submissionSvc := submission.NewService(db, engine, scoresSvc, advisoryClient, payloadStore)

	handler := api.NewHandler(applicantSvc, submissionSvc, scoresSvc)

	// Set up HTTP routes. The health check stays outside auth so load
	// balancers can probe it without the API key.
	apiMux := http.NewServeMux()
	handler.RegisterRoutes(apiMux)

	auth := api.APIKeyAuth(cfg.APIKey)
	mux := http.NewServeMux()
	mux.Handle("/api/", auth(apiMux))
	mux.HandleFunc("GET /healthz", healthHandler(db))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.CORS(mux),
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("starting circulendd on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// newPayloadStore selects the archive backend from config.
func newPayloadStore(cfg config) (archive.PayloadStore, error) {
	ctx := context.Background()
	switch cfg.ArchiveBackend {
	case "s3":
		return archive.NewS3Store(ctx, archive.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case "gcs":
		return archive.NewGCSStore(ctx, cfg.GCSBucket)
	default:
		return archive.NewLocalStore(cfg.LocalStorePath), nil
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
