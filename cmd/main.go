package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/aigate/internal/api/rest/handler"
	"github.com/dtroode/aigate/internal/api/rest/middleware"
	"github.com/dtroode/aigate/internal/api/rest/router"
	"github.com/dtroode/aigate/internal/azureai"
	"github.com/dtroode/aigate/internal/config"
	"github.com/dtroode/aigate/internal/logger"
	"github.com/dtroode/aigate/internal/model"
	"github.com/dtroode/aigate/internal/password"
	"github.com/dtroode/aigate/internal/repository/memory"
	httpserver "github.com/dtroode/aigate/internal/server"
	"github.com/dtroode/aigate/internal/service"
	storage "github.com/dtroode/aigate/internal/storage/minio"
	"github.com/dtroode/aigate/internal/token"
	"github.com/dtroode/aigate/internal/vision"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	userRepo := memory.NewUserStore()
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL)
	hasher := password.NewBcrypt()
	authService := service.NewAuth(userRepo, tokenManager, hasher, logger.WithComponent("auth"))

	var completionBackend model.CompletionBackend
	if cfg.AI.Endpoint != "" && cfg.AI.Key != "" {
		completionBackend = azureai.New(cfg.AI.Endpoint, cfg.AI.Key, cfg.AI.Deployment, cfg.AI.APIVersion, cfg.Limits.RequestTimeout)
	}
	aiService := service.NewAI(completionBackend, cfg.AI.Deployment, logger.WithComponent("ai"))

	var poseBackend model.PoseDetector
	if cfg.Vision.Endpoint != "" {
		poseBackend = vision.New(cfg.Vision.Endpoint, cfg.Vision.Key, cfg.Limits.RequestTimeout)
	}
	classifierService := service.NewClassifier(poseBackend, logger.WithComponent("classifier"))

	storageClient := newStorageClient(ctx, cfg, logger.WithComponent("storage"))
	auditService := service.NewAudit(storageClient, logger.WithComponent("audit"))
	telemetryService := service.NewTelemetry(cfg.Telemetry.Endpoint, cfg.Telemetry.InstrumentationKey, logger.WithComponent("telemetry"))

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	healthHandler := handler.NewHealth(buildVersion, cfg.Environment, aiService, classifierService, storageClient)
	authHandler := handler.NewAuth(authService, cfg.Debug, logger)
	aiHandler := handler.NewAI(aiService, telemetryService, auditService, cfg.Limits.MaxTextLength, cfg.Debug, logger)
	imageHandler := handler.NewImage(classifierService, classifierService.Classes(), telemetryService, auditService, cfg.Debug, logger)

	authenticate := middleware.NewAuthenticate(tokenManager, logger)
	logging := middleware.NewLogging(telemetryService, logger)

	r := router.New(healthHandler, authHandler, aiHandler, imageHandler, authenticate, logging, cfg.AllowedOrigins)
	srv := httpserver.NewHTTPServer(r.Engine(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = httpserver.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = httpserver.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	auditService.Wait()
	telemetryService.Flush()

	wg.Wait()
	logger.Info("shutdown complete")
}

// newStorageClient builds the object store client, or a disabled one when
// storage is not configured or unreachable. Startup never fails on storage.
func newStorageClient(ctx context.Context, cfg *config.Config, logger *logger.Logger) *storage.Client {
	if cfg.Storage.Endpoint == "" {
		return storage.NewDisabled(logger)
	}

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Error("failed to create minio client, persistence disabled", "error", err)
		return storage.NewDisabled(logger)
	}

	return storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, logger)
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
