package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"budokan-backend-go/internal/api"
	"budokan-backend-go/internal/config"
	"budokan-backend-go/internal/metrics"
	"budokan-backend-go/internal/middleware"
	"budokan-backend-go/internal/payment"
	"budokan-backend-go/internal/persistence"
	"budokan-backend-go/internal/store"
	"budokan-backend-go/internal/token"
	"budokan-backend-go/pkg/logger"
)

const snapshotCollection = "snapshots"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	var zapLogger *zap.Logger
	if strings.ToLower(cfg.GinMode) == "release" {
		zapLogger = logger.New()
	} else {
		zapLogger = logger.NewDevelopment()
	}
	defer zapLogger.Sync()

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()

	snapshots, closeSnapshots, err := openSnapshotStore(initCtx, cfg)
	if err != nil {
		zapLogger.Fatal("failed to open snapshot backend", zap.String("backend", cfg.SnapshotBackend), zap.Error(err))
	}
	if closeSnapshots != nil {
		defer closeSnapshots()
	}
	zapLogger.Info("snapshot backend ready", zap.String("backend", cfg.SnapshotBackend))

	var provider payment.Provider
	switch cfg.PaymentProvider {
	case config.PaymentStripe:
		provider = payment.NewStripe(cfg.StripeSecretKey)
	default:
		provider = payment.NewSimulated()
	}
	zapLogger.Info("payment provider ready", zap.String("provider", cfg.PaymentProvider))

	identity := store.NewIdentityStore(snapshots, store.SeedUsers())
	identity.Restore(initCtx)
	commerce := store.NewCommerceStore(store.SeedProducts())
	memberships := store.NewMembershipStore(provider, store.SeedPlans())
	sessions := store.NewSessionRequestStore()
	content := store.NewContentStore(store.SeedContent())

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	metrics.Register()

	if strings.ToLower(cfg.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if cfg.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(cfg.ClientURL))
	} else {
		zapLogger.Warn("CORS disabled: CLIENT_URL is not configured")
	}

	api.SetupRoutes(router, zapLogger, tokens, identity, commerce, memberships, sessions, content)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zapLogger.Info("starting HTTP server", zap.String("address", httpServer.Addr), zap.String("ginMode", gin.Mode()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("forced shutdown", zap.Error(err))
	}
	zapLogger.Info("server exited")
}

// openSnapshotStore builds the persistence backend named by the config. The
// returned closer is nil for backends with nothing to release.
func openSnapshotStore(ctx context.Context, cfg *config.Config) (persistence.Store, func(), error) {
	switch cfg.SnapshotBackend {
	case config.SnapshotFile:
		s, err := persistence.NewFile(cfg.SnapshotDir)
		return s, nil, err
	case config.SnapshotRedis:
		s, err := persistence.NewRedis(ctx, persistence.RedisConfig{
			Address:  cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case config.SnapshotFirestore:
		client, err := persistence.OpenFirestoreClient(ctx, cfg.FirebaseProjectID, cfg.GoogleApplicationCredentials)
		if err != nil {
			return nil, nil, err
		}
		return persistence.NewFirestore(client, snapshotCollection), func() { _ = client.Close() }, nil
	default:
		return persistence.NewMemory(), nil, nil
	}
}
