package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "car_maintenance/docs" // swag template registration
	"car_maintenance/internal/adapter/http/handlers"
	"car_maintenance/internal/adapter/http/middleware"
	"car_maintenance/internal/adapter/persistence/repository"
	"car_maintenance/internal/config"
	"car_maintenance/internal/infrastructure/database"
	"car_maintenance/internal/infrastructure/inference"
	"car_maintenance/internal/infrastructure/localstore"
	"car_maintenance/internal/infrastructure/remotestore"
	"car_maintenance/internal/infrastructure/storage"
	"car_maintenance/internal/usecase"
	"car_maintenance/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathV1      = "/v1"
	PathMetrics = "/metrics"
	PathSwagger = "/swagger/*any"

	shutdownTimeout = 10 * time.Second
)

// Handlers groups everything the router needs.
type Handlers struct {
	Sessions middleware.Authorizer
	Account  *handlers.AccountHandler
	Mechanic *handlers.MechanicHandler
	Booking  *handlers.BookingHandler
	Report   *handlers.ReportHandler
}

// Run wires the application from cfg and serves until ctx is cancelled or the listener fails.
func Run(ctx context.Context, cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	db, err := localstore.Open(localstore.Config{Path: cfg.SessionDBPath, SyncWrites: true})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("[app][routes] warning: failed to close session db: %v", closeErr)
		}
	}()

	h, err := buildHandlers(ctx, cfg, localstore.NewSessionStorage(db))
	if err != nil {
		return err
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: NewRouter(h)}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[app][routes] listening port=%s", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start the application: %w", err)
	case <-ctx.Done():
	}

	log.Printf("[app][routes] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func buildHandlers(ctx context.Context, cfg *config.Config, sessionStorage interfaces.ISessionStorage) (Handlers, error) {
	store, err := remotestore.NewClient(remotestore.Config{
		BaseURL:     cfg.RemoteStoreURL,
		AuthToken:   cfg.RemoteStoreAuth,
		Timeout:     cfg.RemoteStoreTimeout,
		ReadRetries: cfg.RemoteStoreReadRetries,
	})
	if err != nil {
		return Handlers{}, err
	}
	bookingRepo := repository.NewBookingStoreRepository(store)
	userRepo := repository.NewUserStoreRepository(store)
	mechanicRepo := repository.NewMechanicStoreRepository(store)
	reportRepo := repository.NewReportStoreRepository(store)

	var claims interfaces.ISlotClaimRepository
	if cfg.SlotClaimsEnabled {
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return Handlers{}, err
		}
		claims = repository.NewSlotClaimDynamoRepository(ddb)
	} else {
		log.Printf("[app][routes] slot claims disabled, booking conflicts rely on the read-then-write check")
	}

	var media interfaces.IMediaStorage
	if cfg.MediaBucket != "" {
		s3c, err := database.ConnectS3(ctx)
		if err != nil {
			return Handlers{}, err
		}
		m, err := storage.NewS3MediaStorage(s3c, cfg.MediaBucket)
		if err != nil {
			return Handlers{}, err
		}
		media = m
	} else {
		log.Printf("[app][routes] MEDIA_BUCKET not set, logo uploads disabled")
	}

	gateway, err := inference.NewGateway(cfg.InferenceBaseURL, cfg.InferenceTimeout, nil)
	if err != nil {
		return Handlers{}, err
	}

	sessionUseCase := usecase.NewSessionUseCase(sessionStorage, cfg.SessionTTL, nil)
	directoryUseCase := usecase.NewDirectoryUseCase(userRepo, mechanicRepo, cfg.DirectoryCacheTTL)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, claims, sessionUseCase, directoryUseCase, cfg.SlotClaimGrace)
	reportUseCase := usecase.NewReportUseCase(gateway, reportRepo, sessionUseCase)
	accountUseCase := usecase.NewAccountUseCase(userRepo, directoryUseCase, sessionUseCase)
	mechanicUseCase := usecase.NewMechanicUseCase(mechanicRepo, directoryUseCase, sessionUseCase, media)

	return Handlers{
		Sessions: sessionUseCase,
		Account:  handlers.NewAccountHandler(accountUseCase),
		Mechanic: handlers.NewMechanicHandler(directoryUseCase, mechanicUseCase, bookingUseCase),
		Booking:  handlers.NewBookingHandler(bookingUseCase),
		Report:   handlers.NewReportHandler(reportUseCase),
	}, nil
}

// NewRouter mounts every route. Routes under the private group require a bearer token
// matching the active session.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET(PathMetrics, gin.WrapH(promhttp.Handler()))

	v1 := router.Group(PathV1)
	private := v1.Group("", middleware.RequireSession(h.Sessions))

	addPingRoutes(v1)
	addAccountRoutes(v1, private, h.Account)
	addMechanicRoutes(private, h.Mechanic)
	addBookingRoutes(private, h.Booking)
	addReportRoutes(v1, private, h.Report)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(middleware.Metrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[app][routes] recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
