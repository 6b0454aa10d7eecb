// File: doctorsportal/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	bookingRepo "doctorsportal/database/repository/booking"
	doctorRepo "doctorsportal/database/repository/doctor"
	serviceRepo "doctorsportal/database/repository/service"
	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/availability"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/notification"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// ensureIndexes builds every collection's indexes. Only a booking index
// failure is fatal: without the unique slot index two concurrent bookings of
// one slot can both be written.
func ensureIndexes(ctx context.Context, logger *zap.Logger, repos map[string]indexer) error {
	for name, repo := range repos {
		err := repo.EnsureIndexes(ctx)
		if err == nil {
			continue
		}
		if name == database.BookingsCollection {
			return fmt.Errorf("booking indexes unavailable: %w", err)
		}
		logger.Error("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
	}
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	utils.InitializeLogger(cfg.LogLevel)
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, err := database.Connect(rootCtx, cfg.DatabaseURL, cfg.MongoConnectAttempts, logger)
	if err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	db := mongoClient.Database(cfg.DatabaseName)

	// repositories.
	services := serviceRepo.NewMongoServiceRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(db)
	users := userRepo.NewMongoUserRepo(db)
	doctors := doctorRepo.NewMongoDoctorRepo(db)

	if err := ensureIndexes(rootCtx, logger, map[string]indexer{
		database.ServicesCollection: services,
		database.BookingsCollection: bookings,
		database.UsersCollection:    users,
		database.DoctorsCollection:  doctors,
	}); err != nil {
		logger.Fatal("main: refusing to start", zap.Error(err))
	}

	// Redis is optional: without it roles are read from MongoDB on every
	// check and confirmations are sent in-process.
	var cacheClient *redis.Client
	if cfg.RedisAddr != "" {
		cacheClient, err = utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
		if err != nil {
			logger.Warn("main: role cache disabled", zap.Error(err))
			cacheClient = nil
		}
	}

	tokens, err := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		logger.Fatal("main: invalid token configuration", zap.Error(err))
	}

	// services.
	userService := &user.DefaultUserService{
		Repo:         users,
		Tokens:       tokens,
		RoleCache:    cacheClient,
		RoleCacheTTL: cfg.RoleCacheTTL,
	}
	if err := userService.SeedAdmins(rootCtx, cfg.AdminEmails); err != nil {
		logger.Error("main: failed to seed admins", zap.Error(err))
	}

	sender := notification.NewEmailSender(notification.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.EmailSender,
		FromName:  cfg.EmailSenderName,
	}, logger)

	var (
		dispatcher  notification.Dispatcher = notification.NewDirectDispatcher(sender)
		asynqClient *asynq.Client
		emailWorker *asynq.Server
	)
	if cfg.EmailQueueEnabled && cfg.RedisAddr != "" {
		redisOpts := asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		}
		asynqClient = asynq.NewClient(redisOpts)
		dispatcher = notification.NewQueueDispatcher(asynqClient)
		emailWorker = cron.InitEmailWorker(redisOpts, sender, cfg.EmailWorkerConcurrency)
	}

	availabilityService := availability.NewService(services, bookings, cfg.DefaultAvailabilityDate)
	bookingService := booking.NewDefaultBookingService(bookings, services, dispatcher)
	doctorService := &doctor.DefaultDoctorService{Repo: doctors}

	metrics := utils.NewMetrics(nil)

	health := utils.NewHealthMonitor(mongoClient, cacheClient)
	health.Start(rootCtx, cfg.HealthInterval)

	// handlers.
	serviceHandler := handlers.NewServiceHandler(services, availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService, metrics)
	userHandler := handlers.NewUserHandler(userService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)

	handlerBundle := &handlers.HandlerBundle{
		Tokens:  tokens,
		Roles:   userService,
		Health:  health,
		Metrics: metrics,

		GetServicesHandler:  serviceHandler.GetServicesHandler,
		GetAvailableHandler: serviceHandler.GetAvailableHandler,

		CreateBookingHandler:      bookingHandler.CreateBookingHandler,
		GetPatientBookingsHandler: bookingHandler.GetPatientBookingsHandler,

		GetUsersHandler:   userHandler.GetUsersHandler,
		UpsertUserHandler: userHandler.UpsertUserHandler,
		CheckAdminHandler: userHandler.CheckAdminHandler,
		MakeAdminHandler:  userHandler.MakeAdminHandler,

		ListDoctorsHandler:  doctorHandler.ListDoctorsHandler,
		AddDoctorHandler:    doctorHandler.AddDoctorHandler,
		DeleteDoctorHandler: doctorHandler.DeleteDoctorHandler,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(metrics.Middleware())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	port := cfg.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Doctors portal listening on %s", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	if emailWorker != nil {
		emailWorker.Shutdown()
	}
	if asynqClient != nil {
		if err := asynqClient.Close(); err != nil {
			logger.Warn("main: failed to close queue client", zap.Error(err))
		}
	}
	if cacheClient != nil {
		if err := cacheClient.Close(); err != nil {
			logger.Warn("main: failed to close redis", zap.Error(err))
		}
	}
	if err := database.Disconnect(mongoClient); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
