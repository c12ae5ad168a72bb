package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"predictacare-service/internal/app/config"
	"predictacare-service/internal/app/delivery/http/controllers"
	"predictacare-service/internal/app/delivery/http/middlewares"
	"predictacare-service/internal/app/delivery/http/routers"
	"predictacare-service/internal/app/drivers/database"
	"predictacare-service/internal/app/drivers/logger"
	"predictacare-service/internal/app/drivers/messaging"
	minioDriver "predictacare-service/internal/app/drivers/storage"
	"predictacare-service/internal/app/services/core/admin"
	"predictacare-service/internal/app/services/core/appointments"
	"predictacare-service/internal/app/services/core/chat"
	"predictacare-service/internal/app/services/core/doctors"
	"predictacare-service/internal/app/services/core/payments"
	"predictacare-service/internal/app/services/core/predictions"
	"predictacare-service/internal/app/services/core/users"
	"predictacare-service/internal/app/services/shared/locker"
	"predictacare-service/internal/app/services/shared/payment_gateway"
	"predictacare-service/internal/app/services/shared/redis"
	"predictacare-service/internal/app/services/shared/storage"
	"predictacare-service/internal/app/services/shared/webhookqueue"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const webhookQueuePrefetch = 8

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := minioDriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConn,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	log.Info("Server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error closing application resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	minioStorage := storage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig, bootstrap.Logger)
	razorpayService := payment_gateway.NewRazorpayService(bootstrap.InternalConfig, bootstrap.Logger)

	webhookQueue, err := webhookqueue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.RabbitMQWebhookQueue,
		webhookQueuePrefetch,
	)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to set up webhook queue", zap.Error(err))
	}

	// Middlewares
	appMiddlewares := middlewares.New(bootstrap.Logger, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, minioStorage, bootstrap.InternalConfig)

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		doctorMongoRepository,
		userMongoRepository,
		lockerService,
		bootstrap.Logger,
	)

	doctorUsecase := doctors.NewDoctorUsecase(
		doctorMongoRepository,
		appointmentMongoRepository,
		minioStorage,
		bootstrap.InternalConfig,
	)

	// Payment
	paymentUsecase := payments.NewPaymentUsecase(
		appointmentMongoRepository,
		razorpayService,
		webhookQueue,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	webhookWorker := payments.NewWorker(bootstrap.Logger, webhookQueue, paymentUsecase)
	workerStop, err := webhookWorker.Start(context.Background())
	if err != nil {
		bootstrap.Logger.Fatal("Failed to start webhook worker", zap.Error(err))
	}
	bootstrap.WorkerStop = func() {
		workerStop()
		webhookQueue.Close()
	}

	// Prediction
	predictionMongoRepository := predictions.NewPredictionMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	modelClient := predictions.NewModelClient(bootstrap.InternalConfig, bootstrap.Logger)
	predictionUsecase := predictions.NewPredictionUsecase(
		predictionMongoRepository,
		doctorMongoRepository,
		modelClient,
		bootstrap.Logger,
	)

	// Chat
	chatClient := chat.NewChatClient(bootstrap.InternalConfig, bootstrap.Logger)
	chatUsecase := chat.NewChatUsecase(chatClient)

	// Admin
	adminUsecase := admin.NewAdminUsecase(
		doctorMongoRepository,
		appointmentMongoRepository,
		userMongoRepository,
		bootstrap.InternalConfig,
	)

	// Controllers
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase, predictionUsecase, bootstrap.InternalConfig)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, predictionUsecase)
	adminController := controllers.NewAdminController(
		bootstrap.Logger,
		adminUsecase,
		doctorUsecase,
		appointmentUsecase,
		predictionUsecase,
		bootstrap.InternalConfig,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)
	predictionController := controllers.NewPredictionController(bootstrap.Logger, predictionUsecase)
	chatController := controllers.NewChatController(bootstrap.Logger, chatUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.Logger,
		bootstrap.InternalConfig,
		appMiddlewares,
		userController,
		doctorController,
		adminController,
		appointmentController,
		paymentController,
		predictionController,
		chatController,
	)
}
