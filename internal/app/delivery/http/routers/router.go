package routers

import (
	"net/http"
	"time"

	"predictacare-service/internal/app/config"
	"predictacare-service/internal/app/delivery/http/controllers"
	"predictacare-service/internal/app/delivery/http/middlewares"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	userController *controllers.UserController,
	doctorController *controllers.DoctorController,
	adminController *controllers.AdminController,
	appointmentController *controllers.AppointmentController,
	paymentController *controllers.PaymentController,
	predictionController *controllers.PredictionController,
	chatController *controllers.ChatController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "token", "atoken", "dtoken"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthOKMessage, nil)
	})

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			attachUserRoutes(r, middlewares, userController, appointmentController, paymentController)
		})

		r.Route("/doctor", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, doctorController, appointmentController)
		})

		r.Route("/admin", func(r chi.Router) {
			attachAdminRoutes(r, middlewares, adminController, appointmentController)
		})

		r.Route("/payment", func(r chi.Router) {
			attachWebhookRoutes(r, middlewares, paymentController)
		})

		attachPredictionRoutes(r, middlewares, predictionController)

		r.Route("/chat", func(r chi.Router) {
			attachChatRoutes(r, middlewares, chatController)
		})
	})
}
