package routers

import (
	"predictacare-service/internal/app/delivery/http/controllers"
	"predictacare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachWebhookRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	paymentController *controllers.PaymentController,
) {
	// The body buffer keeps the exact bytes Razorpay signed available for
	// verification.
	router.With(middlewares.BodyBuffer).Post("/webhook", paymentController.Webhook)
}
