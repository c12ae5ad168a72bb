package routers

import (
	"predictacare-service/internal/app/delivery/http/controllers"
	"predictacare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	userController *controllers.UserController,
	appointmentController *controllers.AppointmentController,
	paymentController *controllers.PaymentController,
) {
	router.Post("/register", userController.Register)
	router.Post("/login", userController.Login)

	router.With(middlewares.AuthenticatePatient).Get("/get-profile", userController.GetProfile)
	router.With(middlewares.AuthenticatePatient).Post("/update-profile", userController.UpdateProfile)

	router.With(middlewares.AuthenticatePatient).Post("/book-appointment", appointmentController.Book)
	router.With(middlewares.AuthenticatePatient).Get("/appointments", appointmentController.ListForUser)
	router.With(middlewares.AuthenticatePatient).Post("/cancel-appointment", appointmentController.Cancel)

	router.With(middlewares.AuthenticatePatient).Post("/payment-razorpay", paymentController.CreateOrder)
	router.With(middlewares.AuthenticatePatient).Post("/verify-razorpay", paymentController.Verify)

	router.With(middlewares.AuthenticatePatient).Get("/predictions", userController.ListPredictions)
}
