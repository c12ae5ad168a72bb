package routers

import (
	"predictacare-service/internal/app/delivery/http/controllers"
	"predictacare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	doctorController *controllers.DoctorController,
	appointmentController *controllers.AppointmentController,
) {
	router.Post("/login", doctorController.Login)
	router.Get("/list", doctorController.ListPublic)

	router.With(middlewares.AuthenticateDoctor).Get("/profile", doctorController.GetProfile)
	router.With(middlewares.AuthenticateDoctor).Post("/update-profile", doctorController.UpdateProfile)
	router.With(middlewares.AuthenticateDoctor).Post("/change-availability", doctorController.ChangeAvailability)
	router.With(middlewares.AuthenticateDoctor).Get("/dashboard", doctorController.Dashboard)

	router.With(middlewares.AuthenticateDoctor).Get("/appointments", appointmentController.ListForDoctor)
	router.With(middlewares.AuthenticateDoctor).Post("/complete-appointment", appointmentController.Complete)
	router.With(middlewares.AuthenticateDoctor).Post("/cancel-appointment", appointmentController.DoctorCancel)

	router.With(middlewares.AuthenticateDoctor).Get("/predictions", doctorController.ListAssignedPredictions)
	router.With(middlewares.AuthenticateDoctor).Post("/review-prediction/{id}", doctorController.SubmitReview)
}
