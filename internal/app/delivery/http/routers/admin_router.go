package routers

import (
	"predictacare-service/internal/app/delivery/http/controllers"
	"predictacare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	adminController *controllers.AdminController,
	appointmentController *controllers.AppointmentController,
) {
	router.Post("/login", adminController.Login)

	router.With(middlewares.AuthenticateAdmin).Post("/add-doctor", adminController.AddDoctor)
	router.With(middlewares.AuthenticateAdmin).Get("/all-doctors", adminController.AllDoctors)
	router.With(middlewares.AuthenticateAdmin).Post("/change-availability", adminController.ChangeAvailability)
	router.With(middlewares.AuthenticateAdmin).Get("/dashboard", adminController.Dashboard)

	router.With(middlewares.AuthenticateAdmin).Get("/appointments", appointmentController.ListAll)
	router.With(middlewares.AuthenticateAdmin).Post("/cancel-appointment", appointmentController.AdminCancel)

	router.With(middlewares.AuthenticateAdmin).Get("/predictions", adminController.AllPredictions)
	router.With(middlewares.AuthenticateAdmin).Post("/assign-review", adminController.AssignReview)
	router.With(middlewares.AuthenticateAdmin).Post("/send-review/{id}", adminController.SubmitReview)
	router.With(middlewares.AuthenticateAdmin).Post("/handle-upload/{id}", adminController.MarkUploaded)
	router.With(middlewares.AuthenticateAdmin).Post("/handle-delete/{id}", adminController.MarkDeleted)
	router.With(middlewares.AuthenticateAdmin).Delete("/delete/{id}", adminController.DeletePrediction)
}
