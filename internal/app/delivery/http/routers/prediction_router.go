package routers

import (
	"predictacare-service/internal/app/delivery/http/controllers"
	"predictacare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPredictionRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	predictionController *controllers.PredictionController,
) {
	router.With(middlewares.AuthenticatePatient).Post("/predict/{disease}", predictionController.Predict)
	router.With(middlewares.AuthenticatePatient).Post("/predictions/savePrediction", predictionController.Save)
}
