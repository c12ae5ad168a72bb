package routers

import (
	"predictacare-service/internal/app/delivery/http/controllers"
	"predictacare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	chatController *controllers.ChatController,
) {
	router.With(middlewares.AuthenticatePatient).Post("/", chatController.Message)
}
