package contracts

import (
	"context"

	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/dto/responses"
)

type AdminUsecase interface {
	Login(ctx context.Context, request *requests.AdminLogin) (string, error)
	Dashboard(ctx context.Context) (*responses.AdminDashboard, error)
}
