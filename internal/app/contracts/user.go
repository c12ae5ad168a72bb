package contracts

import (
	"context"

	"predictacare-service/internal/app/models"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	CountUsers(ctx context.Context) (int64, error)
}

type UserUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.AuthToken, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.AuthToken, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, request *requests.UpdateProfile) error
}
