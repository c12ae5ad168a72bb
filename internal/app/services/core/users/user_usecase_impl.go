package users

import (
	"context"
	"path/filepath"
	"predictacare-service/internal/app/config"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/app/models"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/dto/responses"
	"predictacare-service/internal/pkg/exceptions"
	"predictacare-service/internal/pkg/utils"
	"sync"
	"time"
)

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	MinioStorage   contracts.StorageService
	InternalConfig *config.InternalConfig
}

func NewUserUsecase(
	userMongoRepository contracts.UserRepository,
	minioStorage contracts.StorageService,
	internalConfig *config.InternalConfig,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userMongoRepository,
			MinioStorage:   minioStorage,
			InternalConfig: internalConfig,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.AuthToken, error) {
	// Check if email already exists
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateAuthJWT(userID, constvars.RolePatient, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.AuthToken{Token: token}, nil
}

func (uc *userUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.AuthToken, error) {
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if !utils.CheckPasswordHash(request.Password, existingUser.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := utils.GenerateAuthJWT(existingUser.ID, constvars.RolePatient, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.AuthToken{Token: token}, nil
}

func (uc *userUsecase) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	existingUser, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return existingUser, nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, userID string, request *requests.UpdateProfile) error {
	existingUser, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if existingUser == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	existingUser.Name = request.Name
	existingUser.Phone = request.Phone
	existingUser.Address = models.Address{Line1: request.Address.Line1, Line2: request.Address.Line2}
	existingUser.DOB = request.DOB
	existingUser.Gender = request.Gender
	existingUser.UpdatedAt = time.Now()

	if request.Image != nil {
		objectName := utils.GenerateFileName("profile", userID, filepath.Ext(request.Image.Filename))
		imageURL, err := uc.MinioStorage.UploadImage(ctx, objectName, request.Image)
		if err != nil {
			return err
		}
		existingUser.Image = imageURL
	}

	return uc.UserRepository.UpdateUser(ctx, existingUser)
}
