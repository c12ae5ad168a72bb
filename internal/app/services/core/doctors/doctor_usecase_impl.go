package doctors

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
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

type doctorUsecase struct {
	DoctorRepository      contracts.DoctorRepository
	AppointmentRepository contracts.AppointmentRepository
	MinioStorage          contracts.StorageService
	InternalConfig        *config.InternalConfig
}

func NewDoctorUsecase(
	doctorMongoRepository contracts.DoctorRepository,
	appointmentMongoRepository contracts.AppointmentRepository,
	minioStorage contracts.StorageService,
	internalConfig *config.InternalConfig,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository:      doctorMongoRepository,
			AppointmentRepository: appointmentMongoRepository,
			MinioStorage:          minioStorage,
			InternalConfig:        internalConfig,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) AddDoctor(ctx context.Context, request *requests.AddDoctor) (string, error) {
	// Check if email already exists
	existingDoctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", err
	}
	if existingDoctor != nil {
		return "", exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	doctor := &models.Doctor{
		Name:        request.Name,
		Email:       request.Email,
		Password:    hashedPassword,
		Speciality:  request.Speciality,
		Degree:      request.Degree,
		Experience:  request.Experience,
		About:       request.About,
		Fees:        request.Fees,
		Address:     models.Address{Line1: request.Address.Line1, Line2: request.Address.Line2},
		Available:   true,
		SlotsBooked: map[string][]string{},
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if request.Image != nil {
		objectName := utils.GenerateFileName("doctor", request.Email, filepath.Ext(request.Image.Filename))
		imageURL, err := uc.MinioStorage.UploadImage(ctx, objectName, request.Image)
		if err != nil {
			return "", err
		}
		doctor.Image = imageURL
	}

	return uc.DoctorRepository.CreateDoctor(ctx, doctor)
}

func (uc *doctorUsecase) Login(ctx context.Context, request *requests.LoginDoctor) (*responses.AuthToken, error) {
	existingDoctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingDoctor == nil {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	if !utils.CheckPasswordHash(request.Password, existingDoctor.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := utils.GenerateAuthJWT(existingDoctor.ID, constvars.RoleDoctor, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.AuthToken{Token: token}, nil
}

func (uc *doctorUsecase) ListAll(ctx context.Context) ([]models.Doctor, error) {
	return uc.DoctorRepository.FindAll(ctx)
}

func (uc *doctorUsecase) ListPublic(ctx context.Context) ([]responses.DoctorPublic, error) {
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	publicDoctors := make([]responses.DoctorPublic, 0, len(doctors))
	for _, doctor := range doctors {
		publicDoctors = append(publicDoctors, responses.NewDoctorPublic(doctor))
	}
	return publicDoctors, nil
}

func (uc *doctorUsecase) ChangeAvailability(ctx context.Context, docID string) error {
	existingDoctor, err := uc.DoctorRepository.FindByID(ctx, docID)
	if err != nil {
		return err
	}
	if existingDoctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	return uc.DoctorRepository.SetAvailability(ctx, docID, !existingDoctor.Available)
}

func (uc *doctorUsecase) GetProfile(ctx context.Context, docID string) (*models.Doctor, error) {
	existingDoctor, err := uc.DoctorRepository.FindByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if existingDoctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return existingDoctor, nil
}

func (uc *doctorUsecase) UpdateProfile(ctx context.Context, docID string, request *requests.UpdateDoctorProfile) error {
	existingDoctor, err := uc.DoctorRepository.FindByID(ctx, docID)
	if err != nil {
		return err
	}
	if existingDoctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	existingDoctor.Fees = request.Fees
	existingDoctor.About = request.About
	existingDoctor.Address = models.Address{Line1: request.Address.Line1, Line2: request.Address.Line2}
	existingDoctor.Available = request.Available
	existingDoctor.UpdatedAt = time.Now()

	return uc.DoctorRepository.UpdateDoctor(ctx, existingDoctor)
}

func (uc *doctorUsecase) Dashboard(ctx context.Context, docID string) (*responses.DoctorDashboard, error) {
	appointments, err := uc.AppointmentRepository.FindByDocID(ctx, docID)
	if err != nil {
		return nil, err
	}

	var earnings float64
	patients := make(map[string]struct{})
	for _, appointment := range appointments {
		if appointment.IsCompleted || appointment.Payment {
			earnings += appointment.Amount
		}
		patients[appointment.UserID] = struct{}{}
	}

	latest := appointments
	if len(latest) > 5 {
		latest = latest[:5]
	}

	return &responses.DoctorDashboard{
		Earnings:           earnings,
		Appointments:       len(appointments),
		Patients:           len(patients),
		LatestAppointments: latest,
	}, nil
}
