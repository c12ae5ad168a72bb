package admin

import (
	"context"
	"crypto/subtle"
	"predictacare-service/internal/app/config"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/dto/responses"
	"predictacare-service/internal/pkg/exceptions"
	"predictacare-service/internal/pkg/utils"
	"sync"
)

const latestAppointmentsLimit = 5

var (
	adminUsecaseInstance contracts.AdminUsecase
	onceAdminUsecase     sync.Once
)

type adminUsecase struct {
	DoctorRepository      contracts.DoctorRepository
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	InternalConfig        *config.InternalConfig
}

func NewAdminUsecase(
	doctorMongoRepository contracts.DoctorRepository,
	appointmentMongoRepository contracts.AppointmentRepository,
	userMongoRepository contracts.UserRepository,
	internalConfig *config.InternalConfig,
) contracts.AdminUsecase {
	onceAdminUsecase.Do(func() {
		adminUsecaseInstance = &adminUsecase{
			DoctorRepository:      doctorMongoRepository,
			AppointmentRepository: appointmentMongoRepository,
			UserRepository:        userMongoRepository,
			InternalConfig:        internalConfig,
		}
	})
	return adminUsecaseInstance
}

func (uc *adminUsecase) Login(ctx context.Context, request *requests.AdminLogin) (string, error) {
	emailMatch := subtle.ConstantTimeCompare([]byte(request.Email), []byte(uc.InternalConfig.Admin.Email)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(request.Password), []byte(uc.InternalConfig.Admin.Password)) == 1
	if !emailMatch || !passwordMatch {
		return "", exceptions.ErrInvalidCredentials(nil)
	}

	return utils.GenerateAuthJWT(request.Email, constvars.RoleAdmin, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
}

func (uc *adminUsecase) Dashboard(ctx context.Context) (*responses.AdminDashboard, error) {
	doctors, err := uc.DoctorRepository.CountDoctors(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := uc.AppointmentRepository.CountAppointments(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := uc.UserRepository.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := uc.AppointmentRepository.FindLatest(ctx, latestAppointmentsLimit)
	if err != nil {
		return nil, err
	}

	return &responses.AdminDashboard{
		Doctors:            doctors,
		Appointments:       appointments,
		Patients:           patients,
		LatestAppointments: latest,
	}, nil
}
