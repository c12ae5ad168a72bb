package appointments

import (
	"context"
	"fmt"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/app/models"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

const slotLockExpiration = 10 * time.Second

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	UserRepository        contracts.UserRepository
	LockerService         contracts.LockerService
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentMongoRepository contracts.AppointmentRepository,
	doctorMongoRepository contracts.DoctorRepository,
	userMongoRepository contracts.UserRepository,
	lockerService contracts.LockerService,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentMongoRepository,
			DoctorRepository:      doctorMongoRepository,
			UserRepository:        userMongoRepository,
			LockerService:         lockerService,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) Book(ctx context.Context, userID string, request *requests.BookAppointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if _, err := time.Parse(constvars.SlotDateLayout, request.SlotDate); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	if _, err := time.Parse(constvars.SlotTimeLayout, request.SlotTime); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DocID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}
	if !doctor.Available {
		return exceptions.ErrDoctorNotAvailable(nil)
	}

	// Serialize bookings per doctor so the slot check and the insert cannot
	// interleave across instances.
	lockKey := fmt.Sprintf(constvars.RedisKeyDoctorSlotLockFormat, request.DocID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, slotLockExpiration)
	if err != nil {
		return err
	}
	if !acquired {
		return exceptions.ErrLockNotAcquired(nil)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("appointmentUsecase.Book unlock failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	booked, err := uc.DoctorRepository.BookSlot(ctx, request.DocID, request.SlotDate, request.SlotTime)
	if err != nil {
		return err
	}
	if !booked {
		return exceptions.ErrSlotNotAvailable(nil)
	}

	now := time.Now()
	appointment := &models.Appointment{
		UserID:   userID,
		DocID:    request.DocID,
		UserData: user.Snapshot(),
		DocData:  doctor.Snapshot(),
		Amount:   doctor.Fees,
		SlotDate: request.SlotDate,
		SlotTime: request.SlotTime,
		Date:     now.UnixMilli(),
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		// The slot was claimed but the appointment never materialized,
		// release it so the time can be rebooked.
		if releaseErr := uc.DoctorRepository.ReleaseSlot(ctx, request.DocID, request.SlotDate, request.SlotTime); releaseErr != nil {
			uc.Log.Error("appointmentUsecase.Book slot release after failed insert failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDoctorIDKey, request.DocID),
				zap.Error(releaseErr),
			)
		}
		return err
	}

	uc.Log.Info("appointmentUsecase.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingDoctorIDKey, request.DocID),
		zap.String(constvars.LoggingSlotDateKey, request.SlotDate),
		zap.String(constvars.LoggingSlotTimeKey, request.SlotTime),
	)
	return nil
}

func (uc *appointmentUsecase) ListForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	return uc.AppointmentRepository.FindByUserID(ctx, userID)
}

func (uc *appointmentUsecase) ListForDoctor(ctx context.Context, docID string) ([]models.Appointment, error) {
	return uc.AppointmentRepository.FindByDocID(ctx, docID)
}

func (uc *appointmentUsecase) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return uc.AppointmentRepository.FindAll(ctx)
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, userID, appointmentID string) (bool, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return false, err
	}
	if appointment == nil {
		return false, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.UserID != userID {
		return false, exceptions.ErrUnauthorizedAction(nil)
	}
	if appointment.Payment {
		return false, exceptions.ErrPaidCancelRejected(nil)
	}
	if appointment.Cancelled {
		return true, nil
	}

	if err := uc.cancelAndRelease(ctx, appointment); err != nil {
		return false, err
	}
	return false, nil
}

func (uc *appointmentUsecase) AdminCancel(ctx context.Context, appointmentID string) error {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.Cancelled {
		return nil
	}

	return uc.cancelAndRelease(ctx, appointment)
}

func (uc *appointmentUsecase) DoctorCancel(ctx context.Context, docID, appointmentID string) error {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.DocID != docID {
		return exceptions.ErrUnauthorizedAction(nil)
	}
	if appointment.Cancelled {
		return nil
	}

	return uc.cancelAndRelease(ctx, appointment)
}

func (uc *appointmentUsecase) Complete(ctx context.Context, docID, appointmentID string) error {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.DocID != docID {
		return exceptions.ErrUnauthorizedAction(nil)
	}

	return uc.AppointmentRepository.MarkCompleted(ctx, appointmentID)
}

func (uc *appointmentUsecase) cancelAndRelease(ctx context.Context, appointment *models.Appointment) error {
	if err := uc.AppointmentRepository.MarkCancelled(ctx, appointment.ID); err != nil {
		return err
	}

	if err := uc.DoctorRepository.ReleaseSlot(ctx, appointment.DocID, appointment.SlotDate, appointment.SlotTime); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("appointmentUsecase slot release on cancel failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
