package appointments

import (
	"context"
	"testing"
	"time"

	"predictacare-service/internal/app/models"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDocID(ctx context.Context, docID string) ([]models.Appointment, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindLatest(ctx context.Context, limit int64) ([]models.Appointment, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) MarkCancelled(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentRepository) MarkCompleted(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentRepository) MarkPaid(ctx context.Context, appointmentID string, info *models.PaymentInfo) error {
	args := m.Called(ctx, appointmentID, info)
	return args.Error(0)
}

func (m *MockAppointmentRepository) CountAppointments(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, docID string) (*models.Doctor, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) SetAvailability(ctx context.Context, docID string, available bool) error {
	args := m.Called(ctx, docID, available)
	return args.Error(0)
}

func (m *MockDoctorRepository) CountDoctors(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) BookSlot(ctx context.Context, docID, slotDate, slotTime string) (bool, error) {
	args := m.Called(ctx, docID, slotDate, slotTime)
	return args.Bool(0), args.Error(1)
}

func (m *MockDoctorRepository) ReleaseSlot(ctx context.Context, docID, slotDate, slotTime string) error {
	args := m.Called(ctx, docID, slotDate, slotTime)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func newTestAppointmentUsecase() (*appointmentUsecase, *MockAppointmentRepository, *MockDoctorRepository, *MockUserRepository, *MockLockerService) {
	appointmentRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorRepository)
	userRepo := new(MockUserRepository)
	lockerService := new(MockLockerService)

	uc := &appointmentUsecase{
		AppointmentRepository: appointmentRepo,
		DoctorRepository:      doctorRepo,
		UserRepository:        userRepo,
		LockerService:         lockerService,
		Log:                   zap.NewNop(),
	}
	return uc, appointmentRepo, doctorRepo, userRepo, lockerService
}

func testDoctor() *models.Doctor {
	return &models.Doctor{
		ID:         "doc-1",
		Name:       "Dr. Rao",
		Email:      "rao@example.com",
		Speciality: "Cardiologist",
		Fees:       500,
		Available:  true,
	}
}

func testUser() *models.User {
	return &models.User{
		ID:    "user-1",
		Name:  "Asha",
		Email: "asha@example.com",
	}
}

func TestAppointmentUsecase_Book(t *testing.T) {
	ctx := context.Background()
	request := &requests.BookAppointment{
		DocID:    "doc-1",
		SlotDate: "2025-07-14",
		SlotTime: "10:30",
	}

	t.Run("Successful Booking", func(t *testing.T) {
		uc, appointmentRepo, doctorRepo, userRepo, lockerService := newTestAppointmentUsecase()

		userRepo.On("FindByID", mock.Anything, "user-1").Return(testUser(), nil)
		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(testDoctor(), nil)
		lockerService.On("TryLock", mock.Anything, "lock:doctor-slots:doc-1", mock.Anything).Return(true, "lock-token", nil)
		lockerService.On("Unlock", mock.Anything, "lock:doctor-slots:doc-1", "lock-token").Return(nil)
		doctorRepo.On("BookSlot", mock.Anything, "doc-1", "2025-07-14", "10:30").Return(true, nil)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return("appt-1", nil)

		err := uc.Book(ctx, "user-1", request)

		assert.NoError(t, err)
		appointmentRepo.AssertCalled(t, "CreateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.Amount == 500 && a.SlotDate == "2025-07-14" && a.SlotTime == "10:30" && a.UserID == "user-1" && a.DocID == "doc-1"
		}))
		lockerService.AssertCalled(t, "Unlock", mock.Anything, "lock:doctor-slots:doc-1", "lock-token")
	})

	t.Run("Slot Already Taken", func(t *testing.T) {
		uc, appointmentRepo, doctorRepo, userRepo, lockerService := newTestAppointmentUsecase()

		userRepo.On("FindByID", mock.Anything, "user-1").Return(testUser(), nil)
		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(testDoctor(), nil)
		lockerService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-token", nil)
		lockerService.On("Unlock", mock.Anything, mock.Anything, "lock-token").Return(nil)
		doctorRepo.On("BookSlot", mock.Anything, "doc-1", "2025-07-14", "10:30").Return(false, nil)

		err := uc.Book(ctx, "user-1", request)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.ErrSlotNotAvailable(nil).ClientMessage, customErr.ClientMessage)
		appointmentRepo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("Doctor Not Available", func(t *testing.T) {
		uc, _, doctorRepo, userRepo, lockerService := newTestAppointmentUsecase()

		unavailable := testDoctor()
		unavailable.Available = false
		userRepo.On("FindByID", mock.Anything, "user-1").Return(testUser(), nil)
		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(unavailable, nil)

		err := uc.Book(ctx, "user-1", request)

		assert.Error(t, err)
		lockerService.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lock Not Acquired", func(t *testing.T) {
		uc, _, doctorRepo, userRepo, lockerService := newTestAppointmentUsecase()

		userRepo.On("FindByID", mock.Anything, "user-1").Return(testUser(), nil)
		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(testDoctor(), nil)
		lockerService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		err := uc.Book(ctx, "user-1", request)

		assert.Error(t, err)
		doctorRepo.AssertNotCalled(t, "BookSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Slot Released When Insert Fails", func(t *testing.T) {
		uc, appointmentRepo, doctorRepo, userRepo, lockerService := newTestAppointmentUsecase()

		userRepo.On("FindByID", mock.Anything, "user-1").Return(testUser(), nil)
		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(testDoctor(), nil)
		lockerService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-token", nil)
		lockerService.On("Unlock", mock.Anything, mock.Anything, "lock-token").Return(nil)
		doctorRepo.On("BookSlot", mock.Anything, "doc-1", "2025-07-14", "10:30").Return(true, nil)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.Anything).Return("", exceptions.ErrMongoDBInsertDocument(nil))
		doctorRepo.On("ReleaseSlot", mock.Anything, "doc-1", "2025-07-14", "10:30").Return(nil)

		err := uc.Book(ctx, "user-1", request)

		assert.Error(t, err)
		doctorRepo.AssertCalled(t, "ReleaseSlot", mock.Anything, "doc-1", "2025-07-14", "10:30")
	})

	t.Run("Malformed Slot Date", func(t *testing.T) {
		uc, _, _, userRepo, _ := newTestAppointmentUsecase()

		err := uc.Book(ctx, "user-1", &requests.BookAppointment{
			DocID:    "doc-1",
			SlotDate: "14-07-2025",
			SlotTime: "10:30",
		})

		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestAppointmentUsecase_Cancel(t *testing.T) {
	ctx := context.Background()

	booked := func() *models.Appointment {
		return &models.Appointment{
			ID:       "appt-1",
			UserID:   "user-1",
			DocID:    "doc-1",
			SlotDate: "2025-07-14",
			SlotTime: "10:30",
		}
	}

	t.Run("Cancel Releases Slot", func(t *testing.T) {
		uc, appointmentRepo, doctorRepo, _, _ := newTestAppointmentUsecase()

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(booked(), nil)
		appointmentRepo.On("MarkCancelled", mock.Anything, "appt-1").Return(nil)
		doctorRepo.On("ReleaseSlot", mock.Anything, "doc-1", "2025-07-14", "10:30").Return(nil)

		alreadyCancelled, err := uc.Cancel(ctx, "user-1", "appt-1")

		assert.NoError(t, err)
		assert.False(t, alreadyCancelled)
		doctorRepo.AssertCalled(t, "ReleaseSlot", mock.Anything, "doc-1", "2025-07-14", "10:30")
	})

	t.Run("Paid Appointment Cannot Be Cancelled", func(t *testing.T) {
		uc, appointmentRepo, doctorRepo, _, _ := newTestAppointmentUsecase()

		paid := booked()
		paid.Payment = true
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(paid, nil)

		_, err := uc.Cancel(ctx, "user-1", "appt-1")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.ErrPaidCancelRejected(nil).ClientMessage, customErr.ClientMessage)
		appointmentRepo.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything)
		doctorRepo.AssertNotCalled(t, "ReleaseSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Cancel By Non Owner Rejected", func(t *testing.T) {
		uc, appointmentRepo, _, _, _ := newTestAppointmentUsecase()

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(booked(), nil)

		_, err := uc.Cancel(ctx, "user-2", "appt-1")

		assert.Error(t, err)
		appointmentRepo.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything)
	})

	t.Run("Repeated Cancel Is Idempotent", func(t *testing.T) {
		uc, appointmentRepo, doctorRepo, _, _ := newTestAppointmentUsecase()

		cancelled := booked()
		cancelled.Cancelled = true
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(cancelled, nil)

		alreadyCancelled, err := uc.Cancel(ctx, "user-1", "appt-1")

		assert.NoError(t, err)
		assert.True(t, alreadyCancelled)
		appointmentRepo.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything)
		doctorRepo.AssertNotCalled(t, "ReleaseSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAppointmentUsecase_DoctorCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Doctor Cancels Own Appointment", func(t *testing.T) {
		uc, appointmentRepo, doctorRepo, _, _ := newTestAppointmentUsecase()

		appointment := &models.Appointment{ID: "appt-1", DocID: "doc-1", SlotDate: "2025-07-14", SlotTime: "10:30"}
		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(appointment, nil)
		appointmentRepo.On("MarkCancelled", mock.Anything, "appt-1").Return(nil)
		doctorRepo.On("ReleaseSlot", mock.Anything, "doc-1", "2025-07-14", "10:30").Return(nil)

		err := uc.DoctorCancel(ctx, "doc-1", "appt-1")

		assert.NoError(t, err)
		doctorRepo.AssertCalled(t, "ReleaseSlot", mock.Anything, "doc-1", "2025-07-14", "10:30")
	})

	t.Run("Doctor Cannot Cancel Another Doctors Appointment", func(t *testing.T) {
		uc, appointmentRepo, doctorRepo, _, _ := newTestAppointmentUsecase()

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(&models.Appointment{ID: "appt-1", DocID: "doc-1"}, nil)

		err := uc.DoctorCancel(ctx, "doc-2", "appt-1")

		assert.Error(t, err)
		appointmentRepo.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything)
		doctorRepo.AssertNotCalled(t, "ReleaseSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAppointmentUsecase_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("Doctor Completes Own Appointment", func(t *testing.T) {
		uc, appointmentRepo, _, _, _ := newTestAppointmentUsecase()

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(&models.Appointment{ID: "appt-1", DocID: "doc-1"}, nil)
		appointmentRepo.On("MarkCompleted", mock.Anything, "appt-1").Return(nil)

		err := uc.Complete(ctx, "doc-1", "appt-1")

		assert.NoError(t, err)
	})

	t.Run("Doctor Cannot Complete Another Doctors Appointment", func(t *testing.T) {
		uc, appointmentRepo, _, _, _ := newTestAppointmentUsecase()

		appointmentRepo.On("FindByID", mock.Anything, "appt-1").Return(&models.Appointment{ID: "appt-1", DocID: "doc-1"}, nil)

		err := uc.Complete(ctx, "doc-2", "appt-1")

		assert.Error(t, err)
		appointmentRepo.AssertNotCalled(t, "MarkCompleted", mock.Anything, mock.Anything)
	})
}
