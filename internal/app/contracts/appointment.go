package contracts

import (
	"context"

	"predictacare-service/internal/app/models"
	"predictacare-service/internal/pkg/dto/requests"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error)
	FindByDocID(ctx context.Context, docID string) ([]models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindLatest(ctx context.Context, limit int64) ([]models.Appointment, error)
	MarkCancelled(ctx context.Context, appointmentID string) error
	MarkCompleted(ctx context.Context, appointmentID string) error
	MarkPaid(ctx context.Context, appointmentID string, info *models.PaymentInfo) error
	CountAppointments(ctx context.Context) (int64, error)
}

type AppointmentUsecase interface {
	Book(ctx context.Context, userID string, request *requests.BookAppointment) error
	ListForUser(ctx context.Context, userID string) ([]models.Appointment, error)
	ListForDoctor(ctx context.Context, docID string) ([]models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
	// Cancel returns true when the appointment was already cancelled, which
	// callers report as an idempotent success.
	Cancel(ctx context.Context, userID, appointmentID string) (bool, error)
	AdminCancel(ctx context.Context, appointmentID string) error
	DoctorCancel(ctx context.Context, docID, appointmentID string) error
	Complete(ctx context.Context, docID, appointmentID string) error
}
