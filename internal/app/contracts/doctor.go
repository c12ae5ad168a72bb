package contracts

import (
	"context"

	"predictacare-service/internal/app/models"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindByID(ctx context.Context, docID string) (*models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	SetAvailability(ctx context.Context, docID string, available bool) error
	CountDoctors(ctx context.Context) (int64, error)

	// BookSlot appends slotTime to the doctor's list for slotDate only if it
	// is not already present, in one conditional update. The first return is
	// false when the slot was already taken.
	BookSlot(ctx context.Context, docID, slotDate, slotTime string) (bool, error)
	// ReleaseSlot removes slotTime from the doctor's list for slotDate.
	ReleaseSlot(ctx context.Context, docID, slotDate, slotTime string) error
}

type DoctorUsecase interface {
	AddDoctor(ctx context.Context, request *requests.AddDoctor) (string, error)
	Login(ctx context.Context, request *requests.LoginDoctor) (*responses.AuthToken, error)
	ListAll(ctx context.Context) ([]models.Doctor, error)
	ListPublic(ctx context.Context) ([]responses.DoctorPublic, error)
	ChangeAvailability(ctx context.Context, docID string) error
	GetProfile(ctx context.Context, docID string) (*models.Doctor, error)
	UpdateProfile(ctx context.Context, docID string, request *requests.UpdateDoctorProfile) error
	Dashboard(ctx context.Context, docID string) (*responses.DoctorDashboard, error)
}
