package predictions

import (
	"context"
	"testing"

	"predictacare-service/internal/app/models"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPredictionRepository struct {
	mock.Mock
}

func (m *MockPredictionRepository) CreatePrediction(ctx context.Context, prediction *models.Prediction) (string, error) {
	args := m.Called(ctx, prediction)
	return args.String(0), args.Error(1)
}

func (m *MockPredictionRepository) FindByID(ctx context.Context, predictionID string) (*models.Prediction, error) {
	args := m.Called(ctx, predictionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) FindByUserID(ctx context.Context, userID string) ([]models.Prediction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) FindByReviewerDoctorID(ctx context.Context, docID string) ([]models.Prediction, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) FindAll(ctx context.Context) ([]models.Prediction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) UpdateStatus(ctx context.Context, predictionID, status string) error {
	args := m.Called(ctx, predictionID, status)
	return args.Error(0)
}

func (m *MockPredictionRepository) AssignReviewer(ctx context.Context, predictionID, docID, status string) error {
	args := m.Called(ctx, predictionID, docID, status)
	return args.Error(0)
}

func (m *MockPredictionRepository) SubmitReview(ctx context.Context, predictionID, status, note string) error {
	args := m.Called(ctx, predictionID, status, note)
	return args.Error(0)
}

func (m *MockPredictionRepository) DeletePrediction(ctx context.Context, predictionID string) error {
	args := m.Called(ctx, predictionID)
	return args.Error(0)
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

type MockModelClient struct {
	mock.Mock
}

func (m *MockModelClient) Predict(ctx context.Context, disease string, features map[string]interface{}) (map[string]interface{}, error) {
	args := m.Called(ctx, disease, features)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func newTestPredictionUsecase() (*predictionUsecase, *MockPredictionRepository, *MockDoctorRepository, *MockModelClient) {
	predictionRepo := new(MockPredictionRepository)
	doctorRepo := new(MockDoctorRepository)
	modelClient := new(MockModelClient)

	uc := &predictionUsecase{
		PredictionRepository: predictionRepo,
		DoctorRepository:     doctorRepo,
		ModelClient:          modelClient,
		Log:                  zap.NewNop(),
	}
	return uc, predictionRepo, doctorRepo, modelClient
}

func predictionWithStatus(status string) *models.Prediction {
	return &models.Prediction{
		ID:               "pred-1",
		Disease:          constvars.DiseaseHeart,
		UserID:           "user-1",
		PredictionResult: "positive",
		Probability:      0.83,
		Status:           status,
		ReviewerDoctorID: "doc-1",
	}
}

func assertReviewTransitionError(t *testing.T, err error) {
	t.Helper()
	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, exceptions.ErrReviewTransition(nil).ClientMessage, customErr.ClientMessage)
}

func TestPredictionUsecase_Relay(t *testing.T) {
	ctx := context.Background()

	t.Run("Known Disease Forwarded Verbatim", func(t *testing.T) {
		uc, _, _, modelClient := newTestPredictionUsecase()

		features := map[string]interface{}{"age": 54, "cholesterol": 230}
		upstream := map[string]interface{}{"prediction": 1, "probability": 0.83}
		modelClient.On("Predict", mock.Anything, constvars.DiseaseHeart, features).Return(upstream, nil)

		result, err := uc.Relay(ctx, constvars.DiseaseHeart, features)

		assert.NoError(t, err)
		assert.Equal(t, upstream, result)
	})

	t.Run("Unknown Disease Rejected", func(t *testing.T) {
		uc, _, _, modelClient := newTestPredictionUsecase()

		_, err := uc.Relay(ctx, "migraine", map[string]interface{}{})

		assert.Error(t, err)
		modelClient.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPredictionUsecase_ReviewWorkflow(t *testing.T) {
	ctx := context.Background()

	t.Run("Assign Moves Pending To Reviewing", func(t *testing.T) {
		uc, predictionRepo, doctorRepo, _ := newTestPredictionUsecase()

		predictionRepo.On("FindByID", mock.Anything, "pred-1").Return(predictionWithStatus(constvars.PredictionStatusPending), nil)
		doctorRepo.On("FindByID", mock.Anything, "doc-1").Return(&models.Doctor{ID: "doc-1"}, nil)
		predictionRepo.On("AssignReviewer", mock.Anything, "pred-1", "doc-1", constvars.PredictionStatusReviewing).Return(nil)

		err := uc.AssignReview(ctx, &requests.AssignReview{PredictionID: "pred-1", DoctorID: "doc-1"})

		assert.NoError(t, err)
	})

	t.Run("Review Verdict On Pending Record Rejected", func(t *testing.T) {
		uc, predictionRepo, _, _ := newTestPredictionUsecase()

		predictionRepo.On("FindByID", mock.Anything, "pred-1").Return(predictionWithStatus(constvars.PredictionStatusPending), nil)

		err := uc.SubmitReview(ctx, "doc-1", "pred-1", &requests.SubmitReview{Approved: true})

		assertReviewTransitionError(t, err)
		predictionRepo.AssertNotCalled(t, "SubmitReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Approve Then Upload", func(t *testing.T) {
		uc, predictionRepo, _, _ := newTestPredictionUsecase()

		predictionRepo.On("FindByID", mock.Anything, "pred-1").Return(predictionWithStatus(constvars.PredictionStatusReviewing), nil).Once()
		predictionRepo.On("SubmitReview", mock.Anything, "pred-1", constvars.PredictionStatusApproved, "looks right").Return(nil)

		err := uc.SubmitReview(ctx, "doc-1", "pred-1", &requests.SubmitReview{Approved: true, Note: "looks right"})
		assert.NoError(t, err)

		predictionRepo.On("FindByID", mock.Anything, "pred-1").Return(predictionWithStatus(constvars.PredictionStatusApproved), nil).Once()
		predictionRepo.On("UpdateStatus", mock.Anything, "pred-1", constvars.PredictionStatusUploaded).Return(nil)

		err = uc.MarkUploaded(ctx, "pred-1")
		assert.NoError(t, err)
	})

	t.Run("Rejected Record Cannot Be Uploaded", func(t *testing.T) {
		uc, predictionRepo, _, _ := newTestPredictionUsecase()

		predictionRepo.On("FindByID", mock.Anything, "pred-1").Return(predictionWithStatus(constvars.PredictionStatusRejected), nil)

		err := uc.MarkUploaded(ctx, "pred-1")

		assertReviewTransitionError(t, err)
		predictionRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Wrong Reviewer Rejected", func(t *testing.T) {
		uc, predictionRepo, _, _ := newTestPredictionUsecase()

		predictionRepo.On("FindByID", mock.Anything, "pred-1").Return(predictionWithStatus(constvars.PredictionStatusReviewing), nil)

		err := uc.SubmitReview(ctx, "doc-2", "pred-1", &requests.SubmitReview{Approved: true})

		assert.Error(t, err)
		predictionRepo.AssertNotCalled(t, "SubmitReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Admin Verdict Skips Reviewer Match", func(t *testing.T) {
		uc, predictionRepo, _, _ := newTestPredictionUsecase()

		predictionRepo.On("FindByID", mock.Anything, "pred-1").Return(predictionWithStatus(constvars.PredictionStatusReviewing), nil)
		predictionRepo.On("SubmitReview", mock.Anything, "pred-1", constvars.PredictionStatusRejected, "").Return(nil)

		err := uc.SubmitReview(ctx, "", "pred-1", &requests.SubmitReview{Approved: false})

		assert.NoError(t, err)
	})
}

func TestPredictionUsecase_HardDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending Record Removed", func(t *testing.T) {
		uc, predictionRepo, _, _ := newTestPredictionUsecase()

		predictionRepo.On("FindByID", mock.Anything, "pred-1").Return(predictionWithStatus(constvars.PredictionStatusPending), nil)
		predictionRepo.On("DeletePrediction", mock.Anything, "pred-1").Return(nil)

		err := uc.HardDelete(ctx, "pred-1")

		assert.NoError(t, err)
	})

	t.Run("Record Under Review Kept", func(t *testing.T) {
		uc, predictionRepo, _, _ := newTestPredictionUsecase()

		predictionRepo.On("FindByID", mock.Anything, "pred-1").Return(predictionWithStatus(constvars.PredictionStatusReviewing), nil)

		err := uc.HardDelete(ctx, "pred-1")

		assertReviewTransitionError(t, err)
		predictionRepo.AssertNotCalled(t, "DeletePrediction", mock.Anything, mock.Anything)
	})
}

func TestTransitionAllowed(t *testing.T) {
	assert.True(t, transitionAllowed(constvars.PredictionStatusPending, constvars.PredictionStatusReviewing))
	assert.True(t, transitionAllowed(constvars.PredictionStatusReviewing, constvars.PredictionStatusApproved))
	assert.True(t, transitionAllowed(constvars.PredictionStatusReviewing, constvars.PredictionStatusRejected))
	assert.True(t, transitionAllowed(constvars.PredictionStatusApproved, constvars.PredictionStatusUploaded))
	assert.True(t, transitionAllowed(constvars.PredictionStatusRejected, constvars.PredictionStatusDeleted))

	assert.False(t, transitionAllowed(constvars.PredictionStatusPending, constvars.PredictionStatusApproved))
	assert.False(t, transitionAllowed(constvars.PredictionStatusUploaded, constvars.PredictionStatusReviewing))
	assert.False(t, transitionAllowed(constvars.PredictionStatusDeleted, constvars.PredictionStatusReviewing))
}
