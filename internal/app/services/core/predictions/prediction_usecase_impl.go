package predictions

import (
	"context"
	"fmt"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/app/models"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/dto/requests"
	"predictacare-service/internal/pkg/exceptions"
	"predictacare-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// allowedTransitions is the review state machine. A status change outside
// of it is rejected before anything is written.
var allowedTransitions = map[string][]string{
	constvars.PredictionStatusPending:   {constvars.PredictionStatusReviewing},
	constvars.PredictionStatusReviewing: {constvars.PredictionStatusApproved, constvars.PredictionStatusRejected},
	constvars.PredictionStatusApproved:  {constvars.PredictionStatusUploaded},
	constvars.PredictionStatusRejected:  {constvars.PredictionStatusDeleted},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

var (
	predictionUsecaseInstance contracts.PredictionUsecase
	oncePredictionUsecase     sync.Once
)

type predictionUsecase struct {
	PredictionRepository contracts.PredictionRepository
	DoctorRepository     contracts.DoctorRepository
	ModelClient          contracts.PredictionModelClient
	Log                  *zap.Logger
}

func NewPredictionUsecase(
	predictionMongoRepository contracts.PredictionRepository,
	doctorMongoRepository contracts.DoctorRepository,
	modelClient contracts.PredictionModelClient,
	logger *zap.Logger,
) contracts.PredictionUsecase {
	oncePredictionUsecase.Do(func() {
		predictionUsecaseInstance = &predictionUsecase{
			PredictionRepository: predictionMongoRepository,
			DoctorRepository:     doctorMongoRepository,
			ModelClient:          modelClient,
			Log:                  logger,
		}
	})
	return predictionUsecaseInstance
}

func (uc *predictionUsecase) Relay(ctx context.Context, disease string, features map[string]interface{}) (map[string]interface{}, error) {
	switch disease {
	case constvars.DiseaseHeart, constvars.DiseaseStroke, constvars.DiseasePCOS, constvars.DiseaseDiabetes:
	default:
		return nil, exceptions.ErrInputValidation(fmt.Errorf("unknown disease tag %q", disease))
	}

	return uc.ModelClient.Predict(ctx, disease, features)
}

func (uc *predictionUsecase) Save(ctx context.Context, userID string, request *requests.SavePrediction) (string, error) {
	now := time.Now()
	prediction := &models.Prediction{
		Disease:          request.Disease,
		UserID:           userID,
		UserData:         request.UserData,
		PredictionResult: request.PredictionResult,
		Probability:      *request.Probability,
		Status:           constvars.PredictionStatusPending,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	predictionID, err := uc.PredictionRepository.CreatePrediction(ctx, prediction)
	if err != nil {
		return "", err
	}

	uc.Log.Info("predictionUsecase.Save stored prediction",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPredictionIDKey, predictionID),
		zap.String(constvars.LoggingDiseaseKey, request.Disease),
	)
	return predictionID, nil
}

func (uc *predictionUsecase) ListForUser(ctx context.Context, userID string) ([]models.Prediction, error) {
	return uc.PredictionRepository.FindByUserID(ctx, userID)
}

func (uc *predictionUsecase) ListForDoctor(ctx context.Context, docID string) ([]models.Prediction, error) {
	return uc.PredictionRepository.FindByReviewerDoctorID(ctx, docID)
}

func (uc *predictionUsecase) ListAll(ctx context.Context) ([]models.Prediction, error) {
	return uc.PredictionRepository.FindAll(ctx)
}

func (uc *predictionUsecase) AssignReview(ctx context.Context, request *requests.AssignReview) error {
	prediction, err := uc.PredictionRepository.FindByID(ctx, request.PredictionID)
	if err != nil {
		return err
	}
	if prediction == nil {
		return exceptions.ErrPredictionNotFound(nil)
	}

	if !transitionAllowed(prediction.Status, constvars.PredictionStatusReviewing) {
		return exceptions.ErrReviewTransition(fmt.Errorf("%s to %s", prediction.Status, constvars.PredictionStatusReviewing))
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	return uc.PredictionRepository.AssignReviewer(ctx, request.PredictionID, request.DoctorID, constvars.PredictionStatusReviewing)
}

func (uc *predictionUsecase) SubmitReview(ctx context.Context, docID, predictionID string, request *requests.SubmitReview) error {
	prediction, err := uc.PredictionRepository.FindByID(ctx, predictionID)
	if err != nil {
		return err
	}
	if prediction == nil {
		return exceptions.ErrPredictionNotFound(nil)
	}
	if docID != "" && prediction.ReviewerDoctorID != docID {
		return exceptions.ErrUnauthorizedAction(nil)
	}

	target := constvars.PredictionStatusApproved
	if !request.Approved {
		target = constvars.PredictionStatusRejected
	}
	if !transitionAllowed(prediction.Status, target) {
		return exceptions.ErrReviewTransition(fmt.Errorf("%s to %s", prediction.Status, target))
	}

	return uc.PredictionRepository.SubmitReview(ctx, predictionID, target, request.Note)
}

func (uc *predictionUsecase) MarkUploaded(ctx context.Context, predictionID string) error {
	return uc.transition(ctx, predictionID, constvars.PredictionStatusUploaded)
}

func (uc *predictionUsecase) MarkDeleted(ctx context.Context, predictionID string) error {
	return uc.transition(ctx, predictionID, constvars.PredictionStatusDeleted)
}

func (uc *predictionUsecase) HardDelete(ctx context.Context, predictionID string) error {
	prediction, err := uc.PredictionRepository.FindByID(ctx, predictionID)
	if err != nil {
		return err
	}
	if prediction == nil {
		return exceptions.ErrPredictionNotFound(nil)
	}
	if prediction.Status != constvars.PredictionStatusPending {
		return exceptions.ErrReviewTransition(fmt.Errorf("only pending records can be removed, status is %s", prediction.Status))
	}
	return uc.PredictionRepository.DeletePrediction(ctx, predictionID)
}

func (uc *predictionUsecase) transition(ctx context.Context, predictionID, target string) error {
	prediction, err := uc.PredictionRepository.FindByID(ctx, predictionID)
	if err != nil {
		return err
	}
	if prediction == nil {
		return exceptions.ErrPredictionNotFound(nil)
	}
	if !transitionAllowed(prediction.Status, target) {
		return exceptions.ErrReviewTransition(fmt.Errorf("%s to %s", prediction.Status, target))
	}
	return uc.PredictionRepository.UpdateStatus(ctx, predictionID, target)
}
