package contracts

import (
	"context"

	"predictacare-service/internal/app/models"
	"predictacare-service/internal/pkg/dto/requests"
)

type PredictionRepository interface {
	CreatePrediction(ctx context.Context, prediction *models.Prediction) (string, error)
	FindByID(ctx context.Context, predictionID string) (*models.Prediction, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Prediction, error)
	FindByReviewerDoctorID(ctx context.Context, docID string) ([]models.Prediction, error)
	FindAll(ctx context.Context) ([]models.Prediction, error)
	UpdateStatus(ctx context.Context, predictionID, status string) error
	AssignReviewer(ctx context.Context, predictionID, docID, status string) error
	SubmitReview(ctx context.Context, predictionID, status, note string) error
	DeletePrediction(ctx context.Context, predictionID string) error
}

// PredictionModelClient relays feature payloads to the external model service.
type PredictionModelClient interface {
	Predict(ctx context.Context, disease string, features map[string]interface{}) (map[string]interface{}, error)
}

type PredictionUsecase interface {
	Relay(ctx context.Context, disease string, features map[string]interface{}) (map[string]interface{}, error)
	Save(ctx context.Context, userID string, request *requests.SavePrediction) (string, error)
	ListForUser(ctx context.Context, userID string) ([]models.Prediction, error)
	ListForDoctor(ctx context.Context, docID string) ([]models.Prediction, error)
	ListAll(ctx context.Context) ([]models.Prediction, error)
	AssignReview(ctx context.Context, request *requests.AssignReview) error
	SubmitReview(ctx context.Context, docID, predictionID string, request *requests.SubmitReview) error
	MarkUploaded(ctx context.Context, predictionID string) error
	MarkDeleted(ctx context.Context, predictionID string) error
	// HardDelete removes a record outright. Only records still pending
	// review may be removed this way.
	HardDelete(ctx context.Context, predictionID string) error
}
