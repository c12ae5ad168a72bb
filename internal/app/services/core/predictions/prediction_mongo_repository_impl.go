package predictions

import (
	"context"
	"predictacare-service/internal/app/contracts"
	"predictacare-service/internal/app/models"
	"predictacare-service/internal/pkg/constvars"
	"predictacare-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PredictionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPredictionMongoRepository(db *mongo.Client, dbName string) contracts.PredictionRepository {
	return &PredictionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPredictions),
	}
}

func (r *PredictionMongoRepository) CreatePrediction(ctx context.Context, prediction *models.Prediction) (string, error) {
	result, err := r.Collection.InsertOne(ctx, prediction)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PredictionMongoRepository) FindByID(ctx context.Context, predictionID string) (*models.Prediction, error) {
	var prediction models.Prediction
	objectID, err := primitive.ObjectIDFromHex(predictionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&prediction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prediction, nil
}

func (r *PredictionMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Prediction, error) {
	return r.findMany(ctx, bson.M{"userId": userID})
}

func (r *PredictionMongoRepository) FindByReviewerDoctorID(ctx context.Context, docID string) ([]models.Prediction, error) {
	return r.findMany(ctx, bson.M{"reviewerDoctorId": docID})
}

func (r *PredictionMongoRepository) FindAll(ctx context.Context) ([]models.Prediction, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *PredictionMongoRepository) UpdateStatus(ctx context.Context, predictionID, status string) error {
	return r.setFields(ctx, predictionID, bson.M{"status": status, "updatedAt": time.Now()})
}

func (r *PredictionMongoRepository) AssignReviewer(ctx context.Context, predictionID, docID, status string) error {
	return r.setFields(ctx, predictionID, bson.M{
		"status":           status,
		"reviewerDoctorId": docID,
		"updatedAt":        time.Now(),
	})
}

func (r *PredictionMongoRepository) SubmitReview(ctx context.Context, predictionID, status, note string) error {
	return r.setFields(ctx, predictionID, bson.M{
		"status":     status,
		"reviewNote": note,
		"updatedAt":  time.Now(),
	})
}

func (r *PredictionMongoRepository) DeletePrediction(ctx context.Context, predictionID string) error {
	objectID, err := primitive.ObjectIDFromHex(predictionID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *PredictionMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.Prediction, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	predictions := make([]models.Prediction, 0)
	if err := cursor.All(ctx, &predictions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return predictions, nil
}

func (r *PredictionMongoRepository) setFields(ctx context.Context, predictionID string, fields bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(predictionID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
