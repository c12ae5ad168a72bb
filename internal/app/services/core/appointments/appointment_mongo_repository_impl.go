package appointments

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{"userId": userID})
}

func (r *AppointmentMongoRepository) FindByDocID(ctx context.Context, docID string) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{"docId": docID})
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return r.findMany(ctx, bson.M{})
}

// Listings are newest first: by appointment date, then by insertion time for
// appointments sharing a date.
var sortNewestFirst = bson.D{{Key: "date", Value: int32(-1)}, {Key: "createdAt", Value: int32(-1)}}

func (r *AppointmentMongoRepository) FindLatest(ctx context.Context, limit int64) ([]models.Appointment, error) {
	opts := options.Find().SetSort(sortNewestFirst).SetLimit(limit)
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) MarkCancelled(ctx context.Context, appointmentID string) error {
	return r.setFields(ctx, appointmentID, bson.M{"cancelled": true, "updatedAt": time.Now()})
}

func (r *AppointmentMongoRepository) MarkCompleted(ctx context.Context, appointmentID string) error {
	return r.setFields(ctx, appointmentID, bson.M{"isCompleted": true, "updatedAt": time.Now()})
}

func (r *AppointmentMongoRepository) MarkPaid(ctx context.Context, appointmentID string, info *models.PaymentInfo) error {
	return r.setFields(ctx, appointmentID, bson.M{"payment": true, "paymentInfo": info, "updatedAt": time.Now()})
}

func (r *AppointmentMongoRepository) CountAppointments(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

func (r *AppointmentMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(sortNewestFirst))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) setFields(ctx context.Context, appointmentID string, fields bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
