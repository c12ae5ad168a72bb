package models

// Prediction is an append-only record of one disease-risk prediction. The
// prediction itself never changes; Status tracks the admin review workflow
// over it (pending → reviewing → approved/rejected → uploaded/deleted).
type Prediction struct {
	ID               string                 `json:"_id" bson:"_id,omitempty"`
	Disease          string                 `json:"disease" bson:"disease"`
	UserID           string                 `json:"userId,omitempty" bson:"userId,omitempty"`
	UserData         map[string]interface{} `json:"userData" bson:"userData"`
	PredictionResult string                 `json:"predictionResult" bson:"predictionResult"`
	Probability      float64                `json:"probability" bson:"probability"`
	Status           string                 `json:"status" bson:"status"`
	ReviewerDoctorID string                 `json:"reviewerDoctorId,omitempty" bson:"reviewerDoctorId,omitempty"`
	ReviewNote       string                 `json:"reviewNote,omitempty" bson:"reviewNote,omitempty"`
	TimeModel        `bson:",inline"`
}
