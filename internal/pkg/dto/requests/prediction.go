package requests

type SavePrediction struct {
	Disease          string                 `json:"disease" validate:"required,oneof=heart stroke pcos diabetes"`
	UserID           string                 `json:"userId"`
	UserData         map[string]interface{} `json:"userData" validate:"required"`
	PredictionResult string                 `json:"predictionResult" validate:"required"`
	Probability      *float64               `json:"probability" validate:"required"`
}

type AssignReview struct {
	PredictionID string `json:"predictionId" validate:"required"`
	DoctorID     string `json:"doctorId" validate:"required"`
}

type SubmitReview struct {
	Approved bool   `json:"approved"`
	Note     string `json:"note"`
}
