package constvars

const (
	DiseaseHeart    = "heart"
	DiseaseStroke   = "stroke"
	DiseasePCOS     = "pcos"
	DiseaseDiabetes = "diabetes"
)

// Review workflow statuses for a saved prediction. Transitions are validated
// server-side; see services/core/predictions.
const (
	PredictionStatusPending   = "pending"
	PredictionStatusReviewing = "reviewing"
	PredictionStatusApproved  = "approved"
	PredictionStatusRejected  = "rejected"
	PredictionStatusUploaded  = "uploaded"
	PredictionStatusDeleted   = "deleted"
)
