package constvars

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"min":      "must be at least %s characters",
	"max":      "must be at most %s characters",
	"oneof":    "must be one of: %s",
	"numeric":  "must be a number",
	"datetime": "must match the expected date or time format",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

const (
	ErrClientMissingDetails                = "Missing details"
	ErrClientInvalidEmail                  = "Enter a valid email"
	ErrClientWeakPassword                  = "Enter a strong password"
	ErrClientEmailAlreadyExists            = "User already exists"
	ErrClientUserNotExist                  = "User does not exist"
	ErrClientInvalidCredentials            = "Invalid credentials"
	ErrClientCannotProcessRequest          = "Failed to process your request"
	ErrClientSomethingWrongWithApplication = "Something went wrong, please try again"
	ErrClientServerLongRespond             = "The server is taking too long to respond"
	ErrClientNotAuthorized                 = "Not authorized"
	ErrClientNotLoggedIn                   = "Session expired, please login again"
	ErrClientInvalidImageFormat            = "The uploaded image does not meet the requirements"

	ErrClientDoctorNotFound       = "Doctor not found"
	ErrClientDoctorNotAvailable   = "Doctor not available"
	ErrClientSlotNotAvailable     = "Slot not available"
	ErrClientAppointmentNotFound  = "Appointment not found"
	ErrClientUnauthorizedAction   = "Unauthorized action"
	ErrClientPaidCancelRejected   = "Paid appointment cannot be cancelled here. Contact support."
	ErrClientAppointmentCancelled = "Appointment cancelled or not found"
	ErrClientAlreadyPaid          = "Appointment already paid"
	ErrClientSignatureMismatch    = "Signature verification failed"
	ErrClientWebhookSignature     = "Invalid webhook signature"
	ErrClientOrderReceiptMissing  = "Order receipt missing"

	ErrClientPredictionUpstream   = "Failed to connect to prediction service"
	ErrClientPredictionIncomplete = "Incomplete data"
	ErrClientInvalidReviewState   = "Invalid review state transition"
	ErrClientPredictionNotFound   = "Prediction not found"

	ErrClientChatMessageRequired = "Message is required"
	ErrClientChatUpstream        = "AI service failed"
)

const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotReadBody           = "cannot read request body"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevUserNotExists            = "user not exists in our system"
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevReadHTTPResponse         = "failed to read HTTP response body"
	ErrDevUpstreamBadStatus        = "upstream service responded with non-success status"

	ErrDevAuthTokenMissing          = "auth token missing from request headers"
	ErrDevAuthTokenInvalidOrExpired = "auth token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate auth token"
	ErrDevAuthSigningMethod         = "unexpected jwt signing method"
	ErrDevAuthRoleMismatch          = "token role does not match the required role"

	ErrDevDBFailedToFindDocument    = "failed to find document in mongo"
	ErrDevDBFailedToInsertDocument  = "failed to insert document into mongo"
	ErrDevDBFailedToUpdateDocument  = "failed to update document in mongo"
	ErrDevDBFailedToDeleteDocument  = "failed to delete document in mongo"
	ErrDevDBFailedToIterateDocuments = "failed to iterate mongo cursor"
	ErrDevDBStringNotObjectID        = "given string is not a mongo ObjectID"

	ErrDevRedisSet           = "failed to set value in redis"
	ErrDevRedisGet           = "failed to get value from redis"
	ErrDevRedisDelete        = "failed to delete key from redis"
	ErrDevRedisUnlock        = "failed to release redis lock"
	ErrDevLockNotAcquired    = "could not acquire slot lock"

	ErrDevQueuePublish = "failed to publish message to queue"
	ErrDevQueueConsume = "failed to consume message from queue"

	ErrDevPaymentOrderCreate     = "failed to create payment provider order"
	ErrDevPaymentOrderFetch      = "failed to fetch payment provider order"
	ErrDevPaymentSignature       = "payment signature mismatch"
	ErrDevWebhookSignature       = "webhook signature mismatch"
	ErrDevWebhookPayloadMalformed = "webhook payload malformed"

	ErrDevStorageUpload = "failed to upload object to storage"

	ErrDevReviewTransition = "prediction review state transition not allowed"
)
