package constvars

const (
	ResponseSuccess = "success"

	UserRegisteredMessage              = "User registered"
	UserLoggedInMessage                = "Login successful"
	ProfileFetchedMessage              = "Profile fetched"
	ProfileUpdatedMessage              = "Profile updated"
	AppointmentBookedMessage           = "Appointment booked"
	AppointmentsListedMessage          = "Appointments fetched"
	AppointmentCancelMessage           = "Appointment cancelled"
	AppointmentAlreadyCancelledMessage = "Appointment already cancelled"
	AppointmentCompletedMessage        = "Appointment completed"

	PaymentOrderCreatedMessage = "Payment order created"
	PaymentVerifiedMessage     = "Payment verified successfully"
	WebhookProcessedMessage    = "Webhook processed"

	PredictionSavedMessage    = "Prediction saved"
	PredictionsListedMessage  = "Predictions fetched"
	PredictionAssignedMessage = "Prediction assigned for review"
	PredictionReviewedMessage = "Prediction review recorded"
	PredictionUploadedMessage = "Prediction uploaded"
	PredictionDeletedMessage  = "Prediction deleted"

	DoctorAddedMessage         = "Doctor added"
	DoctorsListedMessage       = "Doctors fetched"
	AvailabilityToggledMessage = "Availability changed"
	DashboardFetchedMessage    = "Dashboard fetched"

	ChatReplyMessage = "Reply generated"

	HealthOKMessage = "API is running smoothly"
)
