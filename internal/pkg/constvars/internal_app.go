package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_RAW_BODY                 ContextKey = "raw_body"
	CONTEXT_ACTOR_ID_KEY             ContextKey = "actor_id"
	CONTEXT_ACTOR_ROLE_KEY           ContextKey = "actor_role"
)

const (
	REQUEST_ID_PREFIX = "PDC_SVC_"
)

const (
	MongoCollectionUsers        = "users"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionAppointments = "appointments"
	MongoCollectionPredictions  = "predictions"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// Redis lock key for a doctor's slot map. All slot mutations for one doctor
// serialize on this key.
const (
	RedisKeyDoctorSlotLockFormat = "lock:doctor-slots:%s"
)

const (
	SlotDateLayout = "2006-01-02"
	SlotTimeLayout = "15:04"
)

const (
	MinPasswordLength = 8
)
