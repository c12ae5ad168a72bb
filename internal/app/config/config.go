package config

import (
	"predictacare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "predictacare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "predictacare-images"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                         utils.GetEnvString("APP_ENV", "development"),
			Port:                        utils.GetEnvString("APP_PORT", ":8080"),
			Version:                     utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                     utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                    utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:              utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:                 utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:             utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:   utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte:  utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			RabbitMQWebhookQueue:        utils.GetEnvString("APP_RABBITMQ_WEBHOOK_QUEUE", "payment-webhooks"),
			ProfileImageMaxUploadSizeMB: utils.GetEnvInt64("APP_PROFILE_IMAGE_UPLOAD_MAX_SIZE_IN_MB", 2),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Razorpay: Razorpay{
			KeyID:         utils.GetEnvString("RAZORPAY_KEY_ID", ""),
			KeySecret:     utils.GetEnvString("RAZORPAY_KEY_SECRET", ""),
			WebhookSecret: utils.GetEnvString("RAZORPAY_WEBHOOK_SECRET", ""),
			Currency:      utils.GetEnvString("RAZORPAY_CURRENCY", "INR"),
		},
		Prediction: Prediction{
			BaseUrl:                utils.GetEnvString("PREDICTION_SERVICE_BASE_URL", "http://localhost:5001"),
			TimeoutInSeconds:       utils.GetEnvInt("PREDICTION_SERVICE_TIMEOUT_IN_SECONDS", 15),
			UpstreamRequestsPerSec: utils.GetEnvFloat("PREDICTION_SERVICE_UPSTREAM_RPS", 5),
			UpstreamBurst:          utils.GetEnvInt("PREDICTION_SERVICE_UPSTREAM_BURST", 10),
		},
		Chat: Chat{
			BaseUrl:          utils.GetEnvString("CHAT_SERVICE_BASE_URL", "https://api.groq.com/openai/v1"),
			APIKey:           utils.GetEnvString("CHAT_SERVICE_API_KEY", ""),
			Model:            utils.GetEnvString("CHAT_SERVICE_MODEL", "llama-3.3-70b-versatile"),
			Temperature:      utils.GetEnvFloat("CHAT_SERVICE_TEMPERATURE", 0.3),
			TimeoutInSeconds: utils.GetEnvInt("CHAT_SERVICE_TIMEOUT_IN_SECONDS", 30),
		},
		Admin: Admin{
			Email:    utils.GetEnvString("ADMIN_EMAIL", ""),
			Password: utils.GetEnvString("ADMIN_PASSWORD", ""),
		},
	}
}
