package config

type (
	InternalConfig struct {
		App        App
		JWT        JWT
		Razorpay   Razorpay
		Prediction Prediction
		Chat       Chat
		Admin      Admin
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	App struct {
		Env                         string
		Port                        string
		Version                     string
		Address                     string
		Timezone                    string
		EndpointPrefix              string
		MaxRequests                 int
		ShutdownTimeout             int
		MaxTimeRequestsPerSeconds   int
		RequestBodyLimitInMegabyte  int
		RabbitMQWebhookQueue        string
		ProfileImageMaxUploadSizeMB int64
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Razorpay struct {
		KeyID         string
		KeySecret     string
		WebhookSecret string
		Currency      string
	}

	Prediction struct {
		BaseUrl                string
		TimeoutInSeconds       int
		UpstreamRequestsPerSec float64
		UpstreamBurst          int
	}

	Chat struct {
		BaseUrl          string
		APIKey           string
		Model            string
		Temperature      float64
		TimeoutInSeconds int
	}

	Admin struct {
		Email    string
		Password string
	}
)
