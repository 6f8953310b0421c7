package config

import (
	"timeslot-service/internal/pkg/constvars"
	"timeslot-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		Kafka: Kafka{
			Enabled: utils.GetEnvBool("KAFKA_ENABLED", false),
			Brokers: utils.GetEnvStringSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   utils.GetEnvString("KAFKA_TOPIC", constvars.DefaultEventTopic),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			AllowedOrigins:            utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Notify: Notify{
			Policy:             utils.GetEnvString("APP_NOTIFY_POLICY", constvars.NotifyPolicyFixed),
			Email:              utils.GetEnvBool("APP_NOTIFY_EMAIL", true),
			SMS:                utils.GetEnvBool("APP_NOTIFY_SMS", false),
			DefaultPhoneRegion: utils.GetEnvString("APP_DEFAULT_PHONE_REGION", constvars.DefaultPhoneRegion),
		},
	}
}
