package config

type DriverConfig struct {
	Logger Logger
	Kafka  Kafka
}

type Logger struct {
	Level               string `validate:"oneof=debug info warn error"`
	OutputFileName      string `validate:"required"`
	OutputErrorFileName string `validate:"required"`
}

type Kafka struct {
	Enabled bool
	Brokers []string `validate:"min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`
}
