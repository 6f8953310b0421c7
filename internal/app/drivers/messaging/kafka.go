package messaging

import (
	"log"
	"timeslot-service/internal/app/config"

	"github.com/IBM/sarama"
)

// NewKafkaProducer dials the configured brokers once at process start.
// Return.Successes must be on for the sync producer, and WaitForAll gives
// the partition/offset acknowledgment the publish outcome reports.
func NewKafkaProducer(driverConfig *config.DriverConfig) sarama.SyncProducer {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(driverConfig.Kafka.Brokers, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Kafka: %s", err.Error())
	}
	log.Println("Successfully connected to Kafka")
	return producer
}
