package config

import (
	"context"
	"log"
	"timeslot-service/internal/app/services/shared/eventqueue"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	EventQueue     *eventqueue.Service
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

// Shutdown releases the long-lived resources after the HTTP server has
// stopped accepting requests: the producer first (flushes in-flight sends),
// then the logger.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if err := b.EventQueue.Close(); err != nil {
		return err
	}
	log.Println("Successfully closed event queue")

	if err := b.Logger.Sync(); err != nil {
		return err
	}
	log.Println("Successfully closed logger")

	return nil
}
