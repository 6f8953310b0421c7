package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"timeslot-service/internal/app/config"
	"timeslot-service/internal/app/delivery/http/controllers"
	"timeslot-service/internal/app/delivery/http/middlewares"
	"timeslot-service/internal/app/delivery/http/routers"
	"timeslot-service/internal/app/drivers/logger"
	"timeslot-service/internal/app/drivers/messaging"
	"timeslot-service/internal/app/services/core/appointments"
	"timeslot-service/internal/app/services/shared/contact"
	"timeslot-service/internal/app/services/shared/eventqueue"
	"timeslot-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	if err := utils.ValidateStruct(driverConfig); err != nil {
		log.Fatalf("Invalid driver configuration: %v", err)
	}
	if err := utils.ValidateStruct(internalConfig); err != nil {
		log.Fatalf("Invalid internal configuration: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	eventQueue := eventqueue.NewDisabledService(zapLogger)
	if driverConfig.Kafka.Enabled {
		producer := messaging.NewKafkaProducer(driverConfig)
		eventQueue = eventqueue.NewService(producer, driverConfig.Kafka.Topic, zapLogger)
	}

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		EventQueue:     eventQueue,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during resource shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	normalizer := contact.NewNormalizer(bootstrap.InternalConfig.Notify.DefaultPhoneRegion)

	appointmentUsecase := appointments.NewAppointmentUsecase(
		bootstrap.Logger,
		normalizer,
		bootstrap.EventQueue,
		bootstrap.InternalConfig,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, bootstrap.InternalConfig)
	healthController := controllers.NewHealthController()

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		appointmentController,
		healthController,
	)
}
