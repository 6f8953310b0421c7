package controllers

import (
	"context"
	"net/http"
	"time"
	"timeslot-service/internal/app/config"
	"timeslot-service/internal/app/contracts"
	"timeslot-service/internal/pkg/constvars"
	"timeslot-service/internal/pkg/dto/requests"
	"timeslot-service/internal/pkg/dto/responses"
	"timeslot-service/internal/pkg/exceptions"
	"timeslot-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	RequestTimeout     time.Duration
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, internalConfig *config.InternalConfig) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		RequestTimeout:     time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second,
	}
}

// Book accepts a booking request, returning 400 with every validation
// message on rejection and 202 otherwise. The publish outcome never changes
// the status code.
func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.Book requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	var request requests.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("AppointmentController.Book failed to decode body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Bounded by the request lifecycle: a client disconnect or the timeout
	// cancels the downstream publish attempt.
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, fieldErrors := ctrl.AppointmentUsecase.Book(ctx, &request)
	if len(fieldErrors) > 0 {
		ctrl.Log.Info("AppointmentController.Book rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("error_count", len(fieldErrors)))
		utils.BuildJSONResponse(w, constvars.StatusBadRequest, responses.ValidationFailed{
			Errors: exceptions.ValidationMessages(fieldErrors),
		})
		return
	}

	ctrl.Log.Info("AppointmentController.Book accepted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.AppointmentID),
		zap.String(constvars.LoggingEventIDKey, response.EventID),
		zap.Bool("published", response.Published))
	utils.BuildJSONResponse(w, constvars.StatusAccepted, response)
}
