package controllers

import (
	"net/http"
	"timeslot-service/internal/pkg/constvars"
	"timeslot-service/internal/pkg/dto/responses"
	"timeslot-service/internal/pkg/utils"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Health{Status: "ok"})
}
