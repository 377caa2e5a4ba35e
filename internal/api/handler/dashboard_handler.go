package handler

import (
	"net/http"

	"green_valley_api/internal/app/service"
	"green_valley_api/internal/common"

	"github.com/go-chi/chi/v5"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(ds *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

func (h *DashboardHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/stats", h.stats)
}

func (h *DashboardHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, stats)
}
