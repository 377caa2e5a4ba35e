package handler

import (
	"encoding/json"
	"net/http"

	"green_valley_api/internal/app/service"
	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type ResidentHandler struct {
	residentService *service.ResidentService
}

func NewResidentHandler(rs *service.ResidentService) *ResidentHandler {
	return &ResidentHandler{residentService: rs}
}

// RegisterAdminRoutes mounts resident management; mounted behind
// Authenticator and AdminOnly.
func (h *ResidentHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/", h.listResidents)
	r.Patch("/{residentID}/status", h.updateResidentStatus)
}

func (h *ResidentHandler) listResidents(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)

	residents, total, err := h.residentService.ListResidents(r.Context(), page, pageSize)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	type PaginatedResidentsResponse struct {
		Residents []model.User `json:"residents"`
		Total     int          `json:"total"`
		Page      int          `json:"page"`
		PageSize  int          `json:"page_size"`
	}
	if residents == nil {
		residents = []model.User{}
	}
	common.RespondWithJSON(w, http.StatusOK, PaginatedResidentsResponse{
		Residents: residents,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	})
}

func (h *ResidentHandler) updateResidentStatus(w http.ResponseWriter, r *http.Request) {
	residentID := chi.URLParam(r, "residentID")

	var req service.UpdateResidentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resident, err := h.residentService.UpdateResidentStatus(r.Context(), residentID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resident)
}
