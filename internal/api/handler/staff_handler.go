package handler

import (
	"encoding/json"
	"net/http"

	"green_valley_api/internal/app/service"
	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type StaffHandler struct {
	staffService *service.StaffService
}

func NewStaffHandler(ss *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: ss}
}

// RegisterAdminRoutes mounts staff management; mounted behind
// Authenticator and AdminOnly.
func (h *StaffHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/", h.listStaff)
	r.Post("/", h.createStaff)
	r.Put("/{staffID}", h.updateStaff)
	r.Delete("/{staffID}", h.deleteStaff)
}

func (h *StaffHandler) listStaff(w http.ResponseWriter, r *http.Request) {
	members, err := h.staffService.ListStaff(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	if members == nil {
		members = []model.Staff{}
	}
	common.RespondWithJSON(w, http.StatusOK, members)
}

func (h *StaffHandler) createStaff(w http.ResponseWriter, r *http.Request) {
	var req service.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	staff, err := h.staffService.CreateStaff(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, staff)
}

func (h *StaffHandler) updateStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	var req service.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	staff, err := h.staffService.UpdateStaff(r.Context(), staffID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, staff)
}

func (h *StaffHandler) deleteStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	if err := h.staffService.DeleteStaff(r.Context(), staffID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Staff member removed"})
}
