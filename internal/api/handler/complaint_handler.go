package handler

import (
	"encoding/json"
	"net/http"

	"green_valley_api/internal/api/middleware"
	"green_valley_api/internal/app/service"
	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type ComplaintHandler struct {
	complaintService *service.ComplaintService
}

func NewComplaintHandler(cs *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: cs}
}

// RegisterRoutes mounts the resident-facing complaint endpoints; all of
// them require an authenticated session.
func (h *ComplaintHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)
	r.Post("/", h.createComplaint)
	r.Get("/", h.listComplaints)
	r.Get("/{complaintID}", h.getComplaint)
}

// RegisterAdminRoutes mounts complaint control; mounted behind
// Authenticator and AdminOnly.
func (h *ComplaintHandler) RegisterAdminRoutes(r chi.Router) {
	r.Patch("/{complaintID}", h.updateComplaint)
}

func (h *ComplaintHandler) createComplaint(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	complaint, err := h.complaintService.CreateComplaint(r.Context(), userID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, complaint)
}

func (h *ComplaintHandler) listComplaints(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(r.Context())

	page, pageSize := paginationParams(r)
	status := r.URL.Query().Get("status")

	complaints, total, err := h.complaintService.ListComplaints(r.Context(), userID, userRole, status, page, pageSize)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	type PaginatedComplaintsResponse struct {
		Complaints []model.Complaint `json:"complaints"`
		Total      int               `json:"total"`
		Page       int               `json:"page"`
		PageSize   int               `json:"page_size"`
	}
	if complaints == nil {
		complaints = []model.Complaint{}
	}
	common.RespondWithJSON(w, http.StatusOK, PaginatedComplaintsResponse{
		Complaints: complaints,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	})
}

func (h *ComplaintHandler) getComplaint(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(r.Context())
	complaintID := chi.URLParam(r, "complaintID")

	complaint, err := h.complaintService.GetComplaint(r.Context(), userID, userRole, complaintID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, complaint)
}

func (h *ComplaintHandler) updateComplaint(w http.ResponseWriter, r *http.Request) {
	complaintID := chi.URLParam(r, "complaintID")

	var req service.UpdateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	complaint, err := h.complaintService.UpdateComplaint(r.Context(), complaintID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, complaint)
}
