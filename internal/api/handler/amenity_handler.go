package handler

import (
	"encoding/json"
	"net/http"

	"green_valley_api/internal/app/service"
	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type AmenityHandler struct {
	amenityService *service.AmenityService
}

func NewAmenityHandler(as *service.AmenityService) *AmenityHandler {
	return &AmenityHandler{amenityService: as}
}

// RegisterPublicRoutes lists the amenities shown on the facilities page.
func (h *AmenityHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.listEnabledAmenities)
}

// RegisterAdminRoutes mounts amenity management; mounted behind
// Authenticator and AdminOnly.
func (h *AmenityHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/", h.listAllAmenities)
	r.Post("/", h.createAmenity)
	r.Put("/{amenityID}", h.updateAmenity)
	r.Delete("/{amenityID}", h.deleteAmenity)
}

func (h *AmenityHandler) listEnabledAmenities(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, true)
}

func (h *AmenityHandler) listAllAmenities(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, false)
}

func (h *AmenityHandler) respondList(w http.ResponseWriter, r *http.Request, enabledOnly bool) {
	amenities, err := h.amenityService.ListAmenities(r.Context(), enabledOnly)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	if amenities == nil {
		amenities = []model.Amenity{}
	}
	common.RespondWithJSON(w, http.StatusOK, amenities)
}

func (h *AmenityHandler) createAmenity(w http.ResponseWriter, r *http.Request) {
	var req service.CreateAmenityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	amenity, err := h.amenityService.CreateAmenity(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, amenity)
}

func (h *AmenityHandler) updateAmenity(w http.ResponseWriter, r *http.Request) {
	amenityID := chi.URLParam(r, "amenityID")

	var req service.UpdateAmenityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	amenity, err := h.amenityService.UpdateAmenity(r.Context(), amenityID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, amenity)
}

func (h *AmenityHandler) deleteAmenity(w http.ResponseWriter, r *http.Request) {
	amenityID := chi.URLParam(r, "amenityID")

	if err := h.amenityService.DeleteAmenity(r.Context(), amenityID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Amenity deleted"})
}
