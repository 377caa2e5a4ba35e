package handler

import (
	"encoding/json"
	"net/http"

	"green_valley_api/internal/app/service"
	"green_valley_api/internal/common"
	"green_valley_api/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(cs *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

// RegisterPublicRoutes lists the emergency numbers shown in the site footer.
func (h *ContactHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.listEnabledContacts)
}

// RegisterAdminRoutes mounts contact management; mounted behind
// Authenticator and AdminOnly.
func (h *ContactHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/", h.listAllContacts)
	r.Post("/", h.createContact)
	r.Put("/{contactID}", h.updateContact)
	r.Delete("/{contactID}", h.deleteContact)
}

func (h *ContactHandler) listEnabledContacts(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, true)
}

func (h *ContactHandler) listAllContacts(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, false)
}

func (h *ContactHandler) respondList(w http.ResponseWriter, r *http.Request, enabledOnly bool) {
	contacts, err := h.contactService.ListContacts(r.Context(), enabledOnly)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	if contacts == nil {
		contacts = []model.EmergencyContact{}
	}
	common.RespondWithJSON(w, http.StatusOK, contacts)
}

func (h *ContactHandler) createContact(w http.ResponseWriter, r *http.Request) {
	var req service.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	contact, err := h.contactService.CreateContact(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, contact)
}

func (h *ContactHandler) updateContact(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactID")

	var req service.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	contact, err := h.contactService.UpdateContact(r.Context(), contactID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) deleteContact(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactID")

	if err := h.contactService.DeleteContact(r.Context(), contactID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Contact deleted"})
}
