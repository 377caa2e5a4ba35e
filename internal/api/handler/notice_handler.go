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

type NoticeHandler struct {
	noticeService *service.NoticeService
}

func NewNoticeHandler(ns *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: ns}
}

// RegisterPublicRoutes serves the notice board shown on the marketing site.
func (h *NoticeHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.listActiveNotices)
	r.Get("/{noticeSlug}", h.getNotice)
}

// RegisterAdminRoutes serves notice management; mounted behind
// Authenticator and AdminOnly.
func (h *NoticeHandler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/", h.listAllNotices)
	r.Post("/", h.createNotice)
	r.Put("/{noticeID}", h.updateNotice)
	r.Delete("/{noticeID}", h.deleteNotice)
}

func (h *NoticeHandler) listActiveNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := h.noticeService.ListActiveNotices(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	if notices == nil {
		notices = []model.Notice{}
	}
	common.RespondWithJSON(w, http.StatusOK, notices)
}

func (h *NoticeHandler) getNotice(w http.ResponseWriter, r *http.Request) {
	noticeSlug := chi.URLParam(r, "noticeSlug")

	notice, err := h.noticeService.GetNotice(r.Context(), noticeSlug)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, notice)
}

func (h *NoticeHandler) listAllNotices(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)

	notices, total, err := h.noticeService.ListAllNotices(r.Context(), page, pageSize)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	type PaginatedNoticesResponse struct {
		Notices  []model.Notice `json:"notices"`
		Total    int            `json:"total"`
		Page     int            `json:"page"`
		PageSize int            `json:"page_size"`
	}
	if notices == nil {
		notices = []model.Notice{}
	}
	common.RespondWithJSON(w, http.StatusOK, PaginatedNoticesResponse{
		Notices:  notices,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *NoticeHandler) createNotice(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	notice, err := h.noticeService.CreateNotice(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, notice)
}

func (h *NoticeHandler) updateNotice(w http.ResponseWriter, r *http.Request) {
	noticeID := chi.URLParam(r, "noticeID")

	var req service.UpdateNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	notice, err := h.noticeService.UpdateNotice(r.Context(), noticeID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, notice)
}

func (h *NoticeHandler) deleteNotice(w http.ResponseWriter, r *http.Request) {
	noticeID := chi.URLParam(r, "noticeID")

	if err := h.noticeService.DeleteNotice(r.Context(), noticeID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Notice deleted"})
}
