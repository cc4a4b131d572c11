package http

import (
	"net/http"

	"clubelect-backend/internal/service"
)

type UserHandler struct {
	userSvc service.UserService
	noteSvc service.NotificationService
}

func NewUserHandler(userSvc service.UserService, noteSvc service.NotificationService) *UserHandler {
	return &UserHandler{userSvc: userSvc, noteSvc: noteSvc}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, clubs, err := h.userSvc.GetProfile(r.Context(), PrincipalFrom(r.Context()))
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	user.Clubs = clubs
	JSONResponse(w, http.StatusOK, user)
}

func (h *UserHandler) Promote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID int32 `json:"user_id"`
	}
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	user, err := h.userSvc.PromoteToCandidate(r.Context(), PrincipalFrom(r.Context()), req.UserID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, user)
}

func (h *UserHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)
	notes, total, err := h.noteSvc.GetNotifications(r.Context(), PrincipalFrom(r.Context()), page, pageSize)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, map[string]any{
		"notifications": notes,
		"total":         total,
	})
}

func (h *UserHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		ErrorResponse(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := h.noteSvc.MarkAsRead(r.Context(), PrincipalFrom(r.Context()), id); err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, map[string]string{"status": "read"})
}
