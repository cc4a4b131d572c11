package http

import (
	"net/http"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/service"
)

type ApplicationHandler struct {
	appSvc service.ApplicationService
}

func NewApplicationHandler(appSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appSvc: appSvc}
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var in service.ApplyInput
	if err := ParseJSONBody(r, &in); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	app, err := h.appSvc.Apply(r.Context(), PrincipalFrom(r.Context()), in)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ApplicationID int32                 `json:"application_id"`
		Decision      domain.ReviewDecision `json:"decision"`
	}
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	app, err := h.appSvc.Review(r.Context(), PrincipalFrom(r.Context()), req.ApplicationID, req.Decision)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, app)
}

func (h *ApplicationHandler) ListByNomination(w http.ResponseWriter, r *http.Request) {
	nominationID, ok := pathID(r, "id")
	if !ok {
		ErrorResponse(w, http.StatusBadRequest, "invalid nomination id")
		return
	}
	apps, err := h.appSvc.ListByNomination(r.Context(), PrincipalFrom(r.Context()), nominationID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	apps, err := h.appSvc.MyApplications(r.Context(), PrincipalFrom(r.Context()))
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, apps)
}
