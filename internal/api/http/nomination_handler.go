package http

import (
	"net/http"

	"clubelect-backend/internal/service"
)

type NominationHandler struct {
	nomSvc service.NominationService
}

func NewNominationHandler(nomSvc service.NominationService) *NominationHandler {
	return &NominationHandler{nomSvc: nomSvc}
}

func (h *NominationHandler) Open(w http.ResponseWriter, r *http.Request) {
	var in service.OpenNominationInput
	if err := ParseJSONBody(r, &in); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	nom, err := h.nomSvc.Open(r.Context(), PrincipalFrom(r.Context()), in)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusCreated, nom)
}

func (h *NominationHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		ErrorResponse(w, http.StatusBadRequest, "invalid nomination id")
		return
	}
	nom, err := h.nomSvc.Close(r.Context(), PrincipalFrom(r.Context()), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, nom)
}

func (h *NominationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		ErrorResponse(w, http.StatusBadRequest, "invalid nomination id")
		return
	}
	nom, err := h.nomSvc.Get(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, nom)
}

func (h *NominationHandler) ListByClub(w http.ResponseWriter, r *http.Request) {
	clubID, ok := pathID(r, "id")
	if !ok {
		ErrorResponse(w, http.StatusBadRequest, "invalid club id")
		return
	}
	noms, err := h.nomSvc.ListByClub(r.Context(), clubID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, noms)
}
