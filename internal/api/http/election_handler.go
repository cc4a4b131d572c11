package http

import (
	"context"
	"net/http"

	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/security"
	"clubelect-backend/internal/service"
)

type ElectionHandler struct {
	electionSvc service.ElectionService
}

func NewElectionHandler(electionSvc service.ElectionService) *ElectionHandler {
	return &ElectionHandler{electionSvc: electionSvc}
}

func (h *ElectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateEventInput
	if err := ParseJSONBody(r, &in); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	event, err := h.electionSvc.CreateEvent(r.Context(), PrincipalFrom(r.Context()), in)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusCreated, event)
}

func (h *ElectionHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.electionSvc.StartEvent)
}

func (h *ElectionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.electionSvc.CompleteEvent)
}

func (h *ElectionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.electionSvc.CancelEvent)
}

func (h *ElectionHandler) transition(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, p *security.Principal, id int32) (*domain.Event, error)) {
	id, ok := pathID(r, "id")
	if !ok {
		ErrorResponse(w, http.StatusBadRequest, "invalid event id")
		return
	}
	event, err := op(r.Context(), PrincipalFrom(r.Context()), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, event)
}

func (h *ElectionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var in service.CastVoteInput
	if err := ParseJSONBody(r, &in); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	vote, err := h.electionSvc.CastVote(r.Context(), PrincipalFrom(r.Context()), in)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusCreated, vote)
}

func (h *ElectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		ErrorResponse(w, http.StatusBadRequest, "invalid event id")
		return
	}
	event, err := h.electionSvc.GetEvent(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, event)
}

func (h *ElectionHandler) Results(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		ErrorResponse(w, http.StatusBadRequest, "invalid event id")
		return
	}
	tally, err := h.electionSvc.Results(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, tally)
}

func (h *ElectionHandler) ListByClub(w http.ResponseWriter, r *http.Request) {
	clubID, ok := pathID(r, "id")
	if !ok {
		ErrorResponse(w, http.StatusBadRequest, "invalid club id")
		return
	}
	events, err := h.electionSvc.ListByClub(r.Context(), clubID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, events)
}
