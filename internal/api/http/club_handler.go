package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"clubelect-backend/internal/service"
)

type ClubHandler struct {
	clubSvc service.ClubService
}

func NewClubHandler(clubSvc service.ClubService) *ClubHandler {
	return &ClubHandler{clubSvc: clubSvc}
}

func pathID(r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	club, err := h.clubSvc.CreateClub(r.Context(), PrincipalFrom(r.Context()), req.Name, req.Description)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusCreated, club)
}

func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		ErrorResponse(w, http.StatusBadRequest, "invalid club id")
		return
	}
	club, err := h.clubSvc.GetClub(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, club)
}

func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubSvc.ListClubs(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, clubs)
}

func (h *ClubHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClubID int32 `json:"club_id"`
		UserID int32 `json:"user_id"`
	}
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := h.clubSvc.JoinClub(r.Context(), PrincipalFrom(r.Context()), req.ClubID, req.UserID); err != nil {
		WriteDomainError(w, err)
		return
	}
	JSONResponse(w, http.StatusOK, map[string]string{"status": "joined"})
}
