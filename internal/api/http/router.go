package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"clubelect-backend/internal/security"
	"clubelect-backend/internal/service"
)

func queryInt32(r *http.Request, name string, fallback int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 1 {
		return fallback
	}
	return int32(v)
}

// NewRouter wires every handler behind the logging and auth
// middleware. Paths must stay in sync with config.RouteSecurityConfig.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	userSvc service.UserService,
	clubSvc service.ClubService,
	nomSvc service.NominationService,
	appSvc service.ApplicationService,
	electionSvc service.ElectionService,
	noteSvc service.NotificationService,
) http.Handler {
	authHandler := NewAuthHandler(authSvc)
	userHandler := NewUserHandler(userSvc, noteSvc)
	clubHandler := NewClubHandler(clubSvc)
	nomHandler := NewNominationHandler(nomSvc)
	appHandler := NewApplicationHandler(appSvc)
	electionHandler := NewElectionHandler(electionSvc)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	api.HandleFunc("/me", userHandler.Me).Methods(http.MethodGet)
	api.HandleFunc("/users/promote", userHandler.Promote).Methods(http.MethodPost)

	api.HandleFunc("/clubs", clubHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/clubs/create", clubHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/clubs/join", clubHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/clubs/{id:[0-9]+}", clubHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/clubs/{id:[0-9]+}/nominations", nomHandler.ListByClub).Methods(http.MethodGet)
	api.HandleFunc("/clubs/{id:[0-9]+}/events", electionHandler.ListByClub).Methods(http.MethodGet)

	api.HandleFunc("/nominations/open", nomHandler.Open).Methods(http.MethodPost)
	api.HandleFunc("/nominations/close/{id:[0-9]+}", nomHandler.Close).Methods(http.MethodPost)
	api.HandleFunc("/nominations/{id:[0-9]+}", nomHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/nominations/{id:[0-9]+}/applications", appHandler.ListByNomination).Methods(http.MethodGet)

	api.HandleFunc("/applications", appHandler.Apply).Methods(http.MethodPost)
	api.HandleFunc("/applications/mine", appHandler.Mine).Methods(http.MethodGet)
	api.HandleFunc("/applications/review", appHandler.Review).Methods(http.MethodPost)

	api.HandleFunc("/events/create", electionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/events/start/{id:[0-9]+}", electionHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/events/complete/{id:[0-9]+}", electionHandler.Complete).Methods(http.MethodPost)
	api.HandleFunc("/events/cancel/{id:[0-9]+}", electionHandler.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/events/{id:[0-9]+}", electionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/events/{id:[0-9]+}/results", electionHandler.Results).Methods(http.MethodGet)

	api.HandleFunc("/votes", electionHandler.Vote).Methods(http.MethodPost)

	api.HandleFunc("/notifications", userHandler.Notifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/read/{id:[0-9]+}", userHandler.MarkNotificationRead).Methods(http.MethodPost)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	var handler http.Handler = r
	handler = AuthMiddleware(tokens)(handler)
	handler = LoggingMiddleware(handler)
	return handler
}
