package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"clubelect-backend/internal/config"
	"clubelect-backend/internal/domain"
	"clubelect-backend/internal/logger"
	"clubelect-backend/internal/security"
)

type contextKey string

const principalKey contextKey = "principal"

// PrincipalFrom returns the authenticated principal attached by the
// auth middleware, or nil for anonymous requests.
func PrincipalFrom(ctx context.Context) *security.Principal {
	p, _ := ctx.Value(principalKey).(*security.Principal)
	return p
}

// AuthMiddleware validates bearer tokens and enforces the static route
// security table. A valid token always attaches a principal, even on
// public routes; protected routes without one get a 401 carrying the
// requested path so the client can come back after login.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var principal *security.Principal
			if token := extractBearerToken(r); token != "" {
				claims, err := tokens.ValidateToken(token)
				if err != nil {
					ErrorResponse(w, http.StatusUnauthorized, "invalid token")
					return
				}
				principal = claims.Principal()
			}

			if required, matched := config.RequiredRoleFor(r.URL.Path); matched {
				if principal == nil {
					JSONResponse(w, http.StatusUnauthorized, map[string]string{
						"error":       http.StatusText(http.StatusUnauthorized),
						"message":     "authentication required",
						"redirect_to": r.URL.RequestURI(),
					})
					return
				}
				// USER is the floor: CANDIDATE and ADMIN imply it for
				// route matching. Services still run their own gate.
				if !roleSatisfies(principal, required) {
					ErrorResponse(w, http.StatusForbidden, "insufficient role")
					return
				}
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func roleSatisfies(p *security.Principal, required domain.Role) bool {
	if required == domain.RoleUser {
		return p.HasRole(domain.RoleUser) || p.HasRole(domain.RoleCandidate) || p.HasRole(domain.RoleAdmin)
	}
	return p.HasRole(required)
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:]
	}
	return header
}

// LoggingMiddleware logs each request with its duration
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes a JSON error response
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, map[string]string{
		"error":   http.StatusText(statusCode),
		"message": message,
	})
}

// WriteDomainError maps the error taxonomy onto HTTP status codes.
func WriteDomainError(w http.ResponseWriter, err error) {
	var status int
	switch domain.KindOf(err) {
	case domain.KindUnauthenticated:
		status = http.StatusUnauthorized
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindInvalidInput:
		status = http.StatusBadRequest
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindPreconditionFailed:
		status = http.StatusUnprocessableEntity
	default:
		logger.Error("internal error", "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "internal error")
		return
	}
	ErrorResponse(w, status, err.Error())
}

// ParseJSONBody parses the request body into the given struct
func ParseJSONBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
