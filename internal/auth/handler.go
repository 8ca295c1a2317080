package auth

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/permit-management/internal/transport"
	"github.com/frahmantamala/permit-management/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

// Register handles POST /create-user.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	registered, err := h.Service.Register(dto)
	if err != nil {
		h.Logger.Error("registration failed", "error", err, "email", dto.EmailAddress())

		switch {
		case err == ErrEmailTaken:
			h.WriteError(w, http.StatusConflict, "email is already registered")
		default:
			if _, ok := err.(ValidationError); ok {
				h.WriteError(w, http.StatusBadRequest, err.Error())
			} else {
				h.WriteError(w, http.StatusInternalServerError, "internal server error")
			}
		}
		return
	}

	h.Logger.Info("user registered", "user_id", registered.ID, "employee_id", registered.EmployeeID)
	h.WriteJSON(w, http.StatusCreated, registered)
}

// Login handles POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Error("authentication failed", "error", err)

		switch err {
		case ErrUserNotFound:
			h.WriteError(w, http.StatusNotFound, "user not found")
		case ErrInvalidCredentials:
			h.WriteError(w, http.StatusUnauthorized, "incorrect password")
		default:
			if _, ok := err.(ValidationError); ok {
				h.WriteError(w, http.StatusBadRequest, err.Error())
			} else {
				h.WriteError(w, http.StatusInternalServerError, "internal server error")
			}
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

// AuthMiddleware validates the bearer token and loads the principal into the context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			h.Logger.Warn("malformed token subject", "subject", claims.Subject)
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		u, err := h.Service.GetUser(userID)
		if err != nil {
			h.Logger.Warn("token principal not found", "user_id", userID, "error", err)
			h.WriteError(w, http.StatusUnauthorized, "user not found")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), u)))
	})
}

// RequireRole guards a route group behind a role. It must run after AuthMiddleware.
func (h *Handler) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok || u == nil {
				h.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if u.Role != role {
				h.Logger.Warn("access denied", "user_id", u.ID, "role", u.Role, "required_role", role)
				h.WriteError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
