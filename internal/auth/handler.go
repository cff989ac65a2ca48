package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/harisfebriyan12/kehadiran1/internal/core/role"
	"github.com/harisfebriyan12/kehadiran1/internal/transport"
	"github.com/harisfebriyan12/kehadiran1/pkg/logger"
)

// ServiceAPI is what the HTTP layer needs from the auth service.
type ServiceAPI interface {
	Authenticate(ctx context.Context, dto LoginDTO) (AuthTokens, error)
	Register(ctx context.Context, dto RegisterDTO) (AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (AuthTokens, error)
	ValidateAccessToken(ctx context.Context, tokenString string) (*Claims, error)
	SignOut(ctx context.Context, tokenString string) error
}

// RoleResolver maps a user id to its role. Resolution failures surface as
// role.Unknown, never as an error.
type RoleResolver interface {
	ResolveRole(ctx context.Context, userID string) role.Role
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Roles   RoleResolver
}

func NewHandler(svc ServiceAPI, roles RoleResolver) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
		Roles:       roles,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.Service.Authenticate(r.Context(), dto)
	if err != nil {
		h.Logger.Error("authentication failed", "error", err, "email", dto.Email)
		h.writeAuthError(w, err)
		return
	}

	h.setSessionCookie(w, tokens.AccessToken)
	h.WriteJSON(w, http.StatusOK, tokens)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.Service.Register(r.Context(), dto)
	if err != nil {
		h.Logger.Error("registration failed", "error", err, "email", dto.Email)

		switch {
		case err == ErrEmailTaken:
			h.WriteError(w, http.StatusConflict, "email already registered")
		default:
			if _, ok := err.(ValidationError); ok {
				h.WriteError(w, http.StatusBadRequest, err.Error())
			} else {
				h.WriteError(w, http.StatusInternalServerError, "internal server error")
			}
		}
		return
	}

	h.setSessionCookie(w, tokens.AccessToken)
	h.WriteJSON(w, http.StatusCreated, tokens)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var dto RefreshTokenDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens, err := h.Service.RefreshTokens(r.Context(), dto.RefreshToken)
	if err != nil {
		h.Logger.Error("token refresh failed", "error", err)

		switch err {
		case ErrInvalidToken, ErrTokenExpired:
			h.WriteError(w, http.StatusUnauthorized, "invalid refresh token")
		case ErrUserInactive:
			h.WriteError(w, http.StatusUnauthorized, "user is inactive")
		default:
			h.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.setSessionCookie(w, tokens.AccessToken)
	h.WriteJSON(w, http.StatusOK, tokens)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.bearerOrCookie(r)
	if token == "" {
		h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
		return
	}

	if err := h.Service.SignOut(r.Context(), token); err != nil {
		h.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// AuthMiddleware authenticates a request from the Authorization header or the
// session cookie, resolves the caller's role and stores the principal in the
// request context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.bearerOrCookie(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateAccessToken(r.Context(), token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		user := &User{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  h.Roles.ResolveRole(r.Context(), claims.UserID),
		}

		ctx := context.WithValue(r.Context(), ContextUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin allows only principals that resolved to the admin role. An
// unknown role is treated like an employee and denied.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}
		if !user.Role.IsAdmin() {
			h.WriteError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type ctxKey string

// ContextUserKey holds the authenticated principal for the request.
const ContextUserKey ctxKey = "user"

// UserFromContext extracts the authenticated principal, if any.
func UserFromContext(ctx context.Context) *User {
	user, _ := ctx.Value(ContextUserKey).(*User)
	return user
}

func (h *Handler) bearerOrCookie(r *http.Request) string {
	if token := h.ExtractTokenFromHeader(r); token != "" {
		return token
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func (h *Handler) writeAuthError(w http.ResponseWriter, err error) {
	switch err {
	case ErrInvalidCredentials:
		h.WriteError(w, http.StatusUnauthorized, "invalid credentials")
	case ErrUserInactive:
		h.WriteError(w, http.StatusUnauthorized, "user is inactive")
	default:
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
		} else {
			h.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
	}
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, accessToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
