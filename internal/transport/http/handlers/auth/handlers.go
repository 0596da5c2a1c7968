package authhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"pulse/internal/domain/auth"
	"pulse/internal/platform/querier"
	"pulse/internal/platform/requestctx"
	"pulse/internal/transport/http/api"
	"pulse/internal/transport/http/middleware"
)

const tokenTTL = 8 * time.Hour

type Handler struct {
	DB     querier.Querier
	Secret string
}

func NewHandler(db querier.Querier, secret string) *Handler {
	return &Handler{DB: db, Secret: secret}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	var id, email, role, hash string
	err := h.DB.QueryRow(r.Context(), `
    SELECT id, email, role, password_hash FROM users WHERE email = $1
  `, payload.Email).Scan(&id, &email, &role, &hash)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestctx.GetRequestID(r.Context()))
		return
	}

	if err := auth.CheckPassword(hash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestctx.GetRequestID(r.Context()))
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{UserID: id, Email: email, Role: role}, tokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"token": token,
		"user":  map[string]string{"id": id, "email": email, "role": role},
	}, requestctx.GetRequestID(r.Context()))
}

// HandleLogout is stateless; tokens simply expire. The endpoint exists so
// clients have a uniform place to end a session.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]string{"status": "logged_out"}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": user.UserID, "email": user.Email, "role": user.Role}, requestctx.GetRequestID(r.Context()))
}
