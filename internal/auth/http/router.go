package http

import (
	"fmt"
	"net/http"

	"github.com/KarimovRD/fullstack-todo/backend/internal/auth/service"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/config"
	commonhttp "github.com/KarimovRD/fullstack-todo/backend/internal/common/http"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/logger"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/tokenverify"
)

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	auth *service.AuthService
	cfg  config.TodoConfig
	log  *logger.Logger
}

// NewHandler mounts the public routes: the root banner plus registration
// and login.
func NewHandler(auth *service.AuthService, cfg config.TodoConfig, log *logger.Logger) http.Handler {
	h := &Handler{auth: auth, cfg: cfg, log: log}
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.home)
	mux.HandleFunc("/register", commonhttp.RequireMethod(http.MethodPost)(commonhttp.WithTimeout(cfg.RequestTimeout)(h.register)))
	mux.HandleFunc("/login", commonhttp.RequireMethod(http.MethodPost)(commonhttp.WithTimeout(cfg.RequestTimeout)(h.login)))
	return mux
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	// "/" is the mux catch-all; anything unrouted lands here.
	if r.URL.Path != "/" {
		commonhttp.WriteErrorEnvelope(w, http.StatusNotFound, commonhttp.CodeNotFound, "Not Found", "")
		return
	}
	if r.Method != http.MethodGet {
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "Method not allowed", "")
		return
	}
	commonhttp.WriteJSON(w, http.StatusOK, messageResponse{Message: "Hello, backend is running!"})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := commonhttp.DecodeValid(r, &req); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	if err := h.auth.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	}); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, messageResponse{Message: "User registered successfully"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := commonhttp.DecodeValid(r, &req); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	token, err := h.auth.Login(r.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// ProtectedHandler answers the standalone guarded route; the guard
// middleware has already bound the identity.
func ProtectedHandler(log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "Method not allowed", "")
			return
		}

		identity, ok := tokenverify.FromContext(r.Context())
		if !ok {
			commonhttp.WriteErrorEnvelope(w, http.StatusUnauthorized, commonhttp.CodeInvalidToken, "Invalid token", "")
			return
		}

		commonhttp.WriteJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("Hello %s, you have accessed a protected route!", identity.Username),
		})
	}
}
