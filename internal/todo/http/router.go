package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/KarimovRD/fullstack-todo/backend/internal/common/config"
	commonhttp "github.com/KarimovRD/fullstack-todo/backend/internal/common/http"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/logger"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/tokenverify"
	"github.com/KarimovRD/fullstack-todo/backend/internal/todo/domain"
	"github.com/KarimovRD/fullstack-todo/backend/internal/todo/service"
)

type todoRequest struct {
	Title   string     `json:"title" validate:"required"`
	Done    bool       `json:"done"`
	DueDate *time.Time `json:"due_date"`
}

type todoResponse struct {
	ID      int        `json:"id"`
	Title   string     `json:"title"`
	Done    bool       `json:"done"`
	DueDate *time.Time `json:"due_date"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	todos *service.TodoService
	cfg   config.TodoConfig
	log   *logger.Logger
}

// NewHandler mounts the todo routes. The caller wraps the returned handler
// with the auth guard; every operation here assumes a bound identity.
func NewHandler(todos *service.TodoService, cfg config.TodoConfig, log *logger.Logger) http.Handler {
	h := &Handler{todos: todos, cfg: cfg, log: log}
	mux := http.NewServeMux()
	mux.HandleFunc("/todos", commonhttp.WithTimeout(cfg.RequestTimeout)(h.collection))
	mux.HandleFunc("/todos/", commonhttp.WithTimeout(cfg.RequestTimeout)(h.item))
	return mux
}

func (h *Handler) collection(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, r, owner)
	case http.MethodPost:
		h.create(w, r, owner)
	default:
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "Method not allowed", "")
	}
}

func (h *Handler) item(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, ok := parseItemID(r.URL.Path)
	if !ok {
		// A non-numeric or nested path can never name an item.
		commonhttp.HandleError(w, r, service.ErrTodoNotFound, h.log)
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.update(w, r, owner, id)
	case http.MethodDelete:
		h.delete(w, r, owner, id)
	default:
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "Method not allowed", "")
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, owner string) {
	var req todoRequest
	if err := commonhttp.DecodeValid(r, &req); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	item, err := h.todos.Create(r.Context(), owner, service.CreateInput{
		Title:   req.Title,
		Done:    req.Done,
		DueDate: req.DueDate,
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toResponse(item))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, owner string) {
	items, err := h.todos.List(r.Context(), owner)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	resp := make([]todoResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResponse(item))
	}

	commonhttp.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, owner string, id int) {
	var req todoRequest
	if err := commonhttp.DecodeValid(r, &req); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	item, err := h.todos.Update(r.Context(), owner, id, service.UpdateInput{
		Title:   req.Title,
		Done:    req.Done,
		DueDate: req.DueDate,
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toResponse(item))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, owner string, id int) {
	if err := h.todos.Delete(r.Context(), owner, id); err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, messageResponse{Message: "Todo deleted"})
}

func requireIdentity(w http.ResponseWriter, r *http.Request) (string, bool) {
	identity, ok := tokenverify.FromContext(r.Context())
	if !ok {
		commonhttp.WriteErrorEnvelope(w, http.StatusUnauthorized, commonhttp.CodeInvalidToken, "Invalid token", "")
		return "", false
	}
	return identity.Username, true
}

func parseItemID(path string) (int, bool) {
	raw := strings.TrimPrefix(path, "/todos/")
	if raw == "" || strings.Contains(raw, "/") {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func toResponse(item domain.Item) todoResponse {
	return todoResponse{
		ID:      item.ID,
		Title:   item.Title,
		Done:    item.Done,
		DueDate: item.DueDate,
	}
}
