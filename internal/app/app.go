package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/KarimovRD/fullstack-todo/backend/internal/auth/http"
	authrepo "github.com/KarimovRD/fullstack-todo/backend/internal/auth/repository"
	authservice "github.com/KarimovRD/fullstack-todo/backend/internal/auth/service"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/clock"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/config"
	commonhttp "github.com/KarimovRD/fullstack-todo/backend/internal/common/http"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/logger"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/tokenverify"
	todohttp "github.com/KarimovRD/fullstack-todo/backend/internal/todo/http"
	todorepo "github.com/KarimovRD/fullstack-todo/backend/internal/todo/repository"
	todoservice "github.com/KarimovRD/fullstack-todo/backend/internal/todo/service"
	userrepo "github.com/KarimovRD/fullstack-todo/backend/internal/user/repository"
)

// App owns the process-wide state: the in-memory stores are constructed
// once here and injected into the services, so tests get isolation by
// building a fresh App.
type App struct {
	Config  config.TodoConfig
	Log     *logger.Logger
	Auth    *authservice.AuthService
	Todos   *todoservice.TodoService
	Handler http.Handler
}

func New(cfg config.TodoConfig, log *logger.Logger) *App {
	clk := clock.NewRealClock()

	users := userrepo.NewMemoryRepository()
	tokens := authrepo.NewMemoryTokenRepository()
	todos := todorepo.NewMemoryRepository()

	auth := authservice.NewAuthService(users, tokens, authservice.NewTokenIssuer(), clk, log)
	todoSvc := todoservice.NewTodoService(todos, clk, log)

	guard := tokenverify.Middleware(auth, log)

	todoHandler := guard(todohttp.NewHandler(todoSvc, cfg, log))

	mux := http.NewServeMux()
	mux.Handle("/", authhttp.NewHandler(auth, cfg, log))
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/protected", guard(authhttp.ProtectedHandler(log)))
	mux.Handle("/todos", todoHandler)
	mux.Handle("/todos/", todoHandler)

	rateLimiter := commonhttp.NewStrictRateLimiter()
	baseHandler := commonhttp.BuildBaseHandler(log, mux)

	rateLimited := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if path == "/health" || path == "/metrics" {
			baseHandler.ServeHTTP(w, r)
			return
		}
		rateLimiter.MiddlewareForPath(path)(baseHandler).ServeHTTP(w, r)
	})

	handler := commonhttp.CORSMiddleware(cfg.CORSOrigin)(rateLimited)

	return &App{
		Config:  cfg,
		Log:     log,
		Auth:    auth,
		Todos:   todoSvc,
		Handler: handler,
	}
}
