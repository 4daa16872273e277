package main

import (
	"fmt"
	"os"

	"github.com/KarimovRD/fullstack-todo/backend/internal/app"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/config"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/logger"
	srv "github.com/KarimovRD/fullstack-todo/backend/internal/common/server"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "todo", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg := config.LoadTodoConfig()

	application := app.New(cfg, log)

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, application.Handler)

	srv.StartWithGracefulShutdown(server, log, "todo")
}
