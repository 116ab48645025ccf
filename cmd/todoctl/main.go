package main

import (
	"context"
	"os"
	"time"

	"github.com/todolists/todolists/internal/cli"
	"github.com/todolists/todolists/internal/config"
	"github.com/todolists/todolists/internal/database"
	"github.com/todolists/todolists/internal/todo/repository"
	"github.com/todolists/todolists/internal/todo/service"
	"github.com/todolists/todolists/pkg/logger"
)

func main() {
	logger.SetService("todoctl")
	logger.SetOutput(os.Stderr)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.MongoDB.URI == "" {
		logger.Fatalf("MONGODB_URI is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	itemsCol, listsCol := database.Collections(client, cfg.MongoDB)
	lists := repository.NewMongoListRepo(listsCol)
	code := cli.Run(ctx, os.Args[1:], cli.Env{
		Lists:   service.NewRouter(service.NewItemService(repository.NewMongoItemRepo(itemsCol)), service.NewListService(lists)),
		Indexes: lists,
		Out:     os.Stdout,
		Err:     os.Stderr,
	})
	if code != 0 {
		_ = client.Disconnect(context.Background())
		cancel()
		os.Exit(code)
	}
}
