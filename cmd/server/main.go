package main

import (
	"context"
	"log"

	"github.com/Shivam7262/Writely/internal/server"
	"github.com/Shivam7262/Writely/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	app.Run(context.Background())
}
