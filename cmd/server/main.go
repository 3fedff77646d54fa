package main

import (
	"context"
	"log"

	"github.com/leoAraujo20/lu-estilo-api/internal/server"
	"github.com/leoAraujo20/lu-estilo-api/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
