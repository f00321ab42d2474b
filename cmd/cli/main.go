package main

import (
	"context"
	"log"

	"github.com/wolfread/wolfread-go/internal/cli"
	"github.com/wolfread/wolfread-go/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
