package main

import (
	"context"
	"log"
	"os"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/buildinfo"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/cli"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/client/config"
	"github.com/Sdizo-sdizo/i-Stokvel/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
