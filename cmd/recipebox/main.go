package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/kitchenlab/recipebox/cmd/recipebox/catalog"
	"github.com/kitchenlab/recipebox/cmd/recipebox/serve"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "recipebox",
		Usage: "Keep and share your recipe catalog",
		Commands: []*cli.Command{
			catalog.Cmd(),
			serve.Cmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Application failed")
	}
}
