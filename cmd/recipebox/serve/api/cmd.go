package api

import (
	"github.com/kitchenlab/recipebox/cmd/recipebox/serve/api/private"
	"github.com/kitchenlab/recipebox/cmd/recipebox/serve/api/public"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Commands to expose the catalog as an api (either public or private)",
		Subcommands: []*cli.Command{
			public.Cmd(),
			private.Cmd(),
		},
	}
}
