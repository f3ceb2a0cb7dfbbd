package serve

import (
	"github.com/kitchenlab/recipebox/cmd/recipebox/serve/api"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Root command to start the recipebox services",
		Subcommands: []*cli.Command{
			api.Cmd(),
		},
	}
}
