package public

import (
	"time"

	"github.com/kitchenlab/recipebox/auth"
	"github.com/kitchenlab/recipebox/catalog"
	capi "github.com/kitchenlab/recipebox/catalog/api"
	"github.com/kitchenlab/recipebox/internal/cmdflags"
	"github.com/kitchenlab/recipebox/internal/httpserver"
	"github.com/kitchenlab/recipebox/internal/middleware"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	bindAddr := "localhost:7008"
	catalogPath := "recipebox.db"
	var secretEnvVar string
	tokenValidity := time.Hour
	return &cli.Command{
		Name:  "public",
		Usage: "Start the public recipebox api (recipe reads, registration and login)",
		Flags: []cli.Flag{
			cmdflags.Bind(&bindAddr),
			cmdflags.Catalog(&catalogPath),
			cmdflags.SecretEnvVar(&secretEnvVar),
			&cli.DurationFlag{
				Name:        "token-validity",
				Usage:       "How long issued access tokens remain valid",
				Value:       tokenValidity,
				Destination: &tokenValidity,
			},
		},
		Action: func(ctx *cli.Context) error {
			secret, err := auth.SecretFromEnv(secretEnvVar, nil, nil)
			if err != nil {
				return err
			}
			store, err := catalog.Open(ctx.Context, catalogPath, true)
			if err != nil {
				return err
			}
			defer store.Close()
			authsvc := auth.NewService(store, auth.InMemoryTokenStore(tokenValidity), secret, tokenValidity)
			handler, err := capi.AsHandler(ctx.Context, store, authsvc)
			if err != nil {
				return err
			}
			return httpserver.Serve(ctx.Context, bindAddr, middleware.AccessLog(handler))
		},
	}
}
