package private

import (
	"github.com/kitchenlab/recipebox/auth"
	authapi "github.com/kitchenlab/recipebox/auth/api"
	"github.com/kitchenlab/recipebox/catalog"
	capi "github.com/kitchenlab/recipebox/catalog/api"
	"github.com/kitchenlab/recipebox/internal/cmdflags"
	"github.com/kitchenlab/recipebox/internal/httpserver"
	"github.com/kitchenlab/recipebox/internal/middleware"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	bindAddr := "localhost:7009"
	catalogPath := "recipebox.db"
	var secretEnvVar string
	return &cli.Command{
		Name:  "private",
		Usage: "Start the private recipebox api (catalog administration, requires a valid access token)",
		Flags: []cli.Flag{
			cmdflags.Bind(&bindAddr),
			cmdflags.Catalog(&catalogPath),
			cmdflags.SecretEnvVar(&secretEnvVar),
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
			// tokens are minted by the public instance, only the
			// signature and expiry can be checked here
			realm := authapi.NewRealm(nil, secret)
			handler, err := capi.AsAdminHandler(ctx.Context, store, realm)
			if err != nil {
				return err
			}
			return httpserver.Serve(ctx.Context, bindAddr, middleware.AccessLog(handler))
		},
	}
}
