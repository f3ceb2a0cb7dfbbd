package cmdflags

import (
	"github.com/kitchenlab/recipebox/auth"
	"github.com/urfave/cli/v2"
)

func Catalog(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "catalog",
		Aliases:     []string{"c"},
		Usage:       "Path to the recipe catalog database",
		Destination: out,
		Value:       *out,
	}
}

func Bind(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "bind",
		Usage:       "Address to bind and export the catalog",
		Destination: out,
		Value:       *out,
	}
}

func SecretEnvVar(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = auth.SecretEnvVar
	}
	return &cli.StringFlag{
		Name:        "secret-envvar-name",
		Usage:       "Name of the environment variable that holds the token-signing secret. The secret itself should not be passed as an argument",
		Value:       *out,
		Destination: out,
	}
}
