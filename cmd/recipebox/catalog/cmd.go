package catalog

import (
	"fmt"
	"os"

	"github.com/kitchenlab/recipebox/catalog"
	"github.com/kitchenlab/recipebox/catalog/importer"
	"github.com/kitchenlab/recipebox/internal/cmdflags"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Commands to create and populate a recipe catalog",
		Subcommands: []*cli.Command{
			initCmd(),
			importCmd(),
		},
	}
}

func initCmd() *cli.Command {
	catalogPath := "recipebox.db"
	return &cli.Command{
		Name:  "init",
		Usage: "Create the catalog database and its schema",
		Flags: []cli.Flag{
			cmdflags.Catalog(&catalogPath),
		},
		Action: func(ctx *cli.Context) error {
			store, err := catalog.Open(ctx.Context, catalogPath, true)
			if err != nil {
				return err
			}
			return store.Close()
		},
	}
}

func importCmd() *cli.Command {
	catalogPath := "recipebox.db"
	var input string
	return &cli.Command{
		Name:  "import",
		Usage: "Import recipes from a CSV file into the catalog",
		Flags: []cli.Flag{
			cmdflags.Catalog(&catalogPath),
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Path to a CSV file with recipe rows",
				Required:    true,
				Destination: &input,
			},
		},
		Action: func(ctx *cli.Context) error {
			store, err := catalog.Open(ctx.Context, catalogPath, true)
			if err != nil {
				return err
			}
			defer store.Close()
			file, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("unable to open %v, cause %w", input, err)
			}
			defer file.Close()
			count, err := importer.Recipes(ctx.Context, store, file)
			if err != nil {
				return err
			}
			fmt.Fprintf(ctx.App.Writer, "imported %v recipes\n", count)
			return nil
		},
	}
}
