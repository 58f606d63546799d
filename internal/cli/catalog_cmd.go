package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the ingredient and recipe catalog",
	}

	cmd.AddCommand(
		newCatalogImportCmd(app),
		newCatalogListCmd(app),
	)

	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored catalog from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Catalog.ImportFromFile(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(formatter.StyleGreen.Render(
				fmt.Sprintf("Imported %d ingredients and %d recipes.", resp.Ingredients, resp.Recipes)))
			return nil
		},
	}
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored ingredients and recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.LoadCatalog(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatCatalog(cat.Ingredients(), cat.Recipes()))
			return nil
		},
	}
}
