package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mise/internal/cli/formatter"
	"github.com/alexanderramin/mise/internal/contract"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPrepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prep",
		Short: "Build and walk through batch-prep manifests",
	}

	cmd.AddCommand(
		newPrepBuildCmd(app),
		newPrepStepsCmd(app),
		newPrepCookCmd(app),
	)

	return cmd
}

func newPrepBuildCmd(app *App) *cobra.Command {
	var startFlag string
	var days int

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Aggregate stored plans into a prep manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			start, err := resolveDate(startFlag)
			if err != nil {
				return err
			}

			req := contract.NewBuildManifestRequest(start)
			if days > 0 {
				req.Days = days
			}

			resp, err := app.Prep.BuildManifest(ctx, req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatBuildResult(&resp.Manifest, resp.PlansScanned, resp.SkippedIngredients))
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "First plan date of the range (YYYY-MM-DD, today)")
	cmd.Flags().IntVar(&days, "days", 0, "Number of days to aggregate (default 3)")

	return cmd
}

func newPrepStepsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps [manifest-id]",
		Short: "Print the ordered prep step sequence",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestID := ""
			if len(args) == 1 {
				manifestID = args[0]
			}

			resp, err := app.Prep.Steps(context.Background(), manifestID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatSteps(&resp.Manifest, resp.Steps))
			return nil
		},
	}

	return cmd
}

func newPrepCookCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cook [manifest-id]",
		Short: "Walk through the prep steps interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestID := ""
			if len(args) == 1 {
				manifestID = args[0]
			}

			resp, err := app.Prep.Steps(context.Background(), manifestID)
			if err != nil {
				return err
			}

			if app.IsInteractive == nil || !app.IsInteractive() {
				// Non-TTY fallback: plain sequence.
				fmt.Println(formatter.FormatSteps(&resp.Manifest, resp.Steps))
				return nil
			}

			model := newCookModel(&resp.Manifest, resp.Steps)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	return cmd
}
