package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/mise/internal/catalog"
	"github.com/alexanderramin/mise/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans   service.PlanService
	Prep    service.PrepService
	Profile service.ProfileService
	Catalog service.CatalogService

	// LoadCatalog re-reads the stored catalog; used by commands that list
	// catalog contents after an import in the same process.
	LoadCatalog func(ctx context.Context) (*catalog.Catalog, error)

	// IsInteractive reports whether stdin is a terminal. Gates the huh slot
	// picker and the cook walker.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "mise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "mise",
		Short:         "Meal planner and batch-prep sequencer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Flags are case-insensitive so `--Date` works the same as `--date`.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})

	root.AddCommand(
		newPlanCmd(app),
		newPrepCmd(app),
		newProfileCmd(app),
		newCatalogCmd(app),
	)

	return root
}
