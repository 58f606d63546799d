package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/mise/internal/catalog"
	"github.com/alexanderramin/mise/internal/cli"
	"github.com/alexanderramin/mise/internal/db"
	"github.com/alexanderramin/mise/internal/repository"
	"github.com/alexanderramin/mise/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Determine DB path: env var or default ~/.mise/mise.db
	dbPath := os.Getenv("MISE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".mise", "mise.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	catalogRepo := repository.NewSQLiteCatalogRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	manifestRepo := repository.NewSQLiteManifestRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// MISE_DEBUG=1 logs use-case telemetry to stderr.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("MISE_DEBUG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	catalogSvc := service.NewCatalogService(uow, service.WithCatalogObserver(observer))

	loadCatalog := func(ctx context.Context) (*catalog.Catalog, error) {
		ingredients, recipes, err := catalogRepo.LoadAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		return catalog.New(ingredients, recipes)
	}

	// Seed an empty catalog from MISE_CATALOG on first run.
	cat, err := loadCatalog(ctx)
	if err != nil {
		return err
	}
	if len(cat.Recipes()) == 0 {
		if seedPath := os.Getenv("MISE_CATALOG"); seedPath != "" {
			if _, err := catalogSvc.ImportFromFile(ctx, seedPath); err != nil {
				return fmt.Errorf("seeding catalog from %s: %w", seedPath, err)
			}
			if cat, err = loadCatalog(ctx); err != nil {
				return err
			}
		}
	}

	app := &cli.App{
		Plans: service.NewPlanService(cat, planRepo, profileRepo, manifestRepo, uow,
			service.WithPlanObserver(observer)),
		Prep: service.NewPrepService(cat, planRepo, manifestRepo, uow,
			service.WithPrepObserver(observer)),
		Profile:     service.NewProfileService(profileRepo),
		Catalog:     catalogSvc,
		LoadCatalog: loadCatalog,
	}

	// Detect interactive terminal for the slot picker and cook mode.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
