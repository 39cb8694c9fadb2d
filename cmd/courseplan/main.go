package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/daehakro/courseplan/internal/catalog"
	"github.com/daehakro/courseplan/internal/cli"
	"github.com/daehakro/courseplan/internal/db"
	"github.com/daehakro/courseplan/internal/graph"
	"github.com/daehakro/courseplan/internal/repository"
	"github.com/daehakro/courseplan/internal/scoring"
	"github.com/daehakro/courseplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.courseplan/courseplan.db
	dbPath := os.Getenv("COURSEPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".courseplan", "courseplan.db")
	}

	// Catalog: an external YAML overrides the embedded curriculum.
	var (
		cat *catalog.Catalog
		err error
	)
	if catalogPath := os.Getenv("COURSEPLAN_CATALOG"); catalogPath != "" {
		cat, err = catalog.LoadFile(catalogPath)
		if err != nil {
			return fmt.Errorf("loading catalog %s: %w", catalogPath, err)
		}
	} else {
		cat, err = catalog.Default()
		if err != nil {
			return fmt.Errorf("loading embedded catalog: %w", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	for _, warning := range cat.Warnings() {
		logger.Warn("catalog", "warning", warning)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var scoreObs scoring.Observer
	var useCaseObs service.UseCaseObserver
	if os.Getenv("COURSEPLAN_DEBUG") != "" {
		scoreObs = scoring.NewLogObserver(os.Stderr)
		useCaseObs = service.NewLogUseCaseObserver(os.Stderr)
	}

	profileRepo := repository.NewSQLiteStudentProfileRepo(database)
	strategy := scoring.ForCatalog(cat, scoreObs)

	app := &cli.App{
		Plans:    service.NewPlanService(cat, strategy, useCaseObs),
		Profiles: service.NewProfileService(profileRepo, useCaseObs),
		Catalog:  cat,
		Graph:    graph.New(cat),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
