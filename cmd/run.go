package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edukite/pathfinder/internal/app"
	"github.com/edukite/pathfinder/internal/catalog"
	"github.com/edukite/pathfinder/internal/export"
	"github.com/edukite/pathfinder/internal/llm"
	"github.com/edukite/pathfinder/internal/quizgen"
	"github.com/edukite/pathfinder/internal/recommend"
	"github.com/edukite/pathfinder/internal/store"
)

// runApp builds all dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logger, err := newLogger(dbPath)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	provider, err := llm.NewProviderFromEnv(ctx, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set PATHFINDER_LLM_PROVIDER and the matching API key.")
		return err
	}

	baseURL, err := catalog.BaseURLFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Backend not configured:", err)
		return err
	}

	opts := app.Options{
		Generator: quizgen.New(provider, quizgen.DefaultConfig()),
		Analyzer:  recommend.NewAnalyzer(provider, baseURL, recommend.DefaultConfig()),
		Catalog:   catalog.NewClient(baseURL),
		Exporter:  export.NewHTTPExporter(baseURL, logger),
		Store:     st,
		Logger:    logger,
	}

	return app.Run(opts)
}

// newLogger builds a file-sink zap logger. The TUI owns the terminal, so
// nothing may log to stdout or stderr while it runs.
func newLogger(dbPath string) (*zap.Logger, error) {
	logPath := os.Getenv("PATHFINDER_LOG")
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(dbPath), "pathfinder.log")
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}
	return cfg.Build()
}
