package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Iuvenis-Sapiens/rendercv/internal/config"
	"github.com/Iuvenis-Sapiens/rendercv/internal/observability"
	"github.com/Iuvenis-Sapiens/rendercv/internal/parsing"
	"github.com/Iuvenis-Sapiens/rendercv/internal/rendering"
	"github.com/Iuvenis-Sapiens/rendercv/internal/themes"
)

var renderCmd = &cobra.Command{
	Use:   "render <input.yaml> [more inputs...]",
	Short: "Render CV input files into LaTeX documents",
	Long:  "Validates each YAML input file and renders it with its configured theme. All validation problems of a file are reported together.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

var (
	renderOutputDir  string
	renderThemeDirs  []string
	renderVerbose    bool
	renderConfigFile string
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutputDir, "output-dir", "o", "", "Directory the .tex files and theme assets are written to (default \"rendercv_output\")")
	renderCmd.Flags().StringArrayVar(&renderThemeDirs, "theme-dir", nil, "Custom theme folder to register before rendering (repeatable)")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print parse and render summaries")
	renderCmd.Flags().StringVarP(&renderConfigFile, "config", "c", "", "Path to a JSON config file (default rendercv.json when present)")

	rootCmd.AddCommand(renderCmd)
}

// loadRenderConfig resolves the effective settings: CLI flags win over the
// config file, the config file wins over built-in defaults.
func loadRenderConfig() (*config.Config, error) {
	cfg := &config.Config{}
	path := renderConfigFile
	if path == "" {
		if _, err := os.Stat(config.DefaultConfigFile); err == nil {
			path = config.DefaultConfigFile
		}
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.LoadEnvironment()

	flags := config.Config{
		OutputDir: renderOutputDir,
		ThemeDirs: renderThemeDirs,
		Verbose:   renderVerbose,
	}
	merged := flags.MergeWithDefaults(*cfg)
	merged.Verbose = renderVerbose || cfg.Verbose
	if merged.OutputDir == "" {
		merged.OutputDir = "rendercv_output"
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func runRender(_ *cobra.Command, args []string) error {
	cfg, err := loadRenderConfig()
	if err != nil {
		return err
	}
	renderOutputDir = cfg.OutputDir
	renderThemeDirs = cfg.ThemeDirs
	renderVerbose = cfg.Verbose

	logger := newLogger(renderVerbose)

	registry, err := themes.NewRegistry()
	if err != nil {
		return err
	}
	for _, dir := range renderThemeDirs {
		theme, err := registry.RegisterCustom(dir)
		if err != nil {
			return err
		}
		logger.Info("registered custom theme", "name", theme.Name, "dir", dir)
	}

	reader := parsing.NewReader(registry)
	reader.SetDefaultTheme(cfg.DefaultTheme)
	engine := rendering.NewEngine(registry)
	printer := observability.NewPrinter(os.Stdout)

	// Inputs are independent, so render them concurrently.
	var group errgroup.Group
	for _, inputPath := range args {
		inputPath := inputPath
		group.Go(func() error {
			return renderOne(inputPath, reader, engine, registry, printer, logger)
		})
	}
	return group.Wait()
}

func renderOne(
	inputPath string,
	reader *parsing.Reader,
	engine *rendering.Engine,
	registry *themes.Registry,
	printer *observability.Printer,
	logger *slog.Logger,
) error {
	started := time.Now()
	logger.Info("reading input", "path", inputPath)

	cv, design, err := reader.ReadFile(inputPath)
	if err != nil {
		var validationErr *parsing.SchemaValidationError
		if renderVerbose && errors.As(err, &validationErr) {
			printer.PrintValidationReport(validationErr)
		}
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	if renderVerbose {
		printer.PrintCVSummary(cv)
		printer.PrintDesign(design)
	}

	document, err := engine.Render(cv, design)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	// Resolve cannot fail here: parsing already validated the theme name.
	theme, err := registry.Resolve(design.Theme)
	if err != nil {
		return err
	}

	texPath, err := rendering.WriteFiles(renderOutputDir, rendering.OutputFileName(cv.Name), document, theme)
	if err != nil {
		return err
	}

	logger.Info("rendered", "path", texPath, "theme", design.Theme)
	if renderVerbose {
		printer.PrintRenderSummary(texPath, len(theme.Assets()), time.Since(started))
	}
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
