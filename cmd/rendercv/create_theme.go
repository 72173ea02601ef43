package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Iuvenis-Sapiens/rendercv/internal/themes"
)

var createThemeCmd = &cobra.Command{
	Use:   "create-theme <name>",
	Short: "Scaffold a custom theme folder",
	Long:  "Creates a theme folder seeded with the fragment templates of an existing theme, ready to customize and pass to render with --theme-dir.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreateTheme,
}

var createThemeBase string

func init() {
	createThemeCmd.Flags().StringVar(&createThemeBase, "based-on", "classic", "Built-in theme the scaffold starts from")

	rootCmd.AddCommand(createThemeCmd)
}

func runCreateTheme(_ *cobra.Command, args []string) error {
	name := args[0]

	registry, err := themes.NewRegistry()
	if err != nil {
		return err
	}
	base, err := registry.Resolve(createThemeBase)
	if err != nil {
		return err
	}

	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite it", name)
	}
	if err := os.MkdirAll(name, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}

	metadata := fmt.Sprintf("name: %s\nextends: %s\n", name, createThemeBase)
	if err := os.WriteFile(filepath.Join(name, "theme.yaml"), []byte(metadata), 0o644); err != nil {
		return err
	}

	for _, key := range themes.AllFragments {
		text, err := base.Fragment(key)
		if err != nil {
			return err
		}
		fragmentPath := filepath.Join(name, string(key)+".tex.tmpl")
		if err := os.WriteFile(fragmentPath, []byte(text), 0o644); err != nil {
			return err
		}
	}

	fmt.Printf("Created theme folder %s based on %s\n", name, createThemeBase)
	return nil
}
