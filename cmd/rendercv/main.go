// Package main provides the rendercv command line tool, which renders YAML
// CV descriptions into LaTeX documents.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rendercv",
	Short: "Render CVs from YAML to LaTeX",
	Long:  "rendercv reads a YAML description of a CV, validates it, and renders it into a themed LaTeX document.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
