package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/context7/upsert-action/internal/action"
	"github.com/context7/upsert-action/internal/config"
	"github.com/context7/upsert-action/internal/logger"
	"github.com/context7/upsert-action/internal/manifest"
	"github.com/context7/upsert-action/internal/output"
	"github.com/context7/upsert-action/internal/services"
)

var (
	flagOperation   string
	flagLibraryName string
	flagRepoURL     string
	flagTimeout     string

	flagManifestPath string
)

var rootCmd = &cobra.Command{
	Use:   "upsert-context7",
	Short: "Add or refresh library documentation on Context7",
	Long: `Registers a repository as a new documentation source on Context7.com,
or requests a refresh of an already-registered library's docs.

Inputs come from the INPUT_* environment variables the GitHub Actions
runner injects; flags override them for local runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.NewWithOverrides(config.Overrides{
			Operation:   flagOperation,
			LibraryName: flagLibraryName,
			RepoURL:     flagRepoURL,
			Timeout:     flagTimeout,
		})
		logger.Init(cfg.LogLevel)

		svc := services.NewContext7Service(cfg.TimeoutSeconds)
		runner := action.NewRunner(cfg, svc, output.NewWriter())

		if code := runner.Run(cmd.Context()); code != 0 {
			os.Exit(code)
		}
	},
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Verify action.yml matches the inputs and outputs the binary consumes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := manifest.Load(flagManifestPath)
		if err != nil {
			return err
		}
		if err := a.Verify(); err != nil {
			return err
		}
		fmt.Printf("%s is consistent with the binary\n", flagManifestPath)
		return nil
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVar(&flagOperation, "operation", "", "operation to perform: 'add' or 'refresh' (defaults to INPUT_OPERATION)")
	rootCmd.Flags().StringVar(&flagLibraryName, "library-name", "", "library to refresh, e.g. /owner/repo (defaults to INPUT_LIBRARY_NAME)")
	rootCmd.Flags().StringVar(&flagRepoURL, "repo-url", "", "repository URL to add (defaults to INPUT_REPO_URL)")
	rootCmd.Flags().StringVar(&flagTimeout, "timeout", "", "request timeout in seconds (defaults to INPUT_TIMEOUT)")

	manifestCmd.Flags().StringVar(&flagManifestPath, "path", "action.yml", "path to the action manifest")

	rootCmd.AddCommand(manifestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
