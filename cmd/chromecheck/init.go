package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thobhanifreddy/puppeteer/internal/config"
)

//go:embed templates/chromecheck.yaml
var configTemplate []byte

// NewInitCmd creates the init subcommand that generates a starter
// configuration file.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a configuration file template",
		Long: `Generate a configuration file template in the current directory.

The generated file contains commented examples of every setting. Values
set on the command line always override values from the file.`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile, "Output path for the configuration file")
	cmd.Flags().BoolP("force", "f", false, "Overwrite existing configuration file")

	return cmd
}

// runInitCmd writes the embedded configuration template to disk.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Don't clobber an existing file unless asked to
	if _, err := os.Stat(outputPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(outputPath, configTemplate, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to configure settings such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - The snapshot storage host (for mirrors)")
	fmt.Fprintln(cmd.OutOrStdout(), "  - The release feed endpoint")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Probe timeout and SOCKS5 proxy")

	return nil
}
