package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/settingsfile"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create graphplot.yaml with default settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := strings.TrimSpace(path)
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				dir = wd
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			written, err := settingsfile.Init(abs, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", written)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Directory to initialize (default: working directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")
	return c
}
