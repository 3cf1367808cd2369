package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/plotrender"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ui/tui"
)

func viewCmd(root *rootOpts) *cobra.Command {
	var sel selectionFlags
	var out string

	c := &cobra.Command{
		Use:   "view [selection]",
		Short: "Open the interactive graph panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.open(cmd.Name())
			if err != nil {
				return err
			}
			defer s.close()

			deps := tui.Deps{
				Settings: s.settings,
				Logger:   s.log,
			}

			// stdin belongs to the terminal UI, so only arguments and
			// note files can pre-fill the selection.
			if len(args) > 0 || strings.TrimSpace(sel.file) != "" {
				text, err := sel.read(cmd.Context(), cmd, args)
				if err != nil {
					return err
				}
				deps.Selection = text
			}
			if strings.TrimSpace(out) != "" {
				deps.Output = plotrender.New(out)
			}

			return tui.Run(deps)
		},
	}

	sel.register(c)
	c.Flags().StringVarP(&out, "out", "o", "", "Also write every shown graph to this file")
	return c
}
