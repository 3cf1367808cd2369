package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/settingsfile"
)

func settingsCmd(root *rootOpts) *cobra.Command {
	c := &cobra.Command{
		Use:   "settings",
		Short: "Show and change plot settings",
	}

	c.AddCommand(settingsShowCmd(root), settingsGetCmd(root), settingsSetCmd(root))
	return c
}

func settingsShowCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every setting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := root.open(cmd.Name())
			if err != nil {
				return err
			}
			defer s.close()

			fmt.Fprintf(cmd.OutOrStdout(), "File: %s\n\n", s.store.Path())
			for _, field := range domain.SettingsFields {
				v, err := settingsfile.Query(s.settings, field)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", field+":", v)
			}
			return nil
		},
	}
}

func settingsGetCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "get <field|jsonpath>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.open(cmd.Name())
			if err != nil {
				return err
			}
			defer s.close()

			v, err := settingsfile.Query(s.settings, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func settingsSetCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Change one setting and save it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.open(cmd.Name())
			if err != nil {
				return err
			}
			defer s.close()

			next, err := s.settings.Set(args[0], args[1])
			if err != nil {
				return err
			}
			if err := s.store.Save(next); err != nil {
				s.log.Error("settings.save.failed", "path", s.store.Path(), "err", err)
				return err
			}
			s.log.Info("settings.save.ok", "field", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
			return nil
		},
	}
}
