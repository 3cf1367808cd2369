package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/evaluator"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/notice"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/usecase"
)

func graphCmd(root *rootOpts) *cobra.Command {
	var sel selectionFlags
	var out outputFlags
	var kind string
	var at float64

	c := &cobra.Command{
		Use:   "graph [selection]",
		Short: "Plot the selected expressions as functions of x",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []usecase.Option{}
			if strings.TrimSpace(kind) != "" {
				k, ok := domain.ParseInputKind(kind)
				if !ok {
					return fmt.Errorf("unsupported kind %q (expected %s)", kind, kindChoices())
				}
				opts = append(opts, usecase.WithForcedKind(k))
			}

			s, err := root.open(cmd.Name())
			if err != nil {
				return err
			}
			defer s.close()

			text, err := sel.read(cmd.Context(), cmd, args)
			if err != nil {
				notice.New(cmd.ErrOrStderr()).Notice(usecase.UserMessage(err))
				return err
			}

			panel, path, err := out.panel(cmd, s.root)
			if err != nil {
				return err
			}

			opts = append(opts,
				usecase.WithLogger(s.log),
				usecase.WithNotifier(notice.New(cmd.ErrOrStderr())),
			)
			st, err := usecase.NewGenerateGraph(panel, s.settings, opts...).Execute(cmd.Context(), text)
			if err != nil {
				return err
			}

			if path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			}
			if cmd.Flags().Changed("at") {
				return printAnswers(cmd.OutOrStdout(), st, at)
			}
			return nil
		},
	}

	sel.register(c)
	out.register(c)
	c.Flags().StringVar(&kind, "kind", "", "Force the input kind: "+kindChoices())
	c.Flags().Float64Var(&at, "at", 0, "Also print y for every function at this x")
	return c
}

func kindChoices() string {
	return strings.Join(domain.InputKindNames(), "|")
}

// printAnswers prints one "expr at x = y" line per function.
func printAnswers(w io.Writer, st domain.RenderState, x float64) error {
	for _, fn := range st.Functions {
		f, err := evaluator.Compile(fn.Expr)
		if err != nil {
			return err
		}
		y, err := f.Eval(x)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s at x = %g: y = %g\n", fn.Expr, x, y)
	}
	return nil
}

func vectorCmd(root *rootOpts) *cobra.Command {
	var sel selectionFlags
	var out outputFlags

	c := &cobra.Command{
		Use:   "vector [selection]",
		Short: "Draw the selected column vectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.open(cmd.Name())
			if err != nil {
				return err
			}
			defer s.close()

			text, err := sel.read(cmd.Context(), cmd, args)
			if err != nil {
				notice.New(cmd.ErrOrStderr()).Notice(usecase.UserMessage(err))
				return err
			}

			panel, path, err := out.panel(cmd, s.root)
			if err != nil {
				return err
			}

			uc := usecase.NewDrawVector(panel, s.settings,
				usecase.WithLogger(s.log),
				usecase.WithNotifier(notice.New(cmd.ErrOrStderr())),
			)
			if _, err := uc.Execute(cmd.Context(), text); err != nil {
				return err
			}
			if path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			}
			return nil
		},
	}

	sel.register(c)
	out.register(c)
	return c
}

func addCmd(root *rootOpts) *cobra.Command {
	var sel selectionFlags
	var out outputFlags
	var a, b int

	c := &cobra.Command{
		Use:   "add [selection]",
		Short: "Draw the selected vectors and the resultant of two of them",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.open(cmd.Name())
			if err != nil {
				return err
			}
			defer s.close()

			text, err := sel.read(cmd.Context(), cmd, args)
			if err != nil {
				notice.New(cmd.ErrOrStderr()).Notice(usecase.UserMessage(err))
				return err
			}

			panel, path, err := out.panel(cmd, s.root)
			if err != nil {
				return err
			}

			uc := usecase.NewAddVectors(panel, s.settings,
				usecase.WithLogger(s.log),
				usecase.WithNotifier(notice.New(cmd.ErrOrStderr())),
			)
			if _, err := uc.Execute(cmd.Context(), text, a-1, b-1); err != nil {
				return err
			}
			if path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			}
			return nil
		},
	}

	sel.register(c)
	out.register(c)
	c.Flags().IntVar(&a, "a", 1, "First vector (1-based, in selection order)")
	c.Flags().IntVar(&b, "b", 2, "Second vector (1-based, in selection order)")
	return c
}
