package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leofalp/editdecode/core/sanitize"
)

func newSanitizeCmd(a *app) *cobra.Command {
	var (
		pass      int
		noRepair  bool
		listSteps bool
	)
	cmd := &cobra.Command{
		Use:   "sanitize [file|-]",
		Short: "Print the sanitizer output of pass 1 or 2",
		Long: "Sanitize runs the conservative pass (1), or the conservative pass " +
			"followed by the aggressive pass (2), and prints the resulting text " +
			"without parsing it.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pass != 1 && pass != 2 {
				return fmt.Errorf("--pass must be 1 or 2, got %d", pass)
			}
			if listSteps {
				names := sanitize.Steps(sanitize.PassConservative)
				if pass == 2 {
					names = sanitize.Steps(sanitize.PassAggressive)
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
				return nil
			}

			raw, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			s := sanitize.New(
				sanitize.WithLogger(a.observer),
				sanitize.WithLibraryRepair(a.cfg.LibraryRepair && !noRepair),
			)
			text, err := s.Conservative(cmd.Context(), raw)
			if err != nil {
				return err
			}
			if pass == 2 {
				text = s.Aggressive(cmd.Context(), text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().IntVar(&pass, "pass", 1, "sanitizer pass to run: 1 (conservative) or 2 (conservative then aggressive)")
	cmd.Flags().BoolVar(&noRepair, "no-library-repair", false, "skip the jsonrepair fallback of pass 2")
	cmd.Flags().BoolVar(&listSteps, "list-steps", false, "list the step names of the pass instead of running it")
	a.addFromHTMLFlag(cmd)
	return cmd
}
