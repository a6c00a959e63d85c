package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nmeasum/internal/selftest"
)

func newSelfTestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Check the checksum engine against built-in reference sentences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := selftest.Runner{
				Out:     a.stdout,
				Verbose: *a.cfg.SelfTest.Verbose,
				Logger:  a.log,
			}
			res := r.Run(a.vectors())
			if !res.OK() {
				return fmt.Errorf("%d of %d checks failed", res.Failed, res.Checked)
			}
			a.log.Info().Int("checked", res.Checked).Msg("selftest passed")
			return nil
		},
	}
	cmd.Flags().Bool("verbose", true, "Print each mismatching sentence")
	return cmd
}
