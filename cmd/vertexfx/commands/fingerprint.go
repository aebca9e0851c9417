package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// fingerprint <name>: print a saved path's fingerprint and check that both
// the stored points and a fresh sampling still match it.
func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint <name>",
		Short: "Print and verify the fingerprint of a saved path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok, err := appCtx.Service.Verify(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", p.Fingerprint)
			if !ok {
				return errors.Errorf("path %q no longer matches its fingerprint", p.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "verified")
			return nil
		},
	}
	return cmd
}
