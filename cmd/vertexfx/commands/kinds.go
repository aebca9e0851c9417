package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the curve kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := appCtx.Kinds(cmd.Context())
			if err != nil {
				return err
			}
			for _, k := range kinds {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}
