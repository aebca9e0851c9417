package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vertexfx/internal/curve"
)

// point <kind> -t T: evaluate one curve position locally.
func pointCmd() *cobra.Command {
	var (
		cf    curveFlags
		t     float64
		round int
	)
	cmd := &cobra.Command{
		Use:   "point <kind>",
		Short: "Print the position of a curve at t",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cf.spec(args[0])
			if err != nil {
				return err
			}
			c, err := curve.Build(s)
			if err != nil {
				return err
			}
			p := c.At(t)
			if cmd.Flags().Changed("round") {
				p = p.Round(round)
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
	cf.register(cmd, 1)
	cmd.Flags().Float64VarP(&t, "time", "t", 0, "normalized time, usually in [0, 1]")
	cmd.Flags().IntVar(&round, "round", 0, "round coordinates to this many decimals")
	return cmd
}
