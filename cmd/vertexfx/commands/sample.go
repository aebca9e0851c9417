package commands

import (
	"github.com/spf13/cobra"

	"vertexfx/internal/domain"
)

// sample <kind>: sample a curve and print or save the points.
func sampleCmd() *cobra.Command {
	var (
		cf        curveFlags
		step      float64
		count     int
		inclusive bool
		round     int
		save      string
		format    string
	)
	cmd := &cobra.Command{
		Use:   "sample <kind>",
		Short: "Sample a curve",
		Long: "Sample a curve every --step over [0, 1), or at --count evenly spaced t values.\n" +
			"With --inclusive the count includes t = 1. Without either, the step is 0.1.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			s, err := cf.spec(args[0])
			if err != nil {
				return err
			}
			req := domain.SampleRequest{Spec: s, Step: step, Count: count, Inclusive: inclusive}
			if step == 0 && count == 0 {
				req.Step = defaultStep
			}
			if cmd.Flags().Changed("round") {
				r := round
				req.Round = &r
			}

			var res domain.SampleResult
			if save != "" {
				p, err := appCtx.Service.Record(cmd.Context(), save, req)
				if err != nil {
					return err
				}
				res = p.Result()
			} else if res, err = appCtx.Sampler.Sample(cmd.Context(), req); err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), format, res)
		},
	}
	cf.register(cmd, 1)
	cmd.Flags().Float64Var(&step, "step", 0, "sample every step over [0, 1)")
	cmd.Flags().IntVar(&count, "count", 0, "sample this many points")
	cmd.Flags().BoolVar(&inclusive, "inclusive", false, "with --count, include t = 1")
	cmd.Flags().IntVar(&round, "round", 0, "round coordinates to this many decimals")
	cmd.Flags().StringVar(&save, "save", "", "save the result as a named path")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or csv")
	return cmd
}
