package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vertexfx/internal/domain"
	"vertexfx/internal/scene"
)

type sceneEntry struct {
	Name    string               `json:"name"`
	Request domain.SampleRequest `json:"request"`
	domain.SampleResult
}

// scene <file>: sample every curve of a scene file.
func sceneCmd() *cobra.Command {
	var (
		format string
		save   bool
	)
	cmd := &cobra.Command{
		Use:   "scene <file>",
		Short: "Sample every curve of a JSON scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatJSON {
				return errors.Errorf("unknown format %q (want text or json)", format)
			}
			sc, err := scene.LoadFile(args[0])
			if err != nil {
				return err
			}
			results, err := scene.Run(cmd.Context(), appCtx.Sampler, sc)
			if err != nil {
				return err
			}
			if save {
				for _, r := range results {
					if _, err := appCtx.Service.Record(cmd.Context(), r.Entry.Name, r.Entry.Request); err != nil {
						return err
					}
				}
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				entries := make([]sceneEntry, 0, len(results))
				for _, r := range results {
					entries = append(entries, sceneEntry{Name: r.Entry.Name, Request: r.Entry.Request, SampleResult: r.Result})
				}
				return writeJSON(out, struct {
					Name    string       `json:"name"`
					Entries []sceneEntry `json:"entries"`
				}{sc.Name, entries})
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKIND\tPOINTS\tLENGTH\tFINGERPRINT")
			for _, r := range results {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%.4f\t%s\n",
					r.Entry.Name, r.Entry.Request.Spec.Kind, len(r.Result.Points), r.Result.Length, r.Result.Fingerprint)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or json")
	cmd.Flags().BoolVar(&save, "save", false, "save every curve as a path named after its entry")
	return cmd
}
