package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vertexfx/internal/services/sampler"
)

// paths: manage saved paths.
func pathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List, show or delete saved paths",
	}
	cmd.AddCommand(pathsListCmd(), pathsShowCmd(), pathsDeleteCmd())
	return cmd
}

func pathsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := appCtx.Paths.ListPaths()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKIND\tPOINTS\tFINGERPRINT\tCREATED")
			for _, p := range paths {
				created := time.Unix(p.CreatedUTC, 0).UTC().Format(time.RFC3339)
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", p.Name, p.Request.Spec.Kind, len(p.Points), p.Fingerprint, created)
			}
			return tw.Flush()
		},
	}
}

func pathsShowCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print the points of a saved path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			p, found, err := appCtx.Paths.LoadPath(args[0])
			if err != nil {
				return err
			}
			if !found {
				return errors.Wrapf(sampler.ErrPathNotFound, "%q", args[0])
			}
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			return writeResult(cmd.OutOrStdout(), format, p.Result())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or csv")
	return cmd
}

func pathsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := appCtx.Paths.DeletePath(args[0])
			if err != nil {
				return err
			}
			if !found {
				return errors.Wrapf(sampler.ErrPathNotFound, "%q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
