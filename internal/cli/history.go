package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently recorded solves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			runs, err := st.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tROLLS\tBOARD")
			for _, r := range runs {
				rolls := unreachableOutput
				if r.Reachable {
					rolls = fmt.Sprint(r.Rolls)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					r.ID, r.CreatedAt.UTC().Format(time.RFC3339), rolls, r.Fingerprint)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")

	return cmd
}
