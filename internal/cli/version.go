package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI release, overridable with -ldflags "-X ...cli.Version=...".
var Version = "0.1.0"

const modulePath = "github.com/katalvlaran/snakesladders"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the snakesladders version",
		// version needs no configuration
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "snakesladders v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
