package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/snakesladders/builder"
	"github.com/katalvlaran/snakesladders/internal/input"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		seed    int64
		ladders int
		snakes  int
		count   int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random valid boards in input format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			// one stream across all cases keeps --count output reproducible
			opts := []builder.Option{builder.WithRand(rand.New(rand.NewSource(seed)))}
			if ladders != 0 {
				opts = append(opts, builder.WithLadders(ladders))
			}
			if snakes != 0 {
				opts = append(opts, builder.WithSnakes(snakes))
			}

			cases := make([]input.Case, 0, count)
			for i := 0; i < count; i++ {
				b, err := builder.RandomBoard(opts...)
				if err != nil {
					return err
				}
				cases = append(cases, input.FromBoard(b))
			}
			a.log.Debug("generated", "seed", seed, "count", count)

			return input.Write(cmd.OutOrStdout(), cases...)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().IntVar(&ladders, "ladders", 0, "number of ladders, 1-15 (default: random)")
	cmd.Flags().IntVar(&snakes, "snakes", 0, "number of snakes, 1-15 (default: random)")
	cmd.Flags().IntVar(&count, "count", 1, "number of cases")

	return cmd
}
