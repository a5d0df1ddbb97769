package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/internal/telemetry"
)

func statsCommand(root *rootOptions) *cobra.Command {
	var (
		size       int
		seed       int64
		metricsOut string
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "build a random binary search tree and report its shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			since := time.Now()
			tree, err := builder.RandomBST(size, builder.WithSeed(seed))
			if err != nil {
				return fmt.Errorf("error building tree: %w", err)
			}
			log.Info().
				Str("nodes", humanize.Comma(int64(size))).
				Dur("took", time.Since(since)).
				Msg("built random bst")

			reg := prometheus.NewRegistry()
			m := telemetry.NewTreeMetrics(reg, log, prometheus.Labels{
				"tree": "random-bst",
				"seed": strconv.FormatInt(seed, 10),
			})
			s := telemetry.Observe(m, tree)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes: %s\n", humanize.Comma(int64(s.Count)))
			fmt.Fprintf(out, "height: %d\n", s.Height)
			fmt.Fprintf(out, "balanced: %t\n", s.Balanced)
			fmt.Fprintf(out, "diameter: %d\n", s.Diameter)
			fmt.Fprintf(out, "layer widths: %v\n", s.Layers)

			if metricsOut != "" {
				if err := prometheus.WriteToTextfile(metricsOut, reg); err != nil {
					return fmt.Errorf("error writing metrics: %w", err)
				}
				log.Info().Str("file", metricsOut).Msg("metrics written")
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 10_000, "number of nodes")
	cmd.Flags().Int64Var(&seed, "seed", 1, "shuffle seed")
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "write prometheus text exposition to this file")

	return cmd
}
