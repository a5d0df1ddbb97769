package main

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/core"
	"github.com/katalvlaran/lvtree/shape"
	"github.com/katalvlaran/lvtree/traverse"
)

func demoCommand(root *rootOptions) *cobra.Command {
	var layer int
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "run every query on the reference tree, mirror it, and walk it again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			tree := builder.Sample()
			if err := core.Validate(tree); err != nil {
				return err
			}
			log.Debug().Int("layer", layer).Msg("running demo on reference tree")

			runDemo(cmd.OutOrStdout(), tree, layer)
			log.Info().Msg("demo complete")

			return nil
		},
	}
	cmd.Flags().IntVar(&layer, "layer", 4, "layer (1-indexed) whose node count is reported")

	return cmd
}

// runDemo prints the report for tree and leaves it mirrored.
func runDemo(w io.Writer, tree *core.Node[int], layer int) {
	balanced, height := shape.IsBalanced(tree)
	fmt.Fprintf(w, "balanced: %t\n", balanced)
	fmt.Fprintf(w, "height: %d\n", height)
	fmt.Fprintf(w, "nodes at layer %d: %d\n", layer, shape.CountAtLayer(tree, layer))
	fmt.Fprintf(w, "nodes: %d\n", shape.Count(tree))
	fmt.Fprintf(w, "depth: %d\n", shape.Depth(tree))
	fmt.Fprintf(w, "layer widths: %v\n", shape.LayerCounts(tree))
	fmt.Fprintf(w, "diameter: %d\n", shape.Diameter(tree))
	fmt.Fprintf(w, "pre-order: %s\n", joinSeq(traverse.PreOrder(tree)))
	fmt.Fprintf(w, "in-order: %s\n", joinSeq(traverse.InOrder(tree)))
	fmt.Fprintf(w, "post-order: %s\n", joinSeq(traverse.PostOrder(tree)))
	fmt.Fprintf(w, "level-order: %s\n", joinSeq(traverse.LevelOrder(tree)))

	core.Mirror(tree)
	fmt.Fprintf(w, "mirrored pre-order: %s\n", joinSeq(traverse.PreOrder(tree)))
}

// joinSeq renders a sequence as "a => b => c".
func joinSeq[T any](seq iter.Seq[T]) string {
	parts := []string{}
	for v := range seq {
		parts = append(parts, fmt.Sprint(v))
	}

	return strings.Join(parts, " => ")
}
