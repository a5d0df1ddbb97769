package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	logLevel string
	pretty   bool
}

// logger builds the zerolog logger selected by the flags, writing to w.
func (o *rootOptions) logger(w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(o.logLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}
	if o.pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func rootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "lvtree",
		Short:         "binary tree shape queries, traversals and mirroring",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "zerolog level: debug, info, warn, error, disabled")
	cmd.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "human readable console logs instead of JSON")

	cmd.AddCommand(demoCommand(opts), statsCommand(opts))

	return cmd
}
