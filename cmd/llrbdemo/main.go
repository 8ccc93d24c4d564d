// Package main provides llrbdemo, a driver which exercises an llrb.Tree and
// reports what happened.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts demoOptions

	cmd := &cobra.Command{
		Use:           "llrbdemo",
		Short:         "Build a left-leaning red-black tree, delete from it and report counts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)

			res, err := runDemo(opts)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), res, opts.dump)
		},
	}

	cmd.Flags().Int64VarP(&opts.count, "count", "n", defaultCount, "number of keys to insert")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every operation")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "print the tree contents before it is released")
	cmd.Flags().IntVar(&opts.maxNodes, "max-nodes", 0, "node allocation budget (0 = unbounded)")

	return cmd
}
