// Command ringcode generates codes for circular coded photogrammetry
// targets.
//
// Usage:
//
//	ringcode N [--transitions T]
//
// N is the number of bits in the target ring (a positive even integer).
// The report lists every valid code as a zero-padded binary string, then as
// a decimal list, then the total count — the exact layout sheet-generation
// tooling consumes.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/photomark/ringcode/catalog"
	"github.com/photomark/ringcode/codes"
)

const version = "1.0.0"

// newRootCmd builds the CLI command tree.  A fresh command per invocation
// keeps flag state isolated, which the tests rely on.
func newRootCmd() *cobra.Command {
	var (
		transitions int
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:   "ringcode N",
		Short: "Generate codes for circular coded photogrammetry targets",
		Long: `Generate codes for circular coded photogrammetry targets.

Enumerates every rotation-canonical N-bit pattern with even parity and at
least one pair of diametrically opposite bits set, optionally restricted to
an exact number of rising bit transitions.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := hclog.New(&hclog.LoggerOptions{
				Name:   "ringcode",
				Level:  hclog.LevelFromString(logLevel),
				Output: cmd.ErrOrStderr(),
			})

			bits, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bit width %q is not an integer: %w", args[0], codes.ErrInvalidBitWidth)
			}

			opts := codes.DefaultOptions()
			if cmd.Flags().Changed("transitions") {
				if transitions <= 0 {
					return fmt.Errorf("transitions=%d: %w", transitions, codes.ErrInvalidTransitionCount)
				}
				opts.Transitions = transitions
			}

			start := time.Now()
			cat, err := catalog.Build(bits, &opts)
			if err != nil {
				return err
			}
			logger.Debug("catalog generated",
				"bits", bits,
				"transitions", opts.Transitions,
				"codes", cat.Len(),
				"elapsed", time.Since(start))

			return writeReport(cmd.OutOrStdout(), cat)
		},
	}

	cmd.Flags().IntVar(&transitions, "transitions", 0, "exact number of rising bit transitions (positive integer)")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (trace|debug|info|warn|error)")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
