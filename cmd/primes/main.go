// Command primes prints, times, and fingerprints runs of the incremental
// prime generator.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	sieve "github.com/cscherrer/prime-sieve"
)

type options struct {
	count    int
	nth      int
	strategy string
	wheel    bool
	digest   bool
	quiet    bool
	scenario string
}

func main() {
	var opts options

	root := &cobra.Command{
		Use:   "primes",
		Short: "Generate primes with an incremental sieve",
		Long: `Generate primes with an incremental sieve.

By default the first 100 primes are printed, one per line. Use --nth to
look up a single prime, --digest to fingerprint a run instead of printing
it, or --scenario to execute a YAML file of named runs.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.scenario != "" {
				return runScenarios(cmd, opts.scenario)
			}
			return run(cmd, opts)
		},
	}

	root.Flags().IntVarP(&opts.count, "count", "c", 100, "number of primes to generate")
	root.Flags().IntVarP(&opts.nth, "nth", "n", -1, "print only the prime at this 0-indexed position")
	root.Flags().StringVarP(&opts.strategy, "strategy", "s", "heap", "active-set strategy: linear or heap")
	root.Flags().BoolVarP(&opts.wheel, "wheel", "w", true, "draw candidates from a 2·3·5·7 wheel")
	root.Flags().BoolVar(&opts.digest, "digest", false, "print the xxh3 digest of the run")
	root.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress per-prime output (timing runs)")
	root.Flags().StringVar(&opts.scenario, "scenario", "", "run the scenarios in this YAML file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "primes:", err)
		os.Exit(1)
	}
}

// newGenerator maps a strategy name and wheel flag to a generator.
func newGenerator(strategy string, wheel bool) (sieve.Sequence, error) {
	switch strategy {
	case "linear":
		if wheel {
			return sieve.NewSieveWheel(sieve.DefaultWheel()), nil
		}
		return sieve.NewSieve(), nil
	case "heap":
		if wheel {
			return sieve.New(), nil
		}
		return sieve.NewHeapSieve(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want linear or heap)", strategy)
	}
}

func run(cmd *cobra.Command, opts options) error {
	gen, err := newGenerator(opts.strategy, opts.wheel)
	if err != nil {
		return err
	}

	if opts.nth >= 0 {
		start := time.Now()
		p, err := sieve.Nth(gen, opts.nth)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", p)
		if opts.quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "elapsed: %s\n", time.Since(start).Round(time.Microsecond))
		}
		return nil
	}

	if opts.count < 0 {
		return errors.New("count must be non-negative")
	}

	d := sieve.NewDigest()
	start := time.Now()
	for range opts.count {
		p, err := gen.Next()
		if err != nil {
			return err
		}
		d.Add(p)
		if !opts.quiet && !opts.digest {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", p)
		}
	}
	elapsed := time.Since(start)

	if opts.digest {
		fmt.Fprintf(cmd.OutOrStdout(), "count=%d digest=%016x\n", d.Count(), d.Sum64())
	}
	if opts.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "elapsed: %s\n", elapsed.Round(time.Microsecond))
	}
	return nil
}
