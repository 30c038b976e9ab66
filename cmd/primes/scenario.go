package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sieve "github.com/cscherrer/prime-sieve"
)

// scenario is one named run from a --scenario file. Example file:
//
//	scenarios:
//	  - name: warm-start
//	    count: 100000
//	    strategy: heap
//	    wheel: true
//	  - name: linear-baseline
//	    count: 100000
//	    strategy: linear
//	    wheel: false
type scenario struct {
	Name     string `yaml:"name"`
	Count    int    `yaml:"count"`
	Strategy string `yaml:"strategy"`
	Wheel    bool   `yaml:"wheel"`
}

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

// runScenarios executes every scenario in the file, reporting the run
// duration and sequence digest for each.
func runScenarios(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading scenario file: %w", err)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing scenario file: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return fmt.Errorf("no scenarios in %s", path)
	}

	for i, sc := range file.Scenarios {
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("scenario-%d", i)
		}
		if sc.Strategy == "" {
			sc.Strategy = "heap"
		}
		if sc.Count <= 0 {
			return fmt.Errorf("scenario %q: count must be positive", sc.Name)
		}

		gen, err := newGenerator(sc.Strategy, sc.Wheel)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}

		start := time.Now()
		sum, err := sieve.DigestOf(gen, sc.Count)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		elapsed := time.Since(start)

		fmt.Fprintf(cmd.OutOrStdout(), "%s: count=%d strategy=%s wheel=%t digest=%016x elapsed=%s\n",
			sc.Name, sc.Count, sc.Strategy, sc.Wheel, sum, elapsed.Round(time.Microsecond))
	}
	return nil
}
