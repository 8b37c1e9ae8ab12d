// Command alusim runs the ALU verification scenarios against the gate level
// device under test and exits non-zero when any scenario reports errors.
package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hwsec/alusim/alutest"
	"github.com/hwsec/alusim/harness"
)

type scenarioFn func(harness.Pins, harness.Logf) (harness.Report, error)

var scenarios = []struct {
	name string
	run  scenarioFn
}{
	{"basic", harness.BasicScenario},
	{"trojan", harness.TrojanScenario},
	{"reset", harness.ResetScenario},
	{"exhaustive", harness.ExhaustiveScenario},
}

func main() {
	var (
		scenario string
		clean    bool
		workers  int
		spc      uint
		quiet    bool
	)

	root := &cobra.Command{
		Use:   "alusim",
		Short: "verify the 4-bit ALU under test against its golden model",
		Long: `alusim drives the gate level ALU cycle by cycle, compares every output
against the golden reference model (trigger overlay included) and reports
mismatches. Against the tampered device all scenarios pass; with --clean the
exhaustive scenario demonstrates detection of the missing trigger.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logf := log.Printf
			if quiet {
				logf = func(string, ...interface{}) {}
			}

			opts := []alutest.BenchOption{
				alutest.Workers(workers),
				alutest.StepsPerCycle(spc),
			}
			if clean {
				opts = append(opts, alutest.Clean())
			}

			failed := 0
			for _, s := range scenarios {
				if scenario != "all" && scenario != s.name {
					continue
				}
				bench, err := alutest.NewBench(opts...)
				if err != nil {
					return errors.Wrap(err, "scenario "+s.name)
				}
				rep, err := s.run(bench, logf)
				bench.Dispose()
				if err != nil {
					failed++
					log.Printf("scenario %s FAILED: %v", s.name, err)
					continue
				}
				log.Printf("scenario %s passed: %d vectors, %d trigger activations",
					s.name, rep.Vectors, rep.TrojanHits)
			}
			if failed > 0 {
				return errors.Errorf("%d scenario(s) failed", failed)
			}
			return nil
		},
	}

	root.Flags().StringVar(&scenario, "scenario", "all", "scenario to run: all, basic, trojan, reset or exhaustive")
	root.Flags().BoolVar(&clean, "clean", false, "run against the untampered device")
	root.Flags().IntVar(&workers, "workers", 0, "circuit worker goroutines (0 = GOMAXPROCS)")
	root.Flags().UintVar(&spc, "spc", 32, "simulation steps per clock cycle")
	root.Flags().BoolVar(&quiet, "quiet", false, "suppress per-vector diagnostics")

	if err := root.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
