// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"saturate/internal/config"
	"saturate/internal/id"
	"saturate/internal/order"
	"saturate/internal/parser"
	"saturate/internal/proofstate"
	"saturate/internal/satcheck"
	"saturate/internal/term"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: saturate-core <clausefile> [heuristic.yaml]")
		os.Exit(1)
	}

	path := os.Args[1]

	bank := term.NewBank()
	src := id.NewSource()

	clauses, err := parser.ParseFile(bank, src, path)
	if err != nil {
		os.Exit(1)
	}

	ctrl := proofstate.Default()
	if len(os.Args) >= 3 {
		loaded, warnings, err := config.Load(os.Args[2])
		if err != nil {
			color.Red("Failed to load heuristic file: %s", err)
			os.Exit(1)
		}
		ctrl = loaded
		for _, w := range warnings {
			color.Yellow("# %s", w.String())
		}
	}

	ps := proofstate.New(bank, order.NewOrdering(), src, ctrl, satcheck.DPLLChecker{})
	ps.AddInitialClauses(clauses)

	if ctrl.OutputLevel > 0 {
		fmt.Printf("# %d initial clauses loaded from %s\n", len(clauses), path)
	}

	outcome := ps.Saturate()
	printCounters(ctrl, ps)

	switch outcome {
	case proofstate.OutcomeRefutation:
		color.Green("✅ Refutation found (%s)", outcome)
		os.Exit(0)
	case proofstate.OutcomeSaturated:
		color.Cyan("Saturated, no refutation (%s)", outcome)
		os.Exit(0)
	default:
		color.Red("❌ Resource limit reached (%s)", outcome)
		os.Exit(1)
	}
}

func printCounters(ctrl *proofstate.ProofControl, ps *proofstate.ProofState) {
	if ctrl.OutputLevel == 0 {
		return
	}
	c := ps.Counters
	fmt.Printf("# processed=%d generated=%d paramod=%d resolv=%d factor=%d satchecks=%d\n",
		c.ProcessedCount, c.GeneratedCount, c.ParamodCount, c.ResolvCount, c.FactorCount, c.SatCheckCount)
}
