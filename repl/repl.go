// Package repl SPDX-License-Identifier: Apache-2.0
//
// repl is an interactive stepper: each line is parsed as one clause/formula
// entry (4.H concrete syntax), added to the unprocessed queue, and then one
// ProcessClause step is run, mirroring the teacher's own repl.go command
// loop (read a line, feed it to the parser, print the result) but stepping
// the given-clause loop instead of printing a parsed AST.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"saturate/internal/id"
	"saturate/internal/order"
	"saturate/internal/parser"
	"saturate/internal/proofstate"
	"saturate/internal/satcheck"
	"saturate/internal/term"
)

const PROMPT = ">> "

// Start runs the stepper loop against a fresh ProofState. outputLevel
// gates the "#"-prefixed progress lines the same way ProofControl.OutputLevel
// gates them inside the core loop (4.E/§6).
func Start(in io.Reader, out io.Writer, outputLevel int) {
	scanner := bufio.NewScanner(in)

	bank := term.NewBank()
	src := id.NewSource()
	ctrl := proofstate.Default()
	ctrl.OutputLevel = outputLevel
	ps := proofstate.New(bank, order.NewOrdering(), src, ctrl, satcheck.DPLLChecker{})

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		clauses, err := parser.ParseString(bank, src, line)
		if err != nil {
			continue
		}
		for _, c := range clauses {
			ps.Unprocessed.PushClause(c)
		}

		if outputLevel > 0 {
			fmt.Fprintf(out, "# queued %d clause(s), unprocessed=%d\n", len(clauses), ps.Unprocessed.Len())
		}

		given, refuted := ps.ProcessClause()
		if refuted {
			color.New(color.FgGreen).Fprintf(out, "✅ empty clause derived from %s\n", given.ID)
			continue
		}
		if outputLevel > 0 {
			fmt.Fprintln(out, "# step produced no surviving clause")
		}
	}
}
