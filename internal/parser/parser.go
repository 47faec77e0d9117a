// Package parser wraps the generated grammar.File parser and the
// termbuild lowering step into the single call a driver actually wants:
// hand it a path or an in-memory source, get back clauses already interned
// into a term.Bank. Mirrors the teacher's own internal/parser, which wraps
// its participle parser the same way -- one ParseFile for disk sources, one
// ParseString for in-memory ones, both funneling through a shared internal
// parse helper that does the real work.
package parser

import (
	"saturate/grammar"
	"saturate/internal/clause"
	"saturate/internal/id"
	"saturate/internal/term"
	"saturate/internal/termbuild"
)

// ParseFile reads path from disk, parses it as the 4.H concrete syntax, and
// lowers every entry into clauses, minting ids from src and interning terms
// into bank.
func ParseFile(bank *term.Bank, src *id.Source, path string) ([]*clause.Clause, error) {
	file, err := grammar.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return termbuild.Lower(bank, src, file), nil
}

// ParseString parses an in-memory clause/formula source the same way
// ParseFile does, without touching disk.
func ParseString(bank *term.Bank, src *id.Source, source string) ([]*clause.Clause, error) {
	file, err := grammar.ParseString(source)
	if err != nil {
		return nil, err
	}
	return termbuild.Lower(bank, src, file), nil
}
