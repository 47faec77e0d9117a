// Package token SPDX-License-Identifier: Apache-2.0
//
// token names every lexical category the clause/formula grammar's stateful
// lexer recognizes (grammar.ClauseLexer). There are no reserved words in
// this grammar -- variables and symbols are distinguished purely by case,
// not by a keyword table -- so unlike a full language's token package this
// one is just the rule-name vocabulary participle's stateful lexer dispatches
// on.
package token

type Kind string

const (
	Comment     Kind = "Comment"
	Var         Kind = "Var"
	Ident       Kind = "Ident"
	DollarIdent Kind = "DollarIdent"
	Integer     Kind = "Integer"
	Iff         Kind = "Iff"
	Implies     Kind = "Implies"
	NotEq       Kind = "NotEq"
	Punct       Kind = "Punct"
	Whitespace  Kind = "Whitespace"
)
