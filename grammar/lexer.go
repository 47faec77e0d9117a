package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"

	"saturate/token"
)

// ClauseLexer tokenizes the concrete syntax for terms, literals, clauses and
// the FOF fragment used by the schema expander's re-parse step. Variables are
// distinguished from function/predicate symbols purely by case, the same
// convention TPTP and most resolution provers use: an identifier starting
// with an upper-case letter is a variable, anything else is a symbol.
var ClauseLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{string(token.Comment), `%[^\n]*`, nil},

		{string(token.Var), `[A-Z][a-zA-Z0-9_]*`, nil},
		{string(token.Ident), `[a-z][a-zA-Z0-9_]*`, nil},
		{string(token.DollarIdent), `\$[a-z][a-zA-Z0-9_]*`, nil},

		{string(token.Integer), `[0-9]+`, nil},

		{string(token.Iff), `<=>`, nil},
		{string(token.Implies), `=>`, nil},
		{string(token.NotEq), `!=`, nil},

		{string(token.Punct), `[(),.\[\]:|&~!?=]`, nil},

		{string(token.Whitespace), `[ \t\r\n]+`, nil},
	},
})
