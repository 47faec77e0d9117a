package grammar

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var clauseParser = participle.MustBuild[File](
	participle.Lexer(ClauseLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(3),
)

// ParseFile parses a clause/formula source file from disk. Used only by the
// CLI driver; nothing in the core engine reads files directly.
func ParseFile(path string) (*File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return parse(path, string(source))
}

// ParseString parses a clause/formula source held entirely in memory. This
// is what the schema expander uses to CNF-translate a synthesized axiom
// instance: build the text with the grammar's own printer, hand it back
// here, never touching disk.
func ParseString(source string) (*File, error) {
	return parse("<memory>", source)
}

func parse(name, source string) (*File, error) {
	file, err := clauseParser.ParseString(name, source)
	if err != nil {
		reportParseError(source, err)
		return nil, err
	}
	return file, nil
}

// reportParseError prints a friendly caret-style parse error message.
func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("Unexpected error: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("Syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	column := pos.Column - 1
	if column < 0 {
		column = 0
	}
	caret := strings.Repeat(" ", column) + "^"

	color.Red("syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("-> %s\n", pe.Message())
}
