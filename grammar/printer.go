package grammar

import (
	"fmt"
	"strings"
)

// String renders a parsed file back to concrete syntax. Used directly by
// the schema expander, which builds a File in memory from a clause's term
// graph and prints it rather than ever touching disk.
func (f *File) String() string {
	var b strings.Builder
	for _, e := range f.Entries {
		b.WriteString(e.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (e *Entry) String() string {
	switch {
	case e.NamedClause != nil:
		return e.NamedClause.String()
	case e.NamedFormula != nil:
		return e.NamedFormula.String()
	case e.Bare != nil:
		return e.Bare.String()
	default:
		return ""
	}
}

func (i PosIdent) String() string { return i.Value }
func (v VarName) String() string  { return v.Value }

func (t *Term) String() string {
	if t.Var != nil {
		return t.Var.String()
	}
	return t.Func.String()
}

func (f *FuncTerm) String() string {
	if len(f.Args) == 0 {
		return f.Name.String()
	}
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", f.Name.String(), strings.Join(args, ","))
}

func (l *Literal) String() string {
	var b strings.Builder
	if l.Negated {
		b.WriteString("~")
	}
	b.WriteString(l.Left.String())
	if l.Op != nil {
		b.WriteString(" " + *l.Op + " ")
		b.WriteString(l.Right.String())
	}
	return b.String()
}

func (c *BareClause) String() string {
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return strings.Join(parts, " | ") + "."
}

func (c *NamedClause) String() string {
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return fmt.Sprintf("cnf(%s,%s,(%s)).", c.Name, c.Role, strings.Join(parts, "|"))
}

func (f *Formula) String() string {
	if f.Iff != nil {
		return fmt.Sprintf("(%s <=> %s)", f.Left.String(), f.Iff.String())
	}
	return f.Left.String()
}

func (f *ImplFormula) String() string {
	if f.Implies != nil {
		return fmt.Sprintf("(%s => %s)", f.Left.String(), f.Implies.String())
	}
	return f.Left.String()
}

func (f *OrFormula) String() string {
	parts := make([]string, len(f.Operands))
	for i, o := range f.Operands {
		parts[i] = o.String()
	}
	return strings.Join(parts, " | ")
}

func (f *AndFormula) String() string {
	parts := make([]string, len(f.Operands))
	for i, o := range f.Operands {
		parts[i] = o.String()
	}
	return strings.Join(parts, " & ")
}

func (f *UnaryFormula) String() string {
	prefix := ""
	if f.Negated {
		prefix = "~"
	}
	switch {
	case f.Quant != nil:
		return prefix + f.Quant.String()
	case f.Paren != nil:
		return prefix + "(" + f.Paren.String() + ")"
	case f.Atom != nil:
		return prefix + f.Atom.String()
	default:
		return prefix
	}
}

func (f *QuantifiedFormula) String() string {
	q := "!"
	if f.Existential {
		q = "?"
	}
	vars := make([]string, len(f.Vars))
	for i, v := range f.Vars {
		vars[i] = v.String()
	}
	return fmt.Sprintf("%s[%s]:%s", q, strings.Join(vars, ","), f.Body.String())
}

func (n *NamedFormula) String() string {
	return fmt.Sprintf("fof(%s,%s,%s).", n.Name, n.Role, n.Formula.String())
}
