package emit

import (
	"strings"

	"github.com/sharpgen/sharpen/syntax"
)

// Block is an ordered sequence of statements forming a braced body. Every
// append captures its arguments verbatim; the block formats, it never parses.
// Compound statements (if, foreach, for) hold the caller's configuration
// callback and invoke it at render time against a fresh nested block sharing
// the same indenter, so rendering the same block twice yields identical text.
type Block struct {
	syn   *syntax.Table
	stmts []stmt
}

// NewBlock returns an empty statement block using the C# token table.
func NewBlock() *Block {
	return newBlock(syntax.CSharp())
}

func newBlock(syn *syntax.Table) *Block {
	return &Block{syn: syn}
}

// stmt is a single renderable statement.
type stmt interface {
	render(b *Block, ind *Indenter, out *strings.Builder)
}

type declareStmt struct {
	typeName string // empty means inferred
	name     string
	value    string
}

type assignStmt struct {
	target string
	value  string
}

type compoundAssignStmt struct {
	target string
	op     string
	value  string
}

type callStmt struct {
	expr string
	args []string
}

type callAssignStmt struct {
	target string
	expr   string
	args   []string
}

type returnStmt struct {
	expr string
}

type ifStmt struct {
	cond string
	then func(*Block)
	els  func(*Block)
}

type forEachStmt struct {
	elemType string // empty means inferred
	name     string
	source   string
	body     func(*Block)
}

type forStmt struct {
	init string
	cond string
	post string
	body func(*Block)
}

type rawStmt struct {
	line string
}

// Declare appends a local variable declaration. An empty typeName declares
// with the inferred-type keyword; an empty value declares without an
// initializer.
func (b *Block) Declare(typeName, name, value string) *Block {
	b.stmts = append(b.stmts, declareStmt{typeName: typeName, name: name, value: value})
	return b
}

// Assign appends an assignment statement.
func (b *Block) Assign(target, value string) *Block {
	b.stmts = append(b.stmts, assignStmt{target: target, value: value})
	return b
}

// CompoundAssign appends a compound assignment using the given operator
// verbatim, e.g. "+=".
func (b *Block) CompoundAssign(target, op, value string) *Block {
	b.stmts = append(b.stmts, compoundAssignStmt{target: target, op: op, value: value})
	return b
}

// Call appends a call statement.
func (b *Block) Call(expr string, args ...string) *Block {
	b.stmts = append(b.stmts, callStmt{expr: expr, args: args})
	return b
}

// CallAssign appends a call statement whose result is assigned to target.
func (b *Block) CallAssign(target, expr string, args ...string) *Block {
	b.stmts = append(b.stmts, callAssignStmt{target: target, expr: expr, args: args})
	return b
}

// Return appends a return statement; an empty expression returns void.
func (b *Block) Return(expr string) *Block {
	b.stmts = append(b.stmts, returnStmt{expr: expr})
	return b
}

// If appends a conditional statement. The then callback configures the
// nested block when the statement is rendered.
func (b *Block) If(cond string, then func(*Block)) *Block {
	b.stmts = append(b.stmts, ifStmt{cond: cond, then: then})
	return b
}

// IfElse appends a conditional statement with an else branch.
func (b *Block) IfElse(cond string, then, els func(*Block)) *Block {
	b.stmts = append(b.stmts, ifStmt{cond: cond, then: then, els: els})
	return b
}

// ForEach appends a foreach loop over source. An empty elemType renders the
// inferred-type keyword.
func (b *Block) ForEach(elemType, name, source string, body func(*Block)) *Block {
	b.stmts = append(b.stmts, forEachStmt{elemType: elemType, name: name, source: source, body: body})
	return b
}

// For appends a for loop with the three clauses emitted verbatim.
func (b *Block) For(init, cond, post string, body func(*Block)) *Block {
	b.stmts = append(b.stmts, forStmt{init: init, cond: cond, post: post, body: body})
	return b
}

// Raw appends a verbatim line.
func (b *Block) Raw(line string) *Block {
	b.stmts = append(b.stmts, rawStmt{line: line})
	return b
}

// Len returns the number of appended statements.
func (b *Block) Len() int {
	return len(b.stmts)
}

// Render emits the statements in append order, one or more indented lines
// per statement. The indent depth after rendering equals the depth before.
func (b *Block) Render(ind *Indenter) string {
	var out strings.Builder
	for _, s := range b.stmts {
		s.render(b, ind, &out)
	}
	return out.String()
}

func (s declareStmt) render(b *Block, ind *Indenter, out *strings.Builder) {
	typeName := s.typeName
	if typeName == "" {
		typeName = b.syn.Var
	}
	line := typeName + " " + s.name
	if s.value != "" {
		line += " = " + s.value
	}
	out.WriteString(ind.Line(line + b.syn.Terminator))
	out.WriteByte('\n')
}

func (s assignStmt) render(b *Block, ind *Indenter, out *strings.Builder) {
	out.WriteString(ind.Line(s.target + " = " + s.value + b.syn.Terminator))
	out.WriteByte('\n')
}

func (s compoundAssignStmt) render(b *Block, ind *Indenter, out *strings.Builder) {
	out.WriteString(ind.Line(s.target + " " + s.op + " " + s.value + b.syn.Terminator))
	out.WriteByte('\n')
}

func (s callStmt) render(b *Block, ind *Indenter, out *strings.Builder) {
	out.WriteString(ind.Line(s.expr + "(" + strings.Join(s.args, ", ") + ")" + b.syn.Terminator))
	out.WriteByte('\n')
}

func (s callAssignStmt) render(b *Block, ind *Indenter, out *strings.Builder) {
	out.WriteString(ind.Line(s.target + " = " + s.expr + "(" + strings.Join(s.args, ", ") + ")" + b.syn.Terminator))
	out.WriteByte('\n')
}

func (s returnStmt) render(b *Block, ind *Indenter, out *strings.Builder) {
	line := b.syn.Return
	if s.expr != "" {
		line += " " + s.expr
	}
	out.WriteString(ind.Line(line + b.syn.Terminator))
	out.WriteByte('\n')
}

func (s ifStmt) render(b *Block, ind *Indenter, out *strings.Builder) {
	out.WriteString(ind.Line(b.syn.If + " (" + s.cond + ")"))
	out.WriteByte('\n')
	renderBraced(b, ind, out, s.then)
	if s.els != nil {
		out.WriteString(ind.Line(b.syn.Else))
		out.WriteByte('\n')
		renderBraced(b, ind, out, s.els)
	}
}

func (s forEachStmt) render(b *Block, ind *Indenter, out *strings.Builder) {
	elemType := s.elemType
	if elemType == "" {
		elemType = b.syn.Var
	}
	out.WriteString(ind.Line(b.syn.ForEach + " (" + elemType + " " + s.name + " " + b.syn.In + " " + s.source + ")"))
	out.WriteByte('\n')
	renderBraced(b, ind, out, s.body)
}

func (s forStmt) render(b *Block, ind *Indenter, out *strings.Builder) {
	out.WriteString(ind.Line(b.syn.For + " (" + s.init + "; " + s.cond + "; " + s.post + ")"))
	out.WriteByte('\n')
	renderBraced(b, ind, out, s.body)
}

func (s rawStmt) render(_ *Block, ind *Indenter, out *strings.Builder) {
	out.WriteString(ind.Line(s.line))
	out.WriteByte('\n')
}

// renderBraced renders a freshly configured nested block between braces,
// pushing the indent for the interior and popping it afterwards.
func renderBraced(b *Block, ind *Indenter, out *strings.Builder, configure func(*Block)) {
	out.WriteString(ind.Line("{"))
	out.WriteByte('\n')
	ind.Push()
	if configure != nil {
		nested := newBlock(b.syn)
		configure(nested)
		out.WriteString(nested.Render(ind))
	}
	ind.Pop()
	out.WriteString(ind.Line("}"))
	out.WriteByte('\n')
}
