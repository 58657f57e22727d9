package emit

import (
	"strings"

	"github.com/sharpgen/sharpen/syntax"
)

// Visibility is a member or container access level.
type Visibility int

const (
	Private Visibility = iota
	Protected
	Internal
	ProtectedInternal
	Public
)

// keyword returns the visibility keyword from the token table.
func (v Visibility) keyword(syn *syntax.Table) string {
	switch v {
	case Private:
		return syn.Private
	case Protected:
		return syn.Protected
	case Internal:
		return syn.Internal
	case ProtectedInternal:
		return syn.ProtectedInternal
	default:
		return syn.Public
	}
}

// Param is one parameter of a constructor or method.
type Param struct {
	Type TypeRef
	Name string
}

// constraint is one type-parameter constraint clause. Multiple constraints
// for the same parameter are not merged; callers supply one combined
// constraint expression per parameter.
type constraint struct {
	param string
	expr  string
}

// memberCategory fixes the canonical member emission order inside a
// container: fields, properties, constructors, methods. Raw members bypass
// the grouping and stay at their insertion index.
type memberCategory int

const (
	categoryField memberCategory = iota
	categoryProperty
	categoryConstructor
	categoryMethod
	categoryRaw
)

// member is a renderable container member.
type member interface {
	category() memberCategory
	Render(ind *Indenter) (string, error)
}

// rawMember is a verbatim line escape hatch. It renders exactly at its
// insertion position relative to the other members.
type rawMember struct {
	line string
}

func (rawMember) category() memberCategory { return categoryRaw }

// Render emits the verbatim line at the current indentation.
func (m rawMember) Render(ind *Indenter) (string, error) {
	return ind.Line(m.line) + "\n", nil
}

// on resolves the optional-boolean of a modifier setter. The variadic form
// lets a fluent chain apply a modifier conditionally without breaking.
func on(v []bool) bool {
	return len(v) == 0 || v[0]
}

// joinWords joins non-empty words with single spaces.
func joinWords(words ...string) string {
	kept := words[:0:0]
	for _, w := range words {
		if w != "" {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// renderPreamble emits the documentation block and attribute lines shared
// by every member kind.
func renderPreamble(out *strings.Builder, ind *Indenter, doc *XmlDoc, attrs []*Attribute) {
	if doc != nil && !doc.Empty() {
		out.WriteString(doc.Render(ind))
	}
	for _, a := range attrs {
		out.WriteString(a.Render(ind))
	}
}

// renderParams renders an ordered parameter list without the surrounding
// parentheses.
func renderParams(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type.String() + " " + p.Name
	}
	return strings.Join(parts, ", ")
}

// renderBody renders a braced member body: opening brace, indented interior
// configured at render time, closing brace.
func renderBody(out *strings.Builder, ind *Indenter, syn *syntax.Table, configure func(*Block)) {
	out.WriteString(ind.Line("{"))
	out.WriteByte('\n')
	ind.Push()
	if configure != nil {
		body := newBlock(syn)
		configure(body)
		out.WriteString(body.Render(ind))
	}
	ind.Pop()
	out.WriteString(ind.Line("}"))
	out.WriteByte('\n')
}
