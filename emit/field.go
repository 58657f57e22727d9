package emit

import (
	"strings"

	"github.com/sharpgen/sharpen/syntax"
)

// Field builds a field declaration. Fields default to private visibility,
// the most restrictive level.
type Field struct {
	syn      *syntax.Table
	name     string
	typ      TypeRef
	vis      Visibility
	static   bool
	readonly bool
	constant bool
	value    string
	doc      *XmlDoc
	attrs    []*Attribute
}

// NewField returns a field builder for standalone use.
func NewField(name string, typ TypeRef) *Field {
	return newField(syntax.CSharp(), name, typ)
}

func newField(syn *syntax.Table, name string, typ TypeRef) *Field {
	return &Field{syn: syn, name: name, typ: typ, vis: Private}
}

// Visibility sets the field visibility.
func (f *Field) Visibility(v Visibility) *Field {
	f.vis = v
	return f
}

// Static toggles the static modifier.
func (f *Field) Static(set ...bool) *Field {
	f.static = on(set)
	return f
}

// Readonly toggles the readonly modifier.
func (f *Field) Readonly(set ...bool) *Field {
	f.readonly = on(set)
	return f
}

// Const toggles the const modifier. Const implies static, so the static
// keyword is never rendered alongside it. A const field must be given a
// non-blank Value before render.
func (f *Field) Const(set ...bool) *Field {
	f.constant = on(set)
	return f
}

// Value sets the initializer expression, captured verbatim.
func (f *Field) Value(expr string) *Field {
	f.value = expr
	return f
}

// Doc configures the field documentation.
func (f *Field) Doc(configure func(*XmlDoc)) *Field {
	if f.doc == nil {
		f.doc = newXmlDoc(f.syn)
	}
	configure(f.doc)
	return f
}

// Attribute adds an attribute line above the field.
func (f *Field) Attribute(name string, args ...string) *Field {
	f.attrs = append(f.attrs, NewAttribute(name, args...))
	return f
}

func (f *Field) category() memberCategory { return categoryField }

// Render emits the field declaration at the given indentation.
func (f *Field) Render(ind *Indenter) (string, error) {
	if f.constant && strings.TrimSpace(f.value) == "" {
		return "", NewMissingConstInitializerError(f.name)
	}
	var out strings.Builder
	renderPreamble(&out, ind, f.doc, f.attrs)

	var modifier, readonly string
	switch {
	case f.constant:
		modifier = f.syn.Const
	case f.static:
		modifier = f.syn.Static
	}
	if f.readonly && !f.constant {
		readonly = f.syn.Readonly
	}
	line := joinWords(f.vis.keyword(f.syn), modifier, readonly, f.typ.String(), f.name)
	if f.value != "" {
		line += " = " + f.value
	}
	out.WriteString(ind.Line(line + f.syn.Terminator))
	out.WriteByte('\n')
	return out.String(), nil
}
