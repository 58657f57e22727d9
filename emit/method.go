package emit

import (
	"strings"

	"github.com/sharpgen/sharpen/syntax"
)

// Method builds a method declaration. Methods default to public visibility
// and a void return type.
type Method struct {
	syn         *syntax.Table
	name        string
	returns     TypeRef
	vis         Visibility
	static      bool
	virtual     bool
	override    bool
	abstract    bool
	partial     bool
	params      []Param
	typeParams  []string
	constraints []constraint
	body        func(*Block)
	doc         *XmlDoc
	attrs       []*Attribute
}

// NewMethod returns a method builder for standalone use.
func NewMethod(name string) *Method {
	return newMethod(syntax.CSharp(), name)
}

func newMethod(syn *syntax.Table, name string) *Method {
	return &Method{syn: syn, name: name, vis: Public}
}

// Visibility sets the method visibility.
func (m *Method) Visibility(v Visibility) *Method {
	m.vis = v
	return m
}

// Returns sets the return type. The zero TypeRef renders as void.
func (m *Method) Returns(typ TypeRef) *Method {
	m.returns = typ
	return m
}

// Static toggles the static modifier.
func (m *Method) Static(set ...bool) *Method {
	m.static = on(set)
	return m
}

// Virtual toggles the virtual modifier.
func (m *Method) Virtual(set ...bool) *Method {
	m.virtual = on(set)
	return m
}

// Override toggles the override modifier.
func (m *Method) Override(set ...bool) *Method {
	m.override = on(set)
	return m
}

// Abstract toggles the abstract modifier. An abstract method renders as a
// terminated signature without a body.
func (m *Method) Abstract(set ...bool) *Method {
	m.abstract = on(set)
	return m
}

// Partial toggles the partial modifier. A partial method without a
// configured body renders as a terminated signature.
func (m *Method) Partial(set ...bool) *Method {
	m.partial = on(set)
	return m
}

// Param appends a parameter.
func (m *Method) Param(typ TypeRef, name string) *Method {
	m.params = append(m.params, Param{Type: typ, Name: name})
	return m
}

// Params appends several parameters in order.
func (m *Method) Params(params ...Param) *Method {
	m.params = append(m.params, params...)
	return m
}

// TypeParam appends a generic type parameter.
func (m *Method) TypeParam(name string) *Method {
	m.typeParams = append(m.typeParams, name)
	return m
}

// Constraint appends a constraint clause for the named type parameter. The
// expression is captured verbatim; supply one combined expression per
// parameter.
func (m *Method) Constraint(param, expr string) *Method {
	m.constraints = append(m.constraints, constraint{param: param, expr: expr})
	return m
}

// Body configures the method body. A body configured on an abstract method,
// or on a partial method that stays bodiless, is silently ignored at render.
func (m *Method) Body(configure func(*Block)) *Method {
	m.body = configure
	return m
}

// Doc configures the method documentation.
func (m *Method) Doc(configure func(*XmlDoc)) *Method {
	if m.doc == nil {
		m.doc = newXmlDoc(m.syn)
	}
	configure(m.doc)
	return m
}

// Attribute adds an attribute line above the method.
func (m *Method) Attribute(name string, args ...string) *Method {
	m.attrs = append(m.attrs, NewAttribute(name, args...))
	return m
}

func (m *Method) category() memberCategory { return categoryMethod }

// Render emits the method declaration at the given indentation.
func (m *Method) Render(ind *Indenter) (string, error) {
	var out strings.Builder
	renderPreamble(&out, ind, m.doc, m.attrs)

	var static, virtual, override, abstract, partial string
	if m.static {
		static = m.syn.Static
	}
	if m.virtual {
		virtual = m.syn.Virtual
	}
	if m.override {
		override = m.syn.Override
	}
	if m.abstract {
		abstract = m.syn.Abstract
	}
	if m.partial {
		partial = m.syn.Partial
	}
	returns := m.syn.Void
	if !m.returns.IsZero() {
		returns = m.returns.String()
	}
	name := m.name
	if len(m.typeParams) > 0 {
		name += "<" + strings.Join(m.typeParams, ", ") + ">"
	}
	signature := joinWords(m.vis.keyword(m.syn), static, virtual, override, abstract, partial, returns, name) +
		"(" + renderParams(m.params) + ")"
	for _, c := range m.constraints {
		signature += " " + m.syn.Where + " " + c.param + " : " + c.expr
	}

	if m.abstract || (m.partial && m.body == nil) {
		out.WriteString(ind.Line(signature + m.syn.Terminator))
		out.WriteByte('\n')
		return out.String(), nil
	}
	out.WriteString(ind.Line(signature))
	out.WriteByte('\n')
	renderBody(&out, ind, m.syn, m.body)
	return out.String(), nil
}
