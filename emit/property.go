package emit

import (
	"strings"

	"github.com/sharpgen/sharpen/syntax"
)

// Property builds a property declaration. Exactly one body style applies at
// render: auto accessors (the default), an expression body, or full accessor
// blocks. Combining an expression body with an explicit accessor body is a
// render-time error.
type Property struct {
	syn      *syntax.Table
	name     string
	typ      TypeRef
	vis      Visibility
	static   bool
	virtual  bool
	override bool

	getter bool
	setter bool
	getVis *Visibility
	setVis *Visibility

	expression string
	getBody    func(*Block)
	setBody    func(*Block)

	doc   *XmlDoc
	attrs []*Attribute
}

// NewProperty returns a property builder for standalone use. Properties
// default to public visibility with auto get and set accessors.
func NewProperty(name string, typ TypeRef) *Property {
	return newProperty(syntax.CSharp(), name, typ)
}

func newProperty(syn *syntax.Table, name string, typ TypeRef) *Property {
	return &Property{syn: syn, name: name, typ: typ, vis: Public, getter: true, setter: true}
}

// Visibility sets the property visibility.
func (p *Property) Visibility(v Visibility) *Property {
	p.vis = v
	return p
}

// Static toggles the static modifier.
func (p *Property) Static(set ...bool) *Property {
	p.static = on(set)
	return p
}

// Virtual toggles the virtual modifier.
func (p *Property) Virtual(set ...bool) *Property {
	p.virtual = on(set)
	return p
}

// Override toggles the override modifier.
func (p *Property) Override(set ...bool) *Property {
	p.override = on(set)
	return p
}

// Getter toggles the presence of the get accessor.
func (p *Property) Getter(set ...bool) *Property {
	p.getter = on(set)
	return p
}

// Setter toggles the presence of the set accessor.
func (p *Property) Setter(set ...bool) *Property {
	p.setter = on(set)
	return p
}

// GetterVisibility narrows the get accessor visibility.
func (p *Property) GetterVisibility(v Visibility) *Property {
	p.getVis = &v
	return p
}

// SetterVisibility narrows the set accessor visibility.
func (p *Property) SetterVisibility(v Visibility) *Property {
	p.setVis = &v
	return p
}

// Expression sets an expression body, captured verbatim.
func (p *Property) Expression(expr string) *Property {
	p.expression = expr
	return p
}

// GetBody configures a full get accessor block.
func (p *Property) GetBody(configure func(*Block)) *Property {
	p.getBody = configure
	return p
}

// SetBody configures a full set accessor block.
func (p *Property) SetBody(configure func(*Block)) *Property {
	p.setBody = configure
	return p
}

// Doc configures the property documentation.
func (p *Property) Doc(configure func(*XmlDoc)) *Property {
	if p.doc == nil {
		p.doc = newXmlDoc(p.syn)
	}
	configure(p.doc)
	return p
}

// Attribute adds an attribute line above the property.
func (p *Property) Attribute(name string, args ...string) *Property {
	p.attrs = append(p.attrs, NewAttribute(name, args...))
	return p
}

func (p *Property) category() memberCategory { return categoryProperty }

// Render emits the property declaration at the given indentation.
func (p *Property) Render(ind *Indenter) (string, error) {
	if p.expression != "" && (p.getBody != nil || p.setBody != nil) {
		return "", NewConflictingPropertyBodyError(p.name)
	}
	var out strings.Builder
	renderPreamble(&out, ind, p.doc, p.attrs)

	var virtual, override string
	if p.virtual {
		virtual = p.syn.Virtual
	}
	if p.override {
		override = p.syn.Override
	}
	var static string
	if p.static {
		static = p.syn.Static
	}
	signature := joinWords(p.vis.keyword(p.syn), static, virtual, override, p.typ.String(), p.name)

	switch {
	case p.expression != "":
		out.WriteString(ind.Line(signature + " => " + p.expression + p.syn.Terminator))
		out.WriteByte('\n')
	case p.getBody != nil || p.setBody != nil:
		out.WriteString(ind.Line(signature))
		out.WriteByte('\n')
		out.WriteString(ind.Line("{"))
		out.WriteByte('\n')
		ind.Push()
		if p.getBody != nil {
			out.WriteString(ind.Line(p.accessor(p.getVis, p.syn.Get)))
			out.WriteByte('\n')
			renderBody(&out, ind, p.syn, p.getBody)
		}
		if p.setBody != nil {
			out.WriteString(ind.Line(p.accessor(p.setVis, p.syn.Set)))
			out.WriteByte('\n')
			renderBody(&out, ind, p.syn, p.setBody)
		}
		ind.Pop()
		out.WriteString(ind.Line("}"))
		out.WriteByte('\n')
	default:
		accessors := make([]string, 0, 2)
		if p.getter {
			accessors = append(accessors, p.accessor(p.getVis, p.syn.Get)+p.syn.Terminator)
		}
		if p.setter {
			accessors = append(accessors, p.accessor(p.setVis, p.syn.Set)+p.syn.Terminator)
		}
		out.WriteString(ind.Line(signature + " { " + strings.Join(accessors, " ") + " }"))
		out.WriteByte('\n')
	}
	return out.String(), nil
}

// accessor renders one accessor keyword with its optional narrowed
// visibility.
func (p *Property) accessor(vis *Visibility, keyword string) string {
	if vis == nil {
		return keyword
	}
	return vis.keyword(p.syn) + " " + keyword
}
