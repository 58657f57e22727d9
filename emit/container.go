package emit

import (
	"strings"

	"github.com/sharpgen/sharpen/syntax"
)

type containerKind int

const (
	kindClass containerKind = iota
	kindStruct
)

// container carries the shared state of the class and struct builders.
type container struct {
	syn         *syntax.Table
	kind        containerKind
	name        string
	vis         Visibility
	static      bool
	abstract    bool
	sealed      bool
	partial     bool
	typeParams  []string
	constraints []constraint
	base        *TypeRef
	members     []member
	doc         *XmlDoc
	attrs       []*Attribute
}

func newContainer(syn *syntax.Table, kind containerKind, name string) container {
	return container{syn: syn, kind: kind, name: name, vis: Public}
}

func (c *container) field(name string, typ TypeRef) *Field {
	f := newField(c.syn, name, typ)
	c.members = append(c.members, f)
	return f
}

func (c *container) property(name string, typ TypeRef) *Property {
	p := newProperty(c.syn, name, typ)
	c.members = append(c.members, p)
	return p
}

func (c *container) constructor() *Constructor {
	ctor := newConstructor(c.syn, c.name, c.kind)
	c.members = append(c.members, ctor)
	return ctor
}

func (c *container) method(name string) *Method {
	m := newMethod(c.syn, name)
	c.members = append(c.members, m)
	return m
}

func (c *container) raw(line string) {
	c.members = append(c.members, rawMember{line: line})
}

// orderedMembers regroups the members into the canonical category order
// (fields, properties, constructors, methods) while keeping every raw member
// pinned at its literal insertion index.
func (c *container) orderedMembers() []member {
	ordered := make([]member, len(c.members))
	var grouped []member
	for cat := categoryField; cat <= categoryMethod; cat++ {
		for _, m := range c.members {
			if m.category() == cat {
				grouped = append(grouped, m)
			}
		}
	}
	next := 0
	for i, m := range c.members {
		if m.category() == categoryRaw {
			ordered[i] = m
		}
	}
	for i := range ordered {
		if ordered[i] == nil {
			ordered[i] = grouped[next]
			next++
		}
	}
	return ordered
}

// render emits the container declaration block.
func (c *container) render(ind *Indenter) (string, error) {
	var out strings.Builder
	renderPreamble(&out, ind, c.doc, c.attrs)

	var static, abstract, sealed, partial string
	if c.static {
		static = c.syn.Static
	}
	if c.abstract {
		abstract = c.syn.Abstract
	}
	if c.sealed {
		sealed = c.syn.Sealed
	}
	if c.partial {
		partial = c.syn.Partial
	}
	kind := c.syn.Class
	if c.kind == kindStruct {
		kind = c.syn.Struct
	}
	name := c.name
	if len(c.typeParams) > 0 {
		name += "<" + strings.Join(c.typeParams, ", ") + ">"
	}
	decl := joinWords(c.vis.keyword(c.syn), static, abstract, sealed, partial, kind, name)
	if c.base != nil {
		decl += " : " + c.base.String()
	}
	for _, con := range c.constraints {
		decl += " " + c.syn.Where + " " + con.param + " : " + con.expr
	}
	out.WriteString(ind.Line(decl))
	out.WriteByte('\n')
	out.WriteString(ind.Line("{"))
	out.WriteByte('\n')
	ind.Push()

	ordered := c.orderedMembers()
	for i, m := range ordered {
		text, err := m.Render(ind)
		if err != nil {
			ind.Pop()
			return "", err
		}
		out.WriteString(text)
		// Trailing blank line after each category group; raw members end
		// no group of their own.
		cat := m.category()
		if cat != categoryRaw && (i == len(ordered)-1 || ordered[i+1].category() != cat) {
			out.WriteByte('\n')
		}
	}

	ind.Pop()
	out.WriteString(ind.Line("}"))
	out.WriteByte('\n')
	return out.String(), nil
}

// Class builds a class declaration.
type Class struct {
	c container
}

// NewClass returns a class builder for standalone use, with public
// visibility and the C# token table.
func NewClass(name string) *Class {
	return &Class{c: newContainer(syntax.CSharp(), kindClass, name)}
}

func newClass(syn *syntax.Table, name string) *Class {
	return &Class{c: newContainer(syn, kindClass, name)}
}

// Name returns the class name.
func (c *Class) Name() string { return c.c.name }

// Visibility sets the class visibility.
func (c *Class) Visibility(v Visibility) *Class {
	c.c.vis = v
	return c
}

// Static toggles the static modifier.
func (c *Class) Static(set ...bool) *Class {
	c.c.static = on(set)
	return c
}

// Abstract toggles the abstract modifier.
func (c *Class) Abstract(set ...bool) *Class {
	c.c.abstract = on(set)
	return c
}

// Sealed toggles the sealed modifier.
func (c *Class) Sealed(set ...bool) *Class {
	c.c.sealed = on(set)
	return c
}

// Partial toggles the partial modifier.
func (c *Class) Partial(set ...bool) *Class {
	c.c.partial = on(set)
	return c
}

// TypeParam appends a generic type parameter.
func (c *Class) TypeParam(name string) *Class {
	c.c.typeParams = append(c.c.typeParams, name)
	return c
}

// Constraint appends a constraint clause for the named type parameter.
func (c *Class) Constraint(param, expr string) *Class {
	c.c.constraints = append(c.c.constraints, constraint{param: param, expr: expr})
	return c
}

// Base sets the base type by name.
func (c *Class) Base(name string) *Class {
	t := Type(name)
	c.c.base = &t
	return c
}

// BaseType sets the base type from a full type reference.
func (c *Class) BaseType(typ TypeRef) *Class {
	c.c.base = &typ
	return c
}

// Doc configures the class documentation.
func (c *Class) Doc(configure func(*XmlDoc)) *Class {
	if c.c.doc == nil {
		c.c.doc = newXmlDoc(c.c.syn)
	}
	configure(c.c.doc)
	return c
}

// Attribute adds an attribute line above the class.
func (c *Class) Attribute(name string, args ...string) *Class {
	c.c.attrs = append(c.c.attrs, NewAttribute(name, args...))
	return c
}

// Field adds a field and returns its builder for deferred configuration.
func (c *Class) Field(name string, typ TypeRef) *Field {
	return c.c.field(name, typ)
}

// AddField adds a field configured inline and returns the class.
func (c *Class) AddField(name string, typ TypeRef, configure func(*Field)) *Class {
	f := c.c.field(name, typ)
	if configure != nil {
		configure(f)
	}
	return c
}

// Property adds a property and returns its builder for deferred
// configuration.
func (c *Class) Property(name string, typ TypeRef) *Property {
	return c.c.property(name, typ)
}

// AddProperty adds a property configured inline and returns the class.
func (c *Class) AddProperty(name string, typ TypeRef, configure func(*Property)) *Class {
	p := c.c.property(name, typ)
	if configure != nil {
		configure(p)
	}
	return c
}

// Constructor adds a constructor and returns its builder for deferred
// configuration.
func (c *Class) Constructor() *Constructor {
	return c.c.constructor()
}

// AddConstructor adds a constructor configured inline and returns the class.
func (c *Class) AddConstructor(configure func(*Constructor)) *Class {
	ctor := c.c.constructor()
	if configure != nil {
		configure(ctor)
	}
	return c
}

// Method adds a method and returns its builder for deferred configuration.
func (c *Class) Method(name string) *Method {
	return c.c.method(name)
}

// AddMethod adds a method configured inline and returns the class.
func (c *Class) AddMethod(name string, configure func(*Method)) *Class {
	m := c.c.method(name)
	if configure != nil {
		configure(m)
	}
	return c
}

// Raw adds a verbatim member line kept at its insertion position.
func (c *Class) Raw(line string) *Class {
	c.c.raw(line)
	return c
}

// Render emits the class declaration block at the given indentation.
func (c *Class) Render(ind *Indenter) (string, error) {
	return c.c.render(ind)
}

// Struct builds a struct declaration. Structs have no base type and their
// explicit constructors must declare at least one parameter.
type Struct struct {
	c container
}

// NewStruct returns a struct builder for standalone use, with public
// visibility and the C# token table.
func NewStruct(name string) *Struct {
	return &Struct{c: newContainer(syntax.CSharp(), kindStruct, name)}
}

func newStruct(syn *syntax.Table, name string) *Struct {
	return &Struct{c: newContainer(syn, kindStruct, name)}
}

// Name returns the struct name.
func (s *Struct) Name() string { return s.c.name }

// Visibility sets the struct visibility.
func (s *Struct) Visibility(v Visibility) *Struct {
	s.c.vis = v
	return s
}

// Partial toggles the partial modifier.
func (s *Struct) Partial(set ...bool) *Struct {
	s.c.partial = on(set)
	return s
}

// TypeParam appends a generic type parameter.
func (s *Struct) TypeParam(name string) *Struct {
	s.c.typeParams = append(s.c.typeParams, name)
	return s
}

// Constraint appends a constraint clause for the named type parameter.
func (s *Struct) Constraint(param, expr string) *Struct {
	s.c.constraints = append(s.c.constraints, constraint{param: param, expr: expr})
	return s
}

// Doc configures the struct documentation.
func (s *Struct) Doc(configure func(*XmlDoc)) *Struct {
	if s.c.doc == nil {
		s.c.doc = newXmlDoc(s.c.syn)
	}
	configure(s.c.doc)
	return s
}

// Attribute adds an attribute line above the struct.
func (s *Struct) Attribute(name string, args ...string) *Struct {
	s.c.attrs = append(s.c.attrs, NewAttribute(name, args...))
	return s
}

// Field adds a field and returns its builder for deferred configuration.
func (s *Struct) Field(name string, typ TypeRef) *Field {
	return s.c.field(name, typ)
}

// AddField adds a field configured inline and returns the struct.
func (s *Struct) AddField(name string, typ TypeRef, configure func(*Field)) *Struct {
	f := s.c.field(name, typ)
	if configure != nil {
		configure(f)
	}
	return s
}

// Property adds a property and returns its builder for deferred
// configuration.
func (s *Struct) Property(name string, typ TypeRef) *Property {
	return s.c.property(name, typ)
}

// AddProperty adds a property configured inline and returns the struct.
func (s *Struct) AddProperty(name string, typ TypeRef, configure func(*Property)) *Struct {
	p := s.c.property(name, typ)
	if configure != nil {
		configure(p)
	}
	return s
}

// Constructor adds a constructor and returns its builder for deferred
// configuration.
func (s *Struct) Constructor() *Constructor {
	return s.c.constructor()
}

// AddConstructor adds a constructor configured inline and returns the
// struct.
func (s *Struct) AddConstructor(configure func(*Constructor)) *Struct {
	ctor := s.c.constructor()
	if configure != nil {
		configure(ctor)
	}
	return s
}

// Method adds a method and returns its builder for deferred configuration.
func (s *Struct) Method(name string) *Method {
	return s.c.method(name)
}

// AddMethod adds a method configured inline and returns the struct.
func (s *Struct) AddMethod(name string, configure func(*Method)) *Struct {
	m := s.c.method(name)
	if configure != nil {
		configure(m)
	}
	return s
}

// Raw adds a verbatim member line kept at its insertion position.
func (s *Struct) Raw(line string) *Struct {
	s.c.raw(line)
	return s
}

// Render emits the struct declaration block at the given indentation.
func (s *Struct) Render(ind *Indenter) (string, error) {
	return s.c.render(ind)
}
