package emit

import (
	"strings"

	"github.com/sharpgen/sharpen/syntax"
)

// Constructor builds a constructor declaration for its owning container.
// At most one chain call is emitted; when both a base call and a this call
// are configured, the base call wins.
type Constructor struct {
	syn       *syntax.Table
	owner     string
	ownerKind containerKind
	vis       Visibility
	params    []Param
	baseArgs  []string
	thisArgs  []string
	chainBase bool
	chainThis bool
	body      func(*Block)
	doc       *XmlDoc
	attrs     []*Attribute
}

// NewConstructor returns a constructor builder for the named type, for
// standalone use.
func NewConstructor(owner string) *Constructor {
	return newConstructor(syntax.CSharp(), owner, kindClass)
}

func newConstructor(syn *syntax.Table, owner string, kind containerKind) *Constructor {
	return &Constructor{syn: syn, owner: owner, ownerKind: kind, vis: Public}
}

// Visibility sets the constructor visibility.
func (c *Constructor) Visibility(v Visibility) *Constructor {
	c.vis = v
	return c
}

// Param appends a parameter.
func (c *Constructor) Param(typ TypeRef, name string) *Constructor {
	c.params = append(c.params, Param{Type: typ, Name: name})
	return c
}

// Params appends several parameters in order.
func (c *Constructor) Params(params ...Param) *Constructor {
	c.params = append(c.params, params...)
	return c
}

// BaseCall chains to a base-type constructor with the given arguments.
func (c *Constructor) BaseCall(args ...string) *Constructor {
	c.chainBase = true
	c.baseArgs = args
	return c
}

// ThisCall chains to a sibling constructor overload with the given
// arguments. Ignored when a base call is also configured.
func (c *Constructor) ThisCall(args ...string) *Constructor {
	c.chainThis = true
	c.thisArgs = args
	return c
}

// Body configures the constructor body.
func (c *Constructor) Body(configure func(*Block)) *Constructor {
	c.body = configure
	return c
}

// Doc configures the constructor documentation.
func (c *Constructor) Doc(configure func(*XmlDoc)) *Constructor {
	if c.doc == nil {
		c.doc = newXmlDoc(c.syn)
	}
	configure(c.doc)
	return c
}

// Attribute adds an attribute line above the constructor.
func (c *Constructor) Attribute(name string, args ...string) *Constructor {
	c.attrs = append(c.attrs, NewAttribute(name, args...))
	return c
}

func (c *Constructor) category() memberCategory { return categoryConstructor }

// Render emits the constructor declaration at the given indentation.
func (c *Constructor) Render(ind *Indenter) (string, error) {
	if c.ownerKind == kindStruct && len(c.params) == 0 {
		return "", NewParameterlessStructConstructorError(c.owner)
	}
	var out strings.Builder
	renderPreamble(&out, ind, c.doc, c.attrs)

	line := c.vis.keyword(c.syn) + " " + c.owner + "(" + renderParams(c.params) + ")"
	switch {
	case c.chainBase:
		line += " : " + c.syn.Base + "(" + strings.Join(c.baseArgs, ", ") + ")"
	case c.chainThis:
		line += " : " + c.syn.This + "(" + strings.Join(c.thisArgs, ", ") + ")"
	}
	out.WriteString(ind.Line(line))
	out.WriteByte('\n')
	renderBody(&out, ind, c.syn, c.body)
	return out.String(), nil
}
