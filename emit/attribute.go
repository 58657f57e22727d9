package emit

import "strings"

// Attribute is a bracketed annotation placed above a declaration, rendered
// as [Name] or [Name(arg1, arg2)] with arguments in append order.
type Attribute struct {
	name string
	args []string
}

// NewAttribute returns an attribute with the given name.
func NewAttribute(name string, args ...string) *Attribute {
	return &Attribute{name: name, args: args}
}

// Arg appends an argument, captured verbatim.
func (a *Attribute) Arg(arg string) *Attribute {
	a.args = append(a.args, arg)
	return a
}

// Render emits the attribute as a single indented line.
func (a *Attribute) Render(ind *Indenter) string {
	if len(a.args) == 0 {
		return ind.Line("["+a.name+"]") + "\n"
	}
	return ind.Line("["+a.name+"("+strings.Join(a.args, ", ")+")]") + "\n"
}
