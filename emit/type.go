package emit

import "strings"

// TypeRef is an immutable reference to a (possibly generic) named type.
// The zero value is the empty type, which members render as the target
// language's void keyword where a return type is expected.
type TypeRef struct {
	name string
	args []TypeRef
}

// Type returns a reference to the named type, generic when type arguments
// are given.
func Type(name string, args ...TypeRef) TypeRef {
	return TypeRef{name: name, args: args}
}

// ListOf returns a List<elem> reference.
func ListOf(elem TypeRef) TypeRef {
	return Type("List", elem)
}

// DictOf returns a Dictionary<key, value> reference.
func DictOf(key, value TypeRef) TypeRef {
	return Type("Dictionary", key, value)
}

// Name returns the type name without type arguments.
func (t TypeRef) Name() string {
	return t.name
}

// Args returns the ordered type arguments.
func (t TypeRef) Args() []TypeRef {
	return t.args
}

// IsGeneric reports whether the type has type arguments.
func (t TypeRef) IsGeneric() bool {
	return len(t.args) > 0
}

// IsZero reports whether the reference is the empty type.
func (t TypeRef) IsZero() bool {
	return t.name == "" && len(t.args) == 0
}

// String renders the type recursively, e.g. Dictionary<string, List<int>>.
func (t TypeRef) String() string {
	if !t.IsGeneric() {
		return t.name
	}
	var b strings.Builder
	b.WriteString(t.name)
	b.WriteByte('<')
	for i, arg := range t.args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte('>')
	return b.String()
}
