package model

import (
	"strings"

	"github.com/sharpgen/sharpen/emit"
)

// Build compiles the schema into a file builder. Container and member
// names are normalized to PascalCase; instance fields get conventional
// underscore-prefixed camelCase backing names.
func Build(s *Schema, opts ...emit.Option) (*emit.File, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	f := emit.NewFile(opts...)
	f.Using(s.Usings...)
	if s.Namespace != "" {
		f.Namespace(s.Namespace)
	}
	for _, def := range s.Classes {
		c := f.Class(pascal(def.Name))
		if def.Doc != "" {
			doc := def.Doc
			c.Doc(func(d *emit.XmlDoc) { d.Summary(doc) })
		}
		if def.Base != "" {
			c.BaseType(parseType(def.Base))
		}
		c.Abstract(def.Abstract)
		c.Sealed(def.Sealed)
		c.Partial(def.Partial)
		buildMembers(c, def.Fields, def.Properties, def.Methods)
	}
	for _, def := range s.Structs {
		st := f.Struct(pascal(def.Name))
		if def.Doc != "" {
			doc := def.Doc
			st.Doc(func(d *emit.XmlDoc) { d.Summary(doc) })
		}
		buildMembers(st, def.Fields, def.Properties, def.Methods)
	}
	return f, nil
}

func buildMembers(c emit.ContainerBuilder, fields []FieldDef, props []PropertyDef, methods []MethodDef) {
	emit.EachField(c, fields, func(d FieldDef) string {
		if d.Const || d.Static {
			return pascal(d.Name)
		}
		return backingField(d.Name)
	}, func(d FieldDef) emit.TypeRef {
		return parseType(d.Type)
	}, func(d FieldDef, f *emit.Field) {
		f.Static(d.Static)
		f.Readonly(d.Readonly)
		f.Const(d.Const)
		if d.Value != "" {
			f.Value(d.Value)
		}
		if d.Doc != "" {
			f.Doc(func(x *emit.XmlDoc) { x.Summary(d.Doc) })
		}
	})
	emit.EachProperty(c, props, func(d PropertyDef) string {
		return pascal(d.Name)
	}, func(d PropertyDef) emit.TypeRef {
		return parseType(d.Type)
	}, func(d PropertyDef, p *emit.Property) {
		p.Setter(!d.ReadOnly)
		if d.Doc != "" {
			p.Doc(func(x *emit.XmlDoc) { x.Summary(d.Doc) })
		}
	})
	emit.EachMethod(c, methods, func(d MethodDef) string {
		return pascal(d.Name)
	}, func(d MethodDef, m *emit.Method) {
		if d.Returns != "" {
			m.Returns(parseType(d.Returns))
		}
		for _, p := range d.Params {
			m.Param(parseType(p.Type), camel(p.Name))
		}
		if d.Doc != "" {
			m.Doc(func(x *emit.XmlDoc) { x.Summary(d.Doc) })
		}
		if len(d.Body) > 0 {
			body := d.Body
			m.Body(func(b *emit.Block) {
				for _, line := range body {
					b.Raw(line)
				}
			})
		}
	})
}

// parseType parses a type expression of the form Name<Arg, Arg<...>> into a
// type reference. Malformed expressions fall back to an opaque plain name.
func parseType(expr string) emit.TypeRef {
	expr = strings.TrimSpace(expr)
	open := strings.IndexByte(expr, '<')
	if open < 0 {
		return emit.Type(expr)
	}
	if !strings.HasSuffix(expr, ">") {
		return emit.Type(expr)
	}
	name := expr[:open]
	inner := expr[open+1 : len(expr)-1]
	var args []emit.TypeRef
	depth, start := 0, 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, parseType(inner[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return emit.Type(expr)
	}
	args = append(args, parseType(inner[start:]))
	return emit.Type(name, args...)
}
