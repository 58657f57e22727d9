// Package model compiles declarative schema documents into emit file
// builders, enabling data-to-code generation: a YAML document describes the
// namespace, usings and containers of a C# source file, and Build turns it
// into a configured emit.File.
package model

import "strings"

// Schema is the root of a schema document.
type Schema struct {
	Namespace string      `yaml:"namespace"`
	Usings    []string    `yaml:"usings"`
	Classes   []ClassDef  `yaml:"classes"`
	Structs   []StructDef `yaml:"structs"`
}

// ClassDef describes one class declaration.
type ClassDef struct {
	Name       string        `yaml:"name"`
	Doc        string        `yaml:"doc"`
	Base       string        `yaml:"base"`
	Abstract   bool          `yaml:"abstract"`
	Sealed     bool          `yaml:"sealed"`
	Partial    bool          `yaml:"partial"`
	Fields     []FieldDef    `yaml:"fields"`
	Properties []PropertyDef `yaml:"properties"`
	Methods    []MethodDef   `yaml:"methods"`
}

// StructDef describes one struct declaration.
type StructDef struct {
	Name       string        `yaml:"name"`
	Doc        string        `yaml:"doc"`
	Fields     []FieldDef    `yaml:"fields"`
	Properties []PropertyDef `yaml:"properties"`
	Methods    []MethodDef   `yaml:"methods"`
}

// FieldDef describes one field. Names may be given in snake_case; they are
// normalized to the target naming convention during build.
type FieldDef struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Static   bool   `yaml:"static"`
	Readonly bool   `yaml:"readonly"`
	Const    bool   `yaml:"const"`
	Value    string `yaml:"value"`
	Doc      string `yaml:"doc"`
}

// PropertyDef describes one auto property.
type PropertyDef struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Doc      string `yaml:"doc"`
	ReadOnly bool   `yaml:"readonly"` // get-only accessor pair
}

// MethodDef describes one method. Body lines are captured verbatim.
type MethodDef struct {
	Name    string     `yaml:"name"`
	Returns string     `yaml:"returns"`
	Doc     string     `yaml:"doc"`
	Params  []ParamDef `yaml:"params"`
	Body    []string   `yaml:"body"`
}

// ParamDef describes one method parameter.
type ParamDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Validate checks the structural completeness of the schema: every
// container and member needs a name, and typed members need a type.
func (s *Schema) Validate() error {
	for _, c := range s.Classes {
		if strings.TrimSpace(c.Name) == "" {
			return NewSchemaError("", "", "class requires a name")
		}
		if err := validateMembers(c.Name, c.Fields, c.Properties, c.Methods); err != nil {
			return err
		}
	}
	for _, st := range s.Structs {
		if strings.TrimSpace(st.Name) == "" {
			return NewSchemaError("", "", "struct requires a name")
		}
		if err := validateMembers(st.Name, st.Fields, st.Properties, st.Methods); err != nil {
			return err
		}
	}
	return nil
}

func validateMembers(container string, fields []FieldDef, props []PropertyDef, methods []MethodDef) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Name) == "" {
			return NewSchemaError(container, "", "field requires a name")
		}
		if strings.TrimSpace(f.Type) == "" {
			return NewSchemaError(container, f.Name, "field requires a type")
		}
	}
	for _, p := range props {
		if strings.TrimSpace(p.Name) == "" {
			return NewSchemaError(container, "", "property requires a name")
		}
		if strings.TrimSpace(p.Type) == "" {
			return NewSchemaError(container, p.Name, "property requires a type")
		}
	}
	for _, m := range methods {
		if strings.TrimSpace(m.Name) == "" {
			return NewSchemaError(container, "", "method requires a name")
		}
	}
	return nil
}
