package model

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// pascal normalizes a schema identifier to PascalCase. snake_case and
// kebab-case names are camelized; already-cased names keep their interior
// casing.
func pascal(name string) string {
	name = strings.ReplaceAll(name, "-", "_")
	if strings.Contains(name, "_") {
		return inflect.Camelize(name)
	}
	return titleCaser.String(name)
}

// camel normalizes a schema identifier to camelCase.
func camel(name string) string {
	name = strings.ReplaceAll(name, "-", "_")
	if strings.Contains(name, "_") {
		return inflect.CamelizeDownFirst(name)
	}
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// backingField returns the conventional backing-field name for a schema
// identifier, e.g. order_count becomes _orderCount.
func backingField(name string) string {
	return "_" + camel(name)
}
