// gen is a codegen cmd for generating the keyword token constants in tokens.go.
package main

import (
	"log"
	"sort"

	"github.com/dave/jennifer/jen"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// keywords lists every C# keyword the emitter renders. The constant name is
// derived from the keyword itself, so KwForeach maps to "foreach".
var keywords = []string{
	"abstract", "base", "class", "const", "else", "for", "foreach",
	"get", "if", "in", "internal", "namespace", "override", "partial",
	"private", "protected", "public", "readonly", "return", "sealed",
	"set", "static", "struct", "this", "using", "var", "virtual",
	"void", "where",
}

func main() {
	sort.Strings(keywords)
	titleCaser := cases.Title(language.English)

	f := jen.NewFile("syntax")
	f.HeaderComment(`Code generated by "go run ./internal". DO NOT EDIT.`)
	f.Comment("Keyword tokens of the C# grammar used by the emitter.")
	f.Const().DefsFunc(func(g *jen.Group) {
		for _, kw := range keywords {
			g.Id("Kw" + titleCaser.String(kw)).Op("=").Lit(kw)
		}
	})

	if err := f.Save("tokens.go"); err != nil {
		log.Fatal("writing go file:", err)
	}
}
