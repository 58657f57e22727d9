package emit

import (
	"strings"

	"github.com/sharpgen/sharpen/syntax"
)

// docKind identifies one XML documentation fragment family. The ordinal
// value fixes the canonical emission order.
type docKind int

const (
	docSummary docKind = iota
	docRemarks
	docTypeParam
	docParam
	docReturns
	docException
)

// tag returns the XML tag name of the kind.
func (k docKind) tag() string {
	switch k {
	case docSummary:
		return "summary"
	case docRemarks:
		return "remarks"
	case docTypeParam:
		return "typeparam"
	case docParam:
		return "param"
	case docReturns:
		return "returns"
	default:
		return "exception"
	}
}

// attr returns the XML attribute carrying the fragment's reference, or ""
// for unattributed kinds.
func (k docKind) attr() string {
	switch k {
	case docTypeParam, docParam:
		return "name"
	case docException:
		return "cref"
	default:
		return ""
	}
}

type docFragment struct {
	kind docKind
	ref  string // name or cref attribute value
	text string
}

// XmlDoc builds an XML documentation comment block. Fragments may be added
// in any order; emission follows the canonical order summary, remarks,
// typeparams, params, returns, exceptions, with insertion order preserved
// inside each repeated kind.
type XmlDoc struct {
	syn     *syntax.Table
	inherit bool
	frags   []docFragment
}

// NewXmlDoc returns an empty documentation builder using the C# token table.
func NewXmlDoc() *XmlDoc {
	return newXmlDoc(syntax.CSharp())
}

func newXmlDoc(syn *syntax.Table) *XmlDoc {
	return &XmlDoc{syn: syn}
}

// Summary adds a summary fragment.
func (d *XmlDoc) Summary(text string) *XmlDoc {
	return d.add(docSummary, "", text)
}

// Remarks adds a remarks fragment.
func (d *XmlDoc) Remarks(text string) *XmlDoc {
	return d.add(docRemarks, "", text)
}

// TypeParam adds a type parameter fragment.
func (d *XmlDoc) TypeParam(name, text string) *XmlDoc {
	return d.add(docTypeParam, name, text)
}

// Param adds a parameter fragment.
func (d *XmlDoc) Param(name, text string) *XmlDoc {
	return d.add(docParam, name, text)
}

// Returns adds a returns fragment.
func (d *XmlDoc) Returns(text string) *XmlDoc {
	return d.add(docReturns, "", text)
}

// Exception adds an exception fragment referencing the thrown type.
func (d *XmlDoc) Exception(cref, text string) *XmlDoc {
	return d.add(docException, cref, text)
}

// Inherit marks the documentation as inherited. It is a short-circuit: a
// single inherited-documentation line is emitted and every added fragment
// is suppressed.
func (d *XmlDoc) Inherit() *XmlDoc {
	d.inherit = true
	return d
}

// Empty reports whether rendering would produce no output.
func (d *XmlDoc) Empty() bool {
	return !d.inherit && len(d.frags) == 0
}

func (d *XmlDoc) add(kind docKind, ref, text string) *XmlDoc {
	d.frags = append(d.frags, docFragment{kind: kind, ref: ref, text: text})
	return d
}

// Render emits the documentation block, one comment line per output line.
func (d *XmlDoc) Render(ind *Indenter) string {
	var out strings.Builder
	if d.inherit {
		d.line(&out, ind, d.syn.InheritDoc)
		return out.String()
	}
	for kind := docSummary; kind <= docException; kind++ {
		for _, f := range d.frags {
			if f.kind == kind {
				d.fragment(&out, ind, f)
			}
		}
	}
	return out.String()
}

func (d *XmlDoc) fragment(out *strings.Builder, ind *Indenter, f docFragment) {
	open := "<" + f.kind.tag()
	if attr := f.kind.attr(); attr != "" {
		open += " " + attr + `="` + f.ref + `"`
	}
	open += ">"
	closing := "</" + f.kind.tag() + ">"

	lines := strings.Split(f.text, "\n")
	// Attributed fragments collapse to a single inline line when the
	// content does.
	if f.kind.attr() != "" && len(lines) == 1 {
		d.line(out, ind, open+f.text+closing)
		return
	}
	d.line(out, ind, open)
	for _, l := range lines {
		d.line(out, ind, l)
	}
	d.line(out, ind, closing)
}

func (d *XmlDoc) line(out *strings.Builder, ind *Indenter, content string) {
	out.WriteString(ind.Line(d.syn.DocPrefix + content))
	out.WriteByte('\n')
}
