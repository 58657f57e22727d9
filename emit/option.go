package emit

import "github.com/sharpgen/sharpen/syntax"

// Option configures a file builder. Option errors are recorded when the
// option is applied and surfaced at render time.
type Option func(*config) error

type config struct {
	syn    *syntax.Table
	header string
	output string
}

func defaultConfig() config {
	return config{syn: syntax.CSharp()}
}

// WithSyntax sets the target token table.
func WithSyntax(t *syntax.Table) Option {
	return func(c *config) error {
		if t == nil {
			return NewConfigError("Syntax", nil, "token table cannot be nil")
		}
		c.syn = t
		return nil
	}
}

// WithIndentUnit sets the indent unit emitted per depth level.
func WithIndentUnit(unit string) Option {
	return func(c *config) error {
		if unit == "" {
			return NewConfigError("IndentUnit", nil, "indent unit cannot be empty")
		}
		t := *c.syn
		t.IndentUnit = unit
		c.syn = &t
		return nil
	}
}

// WithHeader sets a comment block emitted at the top of the file, before
// the using directives.
func WithHeader(header string) Option {
	return func(c *config) error {
		c.header = header
		return nil
	}
}

// WithOutput sets the default output path used by Save.
func WithOutput(path string) Option {
	return func(c *config) error {
		if path == "" {
			return NewConfigError("Output", nil, "output path cannot be empty")
		}
		c.output = path
		return nil
	}
}
