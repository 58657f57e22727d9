package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// containerRenderer is a top-level declaration owned by a file.
type containerRenderer interface {
	Render(ind *Indenter) (string, error)
}

// File builds one source file: deduplicated using directives, an optional
// namespace wrapper and an ordered list of container declarations. Render
// is idempotent: it resets the shared indenter and never mutates the
// configuration.
type File struct {
	cfg        config
	err        error // first option error, surfaced at render
	ind        *Indenter
	usings     []string
	seen       map[string]struct{}
	namespace  string
	containers []containerRenderer
}

// NewFile returns a file builder.
func NewFile(opts ...Option) *File {
	f := &File{cfg: defaultConfig(), seen: make(map[string]struct{})}
	for _, opt := range opts {
		if err := opt(&f.cfg); err != nil && f.err == nil {
			f.err = err
		}
	}
	f.ind = NewIndenterUnit(f.cfg.syn.IndentUnit)
	return f
}

// Indenter returns the indenter shared by every builder owned by the file.
func (f *File) Indenter() *Indenter {
	return f.ind
}

// Using adds using directives. Duplicate names are silently ignored;
// rendering sorts the distinct names lexicographically.
func (f *File) Using(names ...string) *File {
	for _, n := range names {
		if _, ok := f.seen[n]; ok {
			continue
		}
		f.seen[n] = struct{}{}
		f.usings = append(f.usings, n)
	}
	return f
}

// Namespace wraps the file's containers in the named namespace. An empty
// name emits the containers unwrapped at top level.
func (f *File) Namespace(ns string) *File {
	f.namespace = ns
	return f
}

// Class adds a class and returns its builder for deferred configuration.
func (f *File) Class(name string) *Class {
	c := newClass(f.cfg.syn, name)
	f.containers = append(f.containers, c)
	return c
}

// AddClass adds a class configured inline and returns the file.
func (f *File) AddClass(name string, configure func(*Class)) *File {
	c := f.Class(name)
	if configure != nil {
		configure(c)
	}
	return f
}

// Struct adds a struct and returns its builder for deferred configuration.
func (f *File) Struct(name string) *Struct {
	s := newStruct(f.cfg.syn, name)
	f.containers = append(f.containers, s)
	return s
}

// AddStruct adds a struct configured inline and returns the file.
func (f *File) AddStruct(name string, configure func(*Struct)) *File {
	s := f.Struct(name)
	if configure != nil {
		configure(s)
	}
	return f
}

// Render emits the complete file. Calling it twice without intervening
// configuration changes yields identical output.
func (f *File) Render() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.ind.Reset()
	var out strings.Builder

	if f.cfg.header != "" {
		out.WriteString(f.cfg.header)
		if !strings.HasSuffix(f.cfg.header, "\n") {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}

	if len(f.usings) > 0 {
		sorted := make([]string, len(f.usings))
		copy(sorted, f.usings)
		sort.Strings(sorted)
		for _, u := range sorted {
			out.WriteString(f.cfg.syn.Using + " " + u + f.cfg.syn.Terminator)
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}

	wrapped := f.namespace != ""
	if wrapped {
		out.WriteString(f.cfg.syn.Namespace + " " + f.namespace)
		out.WriteByte('\n')
		out.WriteString("{")
		out.WriteByte('\n')
		f.ind.Push()
	}
	for i, c := range f.containers {
		if i > 0 {
			out.WriteByte('\n')
		}
		text, err := c.Render(f.ind)
		if err != nil {
			return "", err
		}
		out.WriteString(text)
	}
	if wrapped {
		f.ind.Pop()
		out.WriteString("}")
		out.WriteByte('\n')
	}
	return out.String(), nil
}

// Save renders the file and writes it to the configured output path,
// creating missing parent directories.
func (f *File) Save() error {
	if f.err != nil {
		return f.err
	}
	if f.cfg.output == "" {
		return NewConfigError("Output", nil, "no output path configured")
	}
	return f.SaveAs(f.cfg.output)
}

// SaveAs renders the file and writes it to the given path, ignoring the
// configured output path.
func (f *File) SaveAs(path string) error {
	text, err := f.Render()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
