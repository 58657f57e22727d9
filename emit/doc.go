// Package emit implements the C# source emission engine: a fluent, ordered
// model of a source file (usings, namespace, containers, members, statements,
// XML documentation, attributes) rendered to formatted text in a single
// synchronous pass.
//
// Builders are mutable during configuration; structural invariants are checked
// only when text is produced. One Indenter instance is shared by reference down
// the whole builder tree, so nested rendering deepens and restores indentation
// automatically. Every renderer leaves the indent depth exactly where it found
// it.
//
// All expression text supplied by callers is opaque: the engine is a
// formatting layer, not a language checker.
package emit
