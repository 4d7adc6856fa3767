// Package format prints ECMAScript import/export declarations as layout
// documents. One Printer serves one file: it holds the file's source window
// and options, and turns each declaration node into a doc.Doc.
//
// Does: keyword presence decisions (from/assert/with/semicolon), specifier
// grouping and shorthand suppression, full declaration assembly.
// Does not: parse source, validate declaration semantics, perform IO, or
// print nested declarations, decorators and declare tokens (those arrive as
// injected hooks).
package format
