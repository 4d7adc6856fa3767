package ast

import "esfmt/internal/source"

// File is the decoded module-level view of one parsed source file: the
// import/export declarations this formatter owns, the spans of everything it
// does not, and the file's sorted comment list.
type File struct {
	Span     source.Span
	Decls    []*Declaration
	Opaque   []source.Span
	Comments []source.Comment
}
