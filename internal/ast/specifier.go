package ast

import "esfmt/internal/source"

// SpecKind tags the specifier variants.
type SpecKind uint8

const (
	ImportSpec SpecKind = iota
	ImportDefaultSpec
	ImportNamespaceSpec
	ExportSpec
	ExportDefaultSpec
	ExportNamespaceSpec
)

func (k SpecKind) String() string {
	switch k {
	case ImportSpec:
		return "ImportSpecifier"
	case ImportDefaultSpec:
		return "ImportDefaultSpecifier"
	case ImportNamespaceSpec:
		return "ImportNamespaceSpecifier"
	case ExportSpec:
		return "ExportSpecifier"
	case ExportDefaultSpec:
		return "ExportDefaultSpecifier"
	case ExportNamespaceSpec:
		return "ExportNamespaceSpecifier"
	}
	return "unknown"
}

// Name is an identifier or string literal appearing as a specifier name, a
// module source, or an attribute key/value.
type Name struct {
	Span source.Span
	// Str marks a string literal; identifiers leave it false.
	Str bool
	// Value is the identifier name or the string literal's cooked value.
	Value string
	// Raw is the literal's source spelling including quotes. Empty for
	// identifiers and for literals whose parse omitted raw text.
	Raw string
}

// Specifier is one entry of a declaration's specifier list.
type Specifier struct {
	Kind SpecKind
	Span source.Span

	// Local is the binding name on the importing side. Set for every kind.
	Local *Name
	// Imported is the source-module name of an ImportSpecifier.
	Imported *Name
	// Exported is the external name of an ExportSpecifier or the alias of
	// an ExportNamespaceSpecifier.
	Exported *Name

	// ValueKind is the specifier's own type/typeof modifier, distinct from
	// the declaration-level kind.
	ValueKind ValueKind

	// Comments attached to this specifier by the comment-attachment stage.
	Comments []source.Comment
}
