// Package ast defines the module-declaration subset of an ESTree/Babel AST.
// Nodes are decoded from parser JSON output; this package never parses
// ECMAScript source itself. All nodes are read-only after decoding.
package ast

import "esfmt/internal/source"

// DeclKind tags the declaration variants this formatter owns.
type DeclKind uint8

const (
	ImportDecl DeclKind = iota
	ExportNamedDecl
	ExportDefaultDecl
	ExportAllDecl
	DeclareExportDecl
	DeclareExportAllDecl
)

func (k DeclKind) String() string {
	switch k {
	case ImportDecl:
		return "ImportDeclaration"
	case ExportNamedDecl:
		return "ExportNamedDeclaration"
	case ExportDefaultDecl:
		return "ExportDefaultDeclaration"
	case ExportAllDecl:
		return "ExportAllDeclaration"
	case DeclareExportDecl:
		return "DeclareExportDeclaration"
	case DeclareExportAllDecl:
		return "DeclareExportAllDeclaration"
	}
	return "unknown"
}

// IsImport reports whether the declaration is an import form.
func (k DeclKind) IsImport() bool {
	return k == ImportDecl
}

// IsExportAll reports whether the declaration is an `export *` form.
func (k DeclKind) IsExportAll() bool {
	return k == ExportAllDecl || k == DeclareExportAllDecl
}

// IsDeclare reports whether the declaration is an ambient (declare) form.
func (k DeclKind) IsDeclare() bool {
	return k == DeclareExportDecl || k == DeclareExportAllDecl
}

// ValueKind is the type-system flavour of an import or export: plain value,
// type-only, or typeof.
type ValueKind uint8

const (
	Value ValueKind = iota
	Type
	Typeof
)

func (k ValueKind) String() string {
	switch k {
	case Type:
		return "type"
	case Typeof:
		return "typeof"
	}
	return "value"
}

// NestedKind classifies the declaration wrapped by an export-with-declaration
// form, as far as the semicolon rule cares.
type NestedKind uint8

const (
	NestedOther NestedKind = iota
	NestedClass
	NestedFunction
	NestedInterface
	NestedEnum
	NestedDeclareClass
	NestedDeclareFunction
)

// Structural reports whether the nested declaration's syntax forbids a
// trailing semicolon (class/function/interface/enum bodies end themselves).
func (k NestedKind) Structural() bool {
	return k != NestedOther
}

// Nested is the declaration or expression wrapped by an export form. Printing
// it is delegated to an injected sub-printer; the assembler only needs its
// span and its kind.
type Nested struct {
	Kind NestedKind
	Span source.Span
}

// Attribute is one key/value entry of an import attributes (`with`) or
// import assertions (`assert`) block.
type Attribute struct {
	Span  source.Span
	Key   *Name
	Value *Name
}

// Declaration is one import/export declaration. Which optional fields are set
// depends on Kind; see the decoder for the per-variant mapping.
type Declaration struct {
	Kind DeclKind
	Span source.Span

	// Specifiers is empty for bare imports (`import "m"`), empty named
	// blocks (`import {} from "m"`), and export-with-declaration forms.
	Specifiers []*Specifier

	// Source is the module string literal, when present.
	Source *Name

	// Inner is set for export-with-declaration forms, including default
	// exports of expressions.
	Inner *Nested

	// Exported is the alias of `export * as ns from "m"`.
	Exported *Name

	// Default marks default export forms (ExportDefaultDecl, and
	// DeclareExportDecl with `declare export default`).
	Default bool

	ImportKind ValueKind
	ExportKind ValueKind

	// Module and Phase carry import-phase syntax (`import module m`,
	// `import defer * as m`). Mutually exclusive in valid parses.
	Module bool
	Phase  string

	// Attributes and Assertions are the modern and legacy spellings of the
	// key/value block after the source. A valid parse fills at most one.
	Attributes []*Attribute
	Assertions []*Attribute

	// LegacyAssert is the parser's explicit flag that the declaration was
	// written with deprecated `assert` syntax even under the attributes
	// field name.
	LegacyAssert bool

	// Decorators cover `@dec export class ...`; printed verbatim before
	// the export keyword. Always empty for imports.
	Decorators []source.Span

	// Dangling holds comments attached to the declaration itself rather
	// than to any child node.
	Dangling []source.Comment
}

// KindModifier returns the declaration-level type modifier, drawn from
// ImportKind for imports and ExportKind otherwise.
func (d *Declaration) KindModifier() ValueKind {
	if d.Kind.IsImport() {
		return d.ImportKind
	}
	return d.ExportKind
}

// AttributeEntries returns whichever attribute list is populated, preferring
// the modern attributes field when both are (an input-contract oddity the
// formatter tolerates).
func (d *Declaration) AttributeEntries() []*Attribute {
	if len(d.Attributes) > 0 {
		return d.Attributes
	}
	return d.Assertions
}

// HasSpecifierComments reports whether any specifier carries an attached
// comment, which forces the grouped block to stay breakable.
func (d *Declaration) HasSpecifierComments() bool {
	for _, s := range d.Specifiers {
		if len(s.Comments) > 0 {
			return true
		}
	}
	return false
}
