package ast

import (
	"encoding/json"
	"fmt"
	"sort"

	"fortio.org/safecast"

	"esfmt/internal/source"
)

type rawComment struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type rawExtra struct {
	Raw                    string `json:"raw"`
	DeprecatedAssertSyntax bool   `json:"deprecatedAssertSyntax"`
}

// rawNode is the union of every JSON field the decoder looks at. Babel and
// ESTree emitters both fit; fields a node type does not carry stay zero.
type rawNode struct {
	Type        string          `json:"type"`
	Start       int             `json:"start"`
	End         int             `json:"end"`
	Program     *rawNode        `json:"program"`
	Body        []*rawNode      `json:"body"`
	Specifiers  []*rawNode      `json:"specifiers"`
	Source      *rawNode        `json:"source"`
	Declaration *rawNode        `json:"declaration"`
	Local       *rawNode        `json:"local"`
	Imported    *rawNode        `json:"imported"`
	Exported    *rawNode        `json:"exported"`
	Key         *rawNode        `json:"key"`
	Value       json.RawMessage `json:"value"`
	Name        string          `json:"name"`
	Raw         string          `json:"raw"`
	ImportKind  string          `json:"importKind"`
	ExportKind  string          `json:"exportKind"`
	Module      bool            `json:"module"`
	Phase       string          `json:"phase"`
	Default     bool            `json:"default"`
	Attributes  []*rawNode      `json:"attributes"`
	Assertions  []*rawNode      `json:"assertions"`
	Decorators  []*rawNode      `json:"decorators"`
	Extra       *rawExtra       `json:"extra"`
	Comments    []rawComment    `json:"comments"`
	Leading     []rawComment    `json:"leadingComments"`
	Trailing    []rawComment    `json:"trailingComments"`
	InnerCmts   []rawComment    `json:"innerComments"`
}

// DecodeFile decodes a Babel-style File (or bare Program) JSON dump into the
// module-declaration view this formatter operates on. Statements other than
// import/export declarations are recorded as opaque spans only.
func DecodeFile(data []byte) (*File, error) {
	var root rawNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("ast: decode: %w", err)
	}

	prog := &root
	comments := root.Comments
	if root.Type == "File" {
		if root.Program == nil {
			return nil, fmt.Errorf("ast: File node has no program")
		}
		prog = root.Program
		if len(prog.Comments) > 0 && len(comments) == 0 {
			comments = prog.Comments
		}
	}
	if prog.Type != "Program" {
		return nil, fmt.Errorf("ast: unexpected root node %q", prog.Type)
	}

	span, err := nodeSpan(prog)
	if err != nil {
		return nil, err
	}
	file := &File{Span: span}

	file.Comments, err = decodeComments(comments)
	if err != nil {
		return nil, err
	}
	// Babel emits comments in source order already; keep the invariant
	// even for emitters that do not.
	sort.Slice(file.Comments, func(i, j int) bool {
		return file.Comments[i].Span.Start < file.Comments[j].Span.Start
	})

	for _, n := range prog.Body {
		if n == nil {
			continue
		}
		switch n.Type {
		case "ImportDeclaration", "ExportNamedDeclaration", "ExportDefaultDeclaration",
			"ExportAllDeclaration", "DeclareExportDeclaration", "DeclareExportAllDeclaration":
			decl, err := decodeDeclaration(n)
			if err != nil {
				return nil, err
			}
			file.Decls = append(file.Decls, decl)
		default:
			sp, err := nodeSpan(n)
			if err != nil {
				return nil, err
			}
			file.Opaque = append(file.Opaque, sp)
		}
	}
	return file, nil
}

func decodeDeclaration(n *rawNode) (*Declaration, error) {
	span, err := nodeSpan(n)
	if err != nil {
		return nil, err
	}
	d := &Declaration{
		Span:       span,
		ImportKind: valueKind(n.ImportKind),
		ExportKind: valueKind(n.ExportKind),
		Module:     n.Module,
		Phase:      n.Phase,
	}

	switch n.Type {
	case "ImportDeclaration":
		d.Kind = ImportDecl
	case "ExportNamedDeclaration":
		d.Kind = ExportNamedDecl
	case "ExportDefaultDeclaration":
		d.Kind = ExportDefaultDecl
		d.Default = true
	case "ExportAllDeclaration":
		d.Kind = ExportAllDecl
	case "DeclareExportDeclaration":
		d.Kind = DeclareExportDecl
		d.Default = n.Default
	case "DeclareExportAllDeclaration":
		d.Kind = DeclareExportAllDecl
	default:
		return nil, fmt.Errorf("ast: unexpected declaration node %q", n.Type)
	}

	if n.Extra != nil && n.Extra.DeprecatedAssertSyntax {
		d.LegacyAssert = true
	}

	if n.Source != nil {
		if d.Source, err = decodeName(n.Source); err != nil {
			return nil, err
		}
	}
	if n.Exported != nil {
		if d.Exported, err = decodeName(n.Exported); err != nil {
			return nil, err
		}
	}
	for _, s := range n.Specifiers {
		spec, err := decodeSpecifier(s)
		if err != nil {
			return nil, err
		}
		d.Specifiers = append(d.Specifiers, spec)
	}
	if n.Declaration != nil {
		sp, err := nodeSpan(n.Declaration)
		if err != nil {
			return nil, err
		}
		d.Inner = &Nested{Kind: nestedKind(n.Declaration.Type), Span: sp}
		for _, dec := range n.Declaration.Decorators {
			decSpan, err := nodeSpan(dec)
			if err != nil {
				return nil, err
			}
			d.Decorators = append(d.Decorators, decSpan)
		}
	}
	if d.Attributes, err = decodeAttributes(n.Attributes); err != nil {
		return nil, err
	}
	if d.Assertions, err = decodeAttributes(n.Assertions); err != nil {
		return nil, err
	}
	if d.Dangling, err = decodeComments(n.InnerCmts); err != nil {
		return nil, err
	}
	return d, nil
}

func decodeSpecifier(n *rawNode) (*Specifier, error) {
	span, err := nodeSpan(n)
	if err != nil {
		return nil, err
	}
	s := &Specifier{Span: span, ValueKind: valueKind(n.ImportKind)}
	if s.ValueKind == Value {
		s.ValueKind = valueKind(n.ExportKind)
	}

	switch n.Type {
	case "ImportSpecifier":
		s.Kind = ImportSpec
	case "ImportDefaultSpecifier":
		s.Kind = ImportDefaultSpec
	case "ImportNamespaceSpecifier":
		s.Kind = ImportNamespaceSpec
	case "ExportSpecifier":
		s.Kind = ExportSpec
	case "ExportDefaultSpecifier":
		s.Kind = ExportDefaultSpec
	case "ExportNamespaceSpecifier":
		s.Kind = ExportNamespaceSpec
	default:
		return nil, fmt.Errorf("ast: unexpected specifier node %q", n.Type)
	}

	if n.Local != nil {
		if s.Local, err = decodeName(n.Local); err != nil {
			return nil, err
		}
	}
	if n.Imported != nil {
		if s.Imported, err = decodeName(n.Imported); err != nil {
			return nil, err
		}
	}
	if n.Exported != nil {
		if s.Exported, err = decodeName(n.Exported); err != nil {
			return nil, err
		}
	}
	// ExportDefaultSpecifier binds through `exported` only; surface it as
	// the local name so rendering is uniform across standalone kinds.
	if s.Kind == ExportDefaultSpec && s.Local == nil {
		s.Local = s.Exported
		s.Exported = nil
	}

	leading, err := decodeComments(n.Leading)
	if err != nil {
		return nil, err
	}
	trailing, err := decodeComments(n.Trailing)
	if err != nil {
		return nil, err
	}
	s.Comments = append(leading, trailing...)
	return s, nil
}

func decodeAttributes(nodes []*rawNode) ([]*Attribute, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make([]*Attribute, 0, len(nodes))
	for _, n := range nodes {
		span, err := nodeSpan(n)
		if err != nil {
			return nil, err
		}
		a := &Attribute{Span: span}
		if n.Key != nil {
			if a.Key, err = decodeName(n.Key); err != nil {
				return nil, err
			}
		}
		if len(n.Value) > 0 {
			var valueNode rawNode
			if err := json.Unmarshal(n.Value, &valueNode); err != nil {
				return nil, fmt.Errorf("ast: attribute value: %w", err)
			}
			if a.Value, err = decodeName(&valueNode); err != nil {
				return nil, err
			}
		}
		out = append(out, a)
	}
	return out, nil
}

func decodeName(n *rawNode) (*Name, error) {
	span, err := nodeSpan(n)
	if err != nil {
		return nil, err
	}
	name := &Name{Span: span}
	switch n.Type {
	case "Identifier":
		name.Value = n.Name
	case "StringLiteral", "Literal":
		name.Str = true
		if len(n.Value) > 0 {
			if err := json.Unmarshal(n.Value, &name.Value); err != nil {
				return nil, fmt.Errorf("ast: string literal value: %w", err)
			}
		}
		name.Raw = n.Raw
		if n.Extra != nil && n.Extra.Raw != "" {
			name.Raw = n.Extra.Raw
		}
	default:
		return nil, fmt.Errorf("ast: unexpected name node %q", n.Type)
	}
	return name, nil
}

func decodeComments(raw []rawComment) ([]source.Comment, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]source.Comment, 0, len(raw))
	for _, c := range raw {
		start, err := safecast.Conv[uint32](c.Start)
		if err != nil {
			return nil, fmt.Errorf("ast: comment offset: %w", err)
		}
		end, err := safecast.Conv[uint32](c.End)
		if err != nil {
			return nil, fmt.Errorf("ast: comment offset: %w", err)
		}
		out = append(out, source.Comment{
			Span:  source.Span{Start: start, End: end},
			Text:  c.Value,
			Block: c.Type == "CommentBlock" || c.Type == "Block",
		})
	}
	return out, nil
}

func nodeSpan(n *rawNode) (source.Span, error) {
	start, err := safecast.Conv[uint32](n.Start)
	if err != nil {
		return source.Span{}, fmt.Errorf("ast: %s start offset: %w", n.Type, err)
	}
	end, err := safecast.Conv[uint32](n.End)
	if err != nil {
		return source.Span{}, fmt.Errorf("ast: %s end offset: %w", n.Type, err)
	}
	return source.Span{Start: start, End: end}, nil
}

func valueKind(s string) ValueKind {
	switch s {
	case "type":
		return Type
	case "typeof":
		return Typeof
	}
	return Value
}

func nestedKind(t string) NestedKind {
	switch t {
	case "ClassDeclaration":
		return NestedClass
	case "FunctionDeclaration":
		return NestedFunction
	case "TSInterfaceDeclaration", "InterfaceDeclaration":
		return NestedInterface
	case "TSEnumDeclaration", "EnumDeclaration":
		return NestedEnum
	case "DeclareClass":
		return NestedDeclareClass
	case "DeclareFunction", "TSDeclareFunction":
		return NestedDeclareFunction
	}
	return NestedOther
}
