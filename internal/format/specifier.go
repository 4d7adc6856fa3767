package format

import (
	"fmt"

	"esfmt/internal/ast"
	"esfmt/internal/doc"
)

// partition splits specifiers into standalone (default/namespace, printed
// bare) and grouped (named, printed inside braces). Any other kind means the
// parser handed us a node shape we never agreed on.
func partition(specs []*ast.Specifier) (standalone, grouped []*ast.Specifier) {
	for _, s := range specs {
		switch s.Kind {
		case ast.ImportDefaultSpec, ast.ImportNamespaceSpec, ast.ExportDefaultSpec, ast.ExportNamespaceSpec:
			standalone = append(standalone, s)
		case ast.ImportSpec, ast.ExportSpec:
			grouped = append(grouped, s)
		default:
			panic(fmt.Sprintf("format: unknown specifier kind %d", s.Kind))
		}
	}
	return standalone, grouped
}

// canBreak reports whether the grouped block may break across lines. A lone
// named specifier with nothing else around it stays on one line.
func canBreak(standalone, grouped []*ast.Specifier, hasComment bool) bool {
	return len(grouped) > 1 || len(standalone) > 0 || hasComment
}

// isShorthand reports whether the two name fields of a named specifier were
// written as a single token, making the `as` alias redundant. Identical spans
// are required: equal names written twice (`{ a as a }`) are not shorthand.
func isShorthand(s *ast.Specifier) bool {
	var left, right *ast.Name
	switch s.Kind {
	case ast.ImportSpec:
		left, right = s.Imported, s.Local
	case ast.ExportSpec:
		left, right = s.Local, s.Exported
	default:
		return false
	}
	if left == nil || right == nil {
		return false
	}
	if left.Str != right.Str || left.Span != right.Span {
		return false
	}
	if left.Str {
		return left.Value == right.Value && left.Raw == right.Raw
	}
	return left.Value == right.Value
}

// printSpecifier renders one specifier: optional kind modifier, left name,
// and the `as` alias when a distinct right side exists.
func (p *Printer) printSpecifier(s *ast.Specifier) doc.Doc {
	var left, right doc.Doc

	switch s.Kind {
	case ast.ImportNamespaceSpec:
		left = doc.Text("*")
		right = p.printName(s.Local)
	case ast.ExportNamespaceSpec:
		left = doc.Text("*")
		right = p.printName(s.Exported)
	case ast.ImportDefaultSpec, ast.ExportDefaultSpec:
		left = p.printName(s.Local)
		right = doc.Nil
	case ast.ImportSpec:
		left = p.printName(s.Imported)
		right = p.printName(s.Local)
	case ast.ExportSpec:
		left = p.printName(s.Local)
		right = p.printName(s.Exported)
	default:
		panic(fmt.Sprintf("format: unknown specifier kind %d", s.Kind))
	}

	if isShorthand(s) {
		right = doc.Nil
	}

	parts := make([]doc.Doc, 0, 4)
	if s.ValueKind != ast.Value {
		parts = append(parts, doc.Text(s.ValueKind.String()+" "))
	}
	parts = append(parts, left)
	if right != doc.Nil {
		parts = append(parts, doc.Text(" as "), right)
	}
	return doc.Concat(parts...)
}

// printSpecifiers renders the whole specifier list of a declaration:
// standalone specifiers joined by ", ", then the braced named block.
func (p *Printer) printSpecifiers(d *ast.Declaration) doc.Doc {
	standalone, grouped := partition(d.Specifiers)

	if len(standalone) == 0 && len(grouped) == 0 {
		return doc.Text("{}")
	}

	parts := make([]doc.Doc, 0, 4)
	for i, s := range standalone {
		if i > 0 {
			parts = append(parts, doc.Text(", "))
		}
		parts = append(parts, p.printSpecifier(s))
	}
	if len(grouped) == 0 {
		return doc.Concat(parts...)
	}
	if len(standalone) > 0 {
		parts = append(parts, doc.Text(", "))
	}
	parts = append(parts, p.printGrouped(d, standalone, grouped))
	return doc.Concat(parts...)
}

func (p *Printer) printGrouped(d *ast.Declaration, standalone, grouped []*ast.Specifier) doc.Doc {
	members := make([]doc.Doc, 0, len(grouped))
	for _, s := range grouped {
		members = append(members, p.printSpecifier(s))
	}

	if !canBreak(standalone, grouped, d.HasSpecifierComments()) {
		// Single specifier, nothing standalone, no comments: one line,
		// never a trailing comma.
		if p.opt.BracketSpacing {
			return doc.Concat(doc.Text("{ "), members[0], doc.Text(" }"))
		}
		return doc.Concat(doc.Text("{"), members[0], doc.Text("}"))
	}

	open := doc.SoftLine
	if p.opt.BracketSpacing {
		open = doc.Line
	}
	var trailer doc.Doc = doc.Nil
	if p.opt.TrailingComma != TrailingCommaNone {
		trailer = doc.IfBreak(doc.Text(","), doc.Nil)
	}
	return doc.Group(
		doc.Text("{"),
		doc.Indent(open, doc.Join(doc.Concat(doc.Text(","), doc.Line), members), trailer),
		open,
		doc.Text("}"),
	)
}
