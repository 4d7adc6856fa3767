package format

import (
	"esfmt/internal/ast"
	"esfmt/internal/doc"
)

// PrintDeclaration assembles the full document for one import/export
// declaration. Fragment order: decorators, declare token, import/export
// keyword (+default), phase marker, kind modifier, dangling comments, the
// body (nested declaration | export-all star | specifiers), from + source,
// attributes block, semicolon.
func (p *Printer) PrintDeclaration(d *ast.Declaration) doc.Doc {
	parts := make([]doc.Doc, 0, 12)

	if !d.Kind.IsImport() && p.hooks.Decorators != nil {
		if dd := p.hooks.Decorators(d); dd != nil {
			parts = append(parts, dd)
		}
	}
	if d.Kind.IsDeclare() && p.hooks.DeclareToken != nil {
		if dt := p.hooks.DeclareToken(d); dt != nil {
			parts = append(parts, dt)
		}
	}

	if d.Kind.IsImport() {
		parts = append(parts, doc.Text("import"))
	} else {
		parts = append(parts, doc.Text("export"))
	}
	if d.Default {
		parts = append(parts, doc.Text(" default"))
	}

	if d.Kind.IsImport() {
		switch {
		case d.Module:
			parts = append(parts, doc.Text(" module"))
		case d.Phase != "":
			parts = append(parts, doc.Text(" "+d.Phase))
		}
	}

	if mod := d.KindModifier(); mod != ast.Value {
		parts = append(parts, doc.Text(" "+mod.String()))
	}

	if len(d.Dangling) > 0 && p.hooks.Dangling != nil {
		if dc, hard := p.hooks.Dangling(d); dc != nil {
			parts = append(parts, doc.Text(" "), dc)
			if hard {
				parts = append(parts, doc.HardLine)
			}
		}
	}

	from := d.Source != nil && p.needsFrom(d)

	switch {
	case d.Inner != nil:
		if p.hooks.Nested != nil {
			parts = append(parts, doc.Text(" "), p.hooks.Nested(d))
		}
	case d.Kind.IsExportAll():
		parts = append(parts, doc.Text(" *"))
		if d.Exported != nil {
			parts = append(parts, doc.Text(" as "), p.printName(d.Exported))
		}
	default:
		// A bare import (`import "m"`) prints no specifier block at
		// all; everything else prints one, `{}` included.
		if from || d.Source == nil || !d.Kind.IsImport() {
			parts = append(parts, doc.Text(" "), p.printSpecifiers(d))
		}
	}

	if d.Source != nil {
		if from {
			parts = append(parts, doc.Text(" from"))
		}
		parts = append(parts, doc.Text(" "), p.printName(d.Source))
	}

	if p.needsAttributesBlock(d) {
		parts = append(parts, p.printAttributes(d))
	}

	if p.opt.Semi && needsSemicolon(d) {
		parts = append(parts, doc.Text(";"))
	}
	return doc.Concat(parts...)
}

// needsSemicolon implements the terminator rule for the always-add policy:
// declarations wrapping another declaration rely on the wrapped syntax,
// except default exports of non-structural bodies (`export default 1 + 1`),
// which still need one.
func needsSemicolon(d *ast.Declaration) bool {
	if d.Inner == nil {
		return true
	}
	if !d.Default {
		return false
	}
	return !d.Inner.Kind.Structural()
}

// printAttributes renders ` with { k: "v" }` (or its assert spelling). The
// block never breaks; attribute lists are short by construction.
func (p *Printer) printAttributes(d *ast.Declaration) doc.Doc {
	parts := []doc.Doc{doc.Text(" " + p.attributesKeyword(d) + " {")}

	entries := d.AttributeEntries()
	if len(entries) > 0 {
		docs := make([]doc.Doc, 0, len(entries))
		for _, a := range entries {
			docs = append(docs, doc.Concat(p.printName(a.Key), doc.Text(": "), p.printName(a.Value)))
		}
		joined := doc.Join(doc.Text(", "), docs)
		if p.opt.BracketSpacing {
			parts = append(parts, doc.Text(" "), joined, doc.Text(" "))
		} else {
			parts = append(parts, joined)
		}
	}
	parts = append(parts, doc.Text("}"))
	return doc.Concat(parts...)
}
