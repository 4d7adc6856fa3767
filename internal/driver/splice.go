package driver

import (
	"bytes"
	"strings"

	"esfmt/internal/ast"
	"esfmt/internal/doc"
	"esfmt/internal/format"
	"esfmt/internal/source"
)

// FormatSource reprints every import/export declaration of the decoded file
// and copies all other source bytes verbatim, so statements the formatter
// does not own are never touched.
func FormatSource(src []byte, file *ast.File, opt format.Options) []byte {
	win := source.NewWindow(src, file.Comments)
	pr := format.New(win, opt, fileHooks(win))
	renderOpt := doc.Options{
		Width:       opt.PrintWidth,
		IndentWidth: opt.IndentWidth,
		UseTabs:     opt.UseTabs,
	}

	var out bytes.Buffer
	out.Grow(len(src))
	prev := 0
	for _, d := range file.Decls {
		start := min(int(declStart(d)), len(src))
		if start < prev {
			continue
		}
		out.Write(src[prev:start])
		out.WriteString(doc.Render(pr.PrintDeclaration(d), renderOpt))
		prev = min(int(d.Span.End), len(src))
	}
	out.Write(src[prev:])
	return out.Bytes()
}

// declStart is the first byte the reprinted declaration replaces. Decorators
// written before the export keyword precede the declaration span.
func declStart(d *ast.Declaration) uint32 {
	start := d.Span.Start
	for _, dec := range d.Decorators {
		if dec.Start < start {
			start = dec.Start
		}
	}
	return start
}

// fileHooks builds the injected sub-printers for nested declarations,
// decorators, declare tokens and dangling comments. They all print from the
// original source: this tool reformats module declarations only.
func fileHooks(win *source.Window) format.Hooks {
	return format.Hooks{
		Decorators: func(d *ast.Declaration) doc.Doc {
			if len(d.Decorators) == 0 {
				return nil
			}
			parts := make([]doc.Doc, 0, len(d.Decorators)*2)
			for _, sp := range d.Decorators {
				parts = append(parts, doc.Text(win.Slice(sp)), doc.HardLine)
			}
			return doc.Concat(parts...)
		},
		DeclareToken: func(*ast.Declaration) doc.Doc {
			return doc.Text("declare ")
		},
		Nested: func(d *ast.Declaration) doc.Doc {
			sp := d.Inner.Span
			// Babel folds preceding decorators into the nested node's
			// span; skip past them so they are not printed twice.
			for _, dec := range d.Decorators {
				if dec.End > sp.Start && dec.End < sp.End {
					sp.Start = dec.End
				}
			}
			return doc.Text(strings.TrimLeft(win.Slice(sp), " \t\r\n"))
		},
		Dangling: func(d *ast.Declaration) (doc.Doc, bool) {
			parts := make([]doc.Doc, 0, len(d.Dangling)*2)
			hard := false
			for i, c := range d.Dangling {
				if i > 0 {
					parts = append(parts, doc.Text(" "))
				}
				parts = append(parts, doc.Text(win.Slice(c.Span)))
				if !c.Block {
					hard = true
				}
			}
			return doc.Concat(parts...), hard
		},
	}
}
