package format

import (
	"esfmt/internal/ast"
	"esfmt/internal/doc"
	"esfmt/internal/source"
)

// Hooks are the injected sub-printers for the parts of a declaration this
// package does not own. Nil hooks print nothing for their fragment.
type Hooks struct {
	// Decorators prints decorators placed before an export keyword,
	// each followed by its own line break.
	Decorators func(*ast.Declaration) doc.Doc
	// DeclareToken prints the `declare ` token for ambient forms.
	DeclareToken func(*ast.Declaration) doc.Doc
	// Nested prints the declaration wrapped by an export form.
	Nested func(*ast.Declaration) doc.Doc
	// Dangling prints comments attached to the declaration itself. The
	// bool requests a hard line break before the next fragment.
	Dangling func(*ast.Declaration) (doc.Doc, bool)
}

// Printer renders import/export declarations of a single file. It is a pure
// function of (node, window, options): no state survives between calls, so a
// Printer may be shared across declarations and goroutines freely.
type Printer struct {
	win   *source.Window
	opt   Options
	hooks Hooks
}

// New builds a printer over the file's source window.
func New(win *source.Window, opt Options, hooks Hooks) *Printer {
	return &Printer{win: win, opt: opt.withDefaults(), hooks: hooks}
}

// Options returns the printer's effective options.
func (p *Printer) Options() Options {
	return p.opt
}

func (p *Printer) printName(n *ast.Name) doc.Doc {
	if n == nil {
		return doc.Nil
	}
	if n.Str {
		if n.Raw != "" {
			return doc.Text(n.Raw)
		}
		// Parse dropped the raw spelling; fall back to the span.
		if !n.Span.Empty() {
			return doc.Text(p.win.Slice(n.Span))
		}
		return doc.Text(`"` + n.Value + `"`)
	}
	return doc.Text(n.Value)
}
