package format

import (
	"strings"
	"testing"

	"esfmt/internal/ast"
	"esfmt/internal/doc"
	"esfmt/internal/source"
)

// spanOf locates the first occurrence of sub within src.
func spanOf(t *testing.T, src, sub string) source.Span {
	t.Helper()
	i := strings.Index(src, sub)
	if i < 0 {
		t.Fatalf("%q not found in %q", sub, src)
	}
	return source.Span{Start: uint32(i), End: uint32(i + len(sub))}
}

// spanAfter locates sub at or after the given offset.
func spanAfter(t *testing.T, src, sub string, from int) source.Span {
	t.Helper()
	i := strings.Index(src[from:], sub)
	if i < 0 {
		t.Fatalf("%q not found in %q after %d", sub, src, from)
	}
	i += from
	return source.Span{Start: uint32(i), End: uint32(i + len(sub))}
}

func ident(t *testing.T, src, name string) *ast.Name {
	t.Helper()
	return &ast.Name{Span: spanOf(t, src, name), Value: name}
}

func identAfter(t *testing.T, src, name string, from int) *ast.Name {
	t.Helper()
	return &ast.Name{Span: spanAfter(t, src, name, from), Value: name}
}

func strLit(t *testing.T, src, raw string) *ast.Name {
	t.Helper()
	return &ast.Name{
		Span:  spanOf(t, src, raw),
		Str:   true,
		Value: strings.Trim(raw, `"'`),
		Raw:   raw,
	}
}

func fullSpan(src string) source.Span {
	return source.Span{Start: 0, End: uint32(len(src))}
}

// testHooks slice nested declarations and dangling comments straight from the
// source, mirroring what the driver injects.
func testHooks(win *source.Window) Hooks {
	return Hooks{
		DeclareToken: func(*ast.Declaration) doc.Doc {
			return doc.Text("declare ")
		},
		Nested: func(d *ast.Declaration) doc.Doc {
			return doc.Text(win.Slice(d.Inner.Span))
		},
		Dangling: func(d *ast.Declaration) (doc.Doc, bool) {
			parts := make([]doc.Doc, 0, len(d.Dangling))
			hard := false
			for _, c := range d.Dangling {
				parts = append(parts, doc.Text(win.Slice(c.Span)))
				if !c.Block {
					hard = true
				}
			}
			return doc.Concat(parts...), hard
		},
	}
}

func renderDecl(t *testing.T, src string, comments []source.Comment, d *ast.Declaration, opt Options) string {
	t.Helper()
	win := source.NewWindow([]byte(src), comments)
	pr := New(win, opt, testHooks(win))
	return doc.Render(pr.PrintDeclaration(d), doc.Options{
		Width:       pr.Options().PrintWidth,
		IndentWidth: pr.Options().IndentWidth,
		UseTabs:     pr.Options().UseTabs,
	})
}

func renderDefault(t *testing.T, src string, d *ast.Declaration) string {
	t.Helper()
	return renderDecl(t, src, nil, d, DefaultOptions())
}
