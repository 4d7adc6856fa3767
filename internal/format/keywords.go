package format

import (
	"strings"

	"esfmt/internal/ast"
)

const asciiSpace = " \t\r\n"

// needsFrom decides whether the `from` keyword appears between specifiers and
// the source. Almost always yes; the exception is an import with no
// specifiers at all, where `import "m"` and `import {} from "m"` are
// indistinguishable by node shape and the original text decides. Comment
// bytes are masked so `import /* from */ "m"` stays a bare import.
func (p *Printer) needsFrom(d *ast.Declaration) bool {
	if !d.Kind.IsImport() || d.Source == nil {
		return true
	}
	if len(d.Specifiers) > 0 || d.ImportKind == ast.Type {
		return true
	}
	gap := p.win.Masked(d.Span.Start, d.Source.Span.Start)
	return strings.HasSuffix(strings.TrimRight(gap, asciiSpace), "from")
}

// attributesKeyword resolves the spelling of the attributes block keyword.
func (p *Printer) attributesKeyword(d *ast.Declaration) string {
	if d.LegacyAssert {
		return "assert"
	}
	// When both lists are somehow populated, attributes wins.
	if len(d.Attributes) > 0 {
		return "with"
	}
	if len(d.Assertions) > 0 {
		return "assert"
	}
	// Zero entries: only the raw text after the source knows which
	// keyword introduced the empty block.
	if d.Source == nil {
		return "with"
	}
	tail := strings.TrimLeft(p.win.Masked(d.Source.Span.End, d.Span.End), asciiSpace)
	if strings.HasPrefix(tail, "assert") {
		return "assert"
	}
	return "with"
}

// needsAttributesBlock reports whether an attributes block is printed at all.
// An empty block (`with {}`) has no entries, so the trailing source text is
// consulted.
func (p *Printer) needsAttributesBlock(d *ast.Declaration) bool {
	if d.Source == nil {
		return false
	}
	if len(d.Attributes) > 0 || len(d.Assertions) > 0 {
		return true
	}
	tail := strings.TrimLeft(p.win.Masked(d.Source.Span.End, d.Span.End), asciiSpace)
	return strings.HasPrefix(tail, "with") || strings.HasPrefix(tail, "assert")
}
