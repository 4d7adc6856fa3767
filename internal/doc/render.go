package doc

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Options configures rendering.
type Options struct {
	// Width is the target line width in columns.
	Width int
	// IndentWidth is the number of spaces per indent level.
	IndentWidth int
	// UseTabs emits one tab per indent level instead of spaces.
	UseTabs bool
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = 80
	}
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	return o
}

type mode uint8

const (
	modeFlat mode = iota
	modeBreak
)

type frame struct {
	indent int
	mode   mode
	doc    Doc
}

// Render lays the document out into text, breaking groups that do not fit in
// the remaining width. Column positions are measured in display cells so wide
// runes count properly.
func Render(d Doc, opt Options) string {
	opt = opt.withDefaults()

	var out strings.Builder
	col := 0

	stack := []frame{{indent: 0, mode: modeBreak, doc: d}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch t := f.doc.(type) {
		case textDoc:
			out.WriteString(string(t))
			col += runewidth.StringWidth(string(t))
		case concatDoc:
			for i := len(t) - 1; i >= 0; i-- {
				stack = append(stack, frame{f.indent, f.mode, t[i]})
			}
		case indentDoc:
			stack = append(stack, frame{f.indent + 1, f.mode, t.doc})
		case groupDoc:
			m := modeFlat
			if t.forceBreak || !fits(opt.Width-col, frame{f.indent, modeFlat, t.doc}) {
				m = modeBreak
			}
			stack = append(stack, frame{f.indent, m, t.doc})
		case lineDoc:
			if f.mode == modeFlat && t.kind != LineHard {
				if t.kind == LineSpace {
					out.WriteByte(' ')
					col++
				}
				continue
			}
			out.WriteByte('\n')
			col = writeIndent(&out, f.indent, opt)
		case ifBreakDoc:
			if f.mode == modeBreak {
				stack = append(stack, frame{f.indent, f.mode, t.broken})
			} else {
				stack = append(stack, frame{f.indent, f.mode, t.flat})
			}
		}
	}
	return out.String()
}

func writeIndent(out *strings.Builder, level int, opt Options) int {
	if opt.UseTabs {
		for range level {
			out.WriteByte('\t')
		}
		return level * opt.IndentWidth
	}
	n := level * opt.IndentWidth
	for range n {
		out.WriteByte(' ')
	}
	return n
}

// fits reports whether the document renders flat within the remaining width.
// A hard line never fits, which is what forces groups containing one to break.
func fits(remaining int, start frame) bool {
	stack := []frame{start}
	for len(stack) > 0 {
		if remaining < 0 {
			return false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch t := f.doc.(type) {
		case textDoc:
			remaining -= runewidth.StringWidth(string(t))
		case concatDoc:
			for i := len(t) - 1; i >= 0; i-- {
				stack = append(stack, frame{f.indent, f.mode, t[i]})
			}
		case indentDoc:
			stack = append(stack, frame{f.indent + 1, f.mode, t.doc})
		case groupDoc:
			if t.forceBreak {
				return false
			}
			stack = append(stack, frame{f.indent, modeFlat, t.doc})
		case lineDoc:
			if t.kind == LineHard {
				return false
			}
			if t.kind == LineSpace {
				remaining--
			}
		case ifBreakDoc:
			stack = append(stack, frame{f.indent, f.mode, t.flat})
		}
	}
	return remaining >= 0
}
