// Package doc provides a layout-intent document tree and a width-aware
// renderer. Printers build documents out of text, groups, indents and line
// primitives; Render decides where lines actually break.
package doc

// Doc is a node of the layout-intent tree.
type Doc interface {
	isDoc()
}

type textDoc string

type concatDoc []Doc

type groupDoc struct {
	doc        Doc
	forceBreak bool
}

type indentDoc struct {
	doc Doc
}

// LineKind selects how a line primitive renders when its group stays flat.
type LineKind uint8

const (
	// LineSpace renders as a single space when flat.
	LineSpace LineKind = iota
	// LineSoft renders as nothing when flat.
	LineSoft
	// LineHard always renders as a newline and forces its group to break.
	LineHard
)

type lineDoc struct {
	kind LineKind
}

type ifBreakDoc struct {
	broken Doc
	flat   Doc
}

func (textDoc) isDoc()    {}
func (concatDoc) isDoc()  {}
func (groupDoc) isDoc()   {}
func (indentDoc) isDoc()  {}
func (lineDoc) isDoc()    {}
func (ifBreakDoc) isDoc() {}

// Line primitives.
var (
	Line     Doc = lineDoc{LineSpace}
	SoftLine Doc = lineDoc{LineSoft}
	HardLine Doc = lineDoc{LineHard}
	// Nil is an empty document.
	Nil Doc = textDoc("")
)

// Text returns a literal text fragment. It must not contain newlines; use
// HardLine for those.
func Text(s string) Doc {
	return textDoc(s)
}

// Concat joins documents in sequence.
func Concat(docs ...Doc) Doc {
	return concatDoc(docs)
}

// Group marks a region that prints flat when it fits the remaining width and
// breaks its line primitives otherwise.
func Group(docs ...Doc) Doc {
	return groupDoc{doc: concatDoc(docs)}
}

// BrokenGroup is a group that always breaks.
func BrokenGroup(docs ...Doc) Doc {
	return groupDoc{doc: concatDoc(docs), forceBreak: true}
}

// Indent increases the indentation level for line breaks inside docs.
func Indent(docs ...Doc) Doc {
	return indentDoc{doc: concatDoc(docs)}
}

// IfBreak renders broken when the enclosing group breaks and flat otherwise.
func IfBreak(broken, flat Doc) Doc {
	return ifBreakDoc{broken: broken, flat: flat}
}

// Join interleaves sep between items.
func Join(sep Doc, items []Doc) Doc {
	if len(items) == 0 {
		return Nil
	}
	out := make(concatDoc, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}
