package source

import "sort"

// Window is a read-only view over one file's source text together with its
// comment ranges. It is built once per file and shared by every declaration
// print call for that file; it never mutates its inputs.
//
// Comments must be sorted ascending by start offset. The parser guarantees
// this ordering for the whole file, so Window does not re-sort.
type Window struct {
	content  []byte
	comments []Comment
}

// NewWindow wraps source content and the file's sorted comment list.
func NewWindow(content []byte, comments []Comment) *Window {
	return &Window{content: content, comments: comments}
}

// Len returns the length of the underlying source text in bytes.
func (w *Window) Len() uint32 {
	return uint32(len(w.content))
}

// Comments returns the file's comment list.
func (w *Window) Comments() []Comment {
	return w.comments
}

// Slice returns the verbatim source bytes for the span, clamped to content.
func (w *Window) Slice(sp Span) string {
	start, end := w.clamp(sp.Start, sp.End)
	return string(w.content[start:end])
}

// Masked returns the source text in [start, end) with every byte covered by a
// comment replaced by a single space. The result always has length end-start,
// so offset arithmetic on it stays valid. Keyword sniffing runs on masked text
// to ignore things like `import /* from */ "m"`.
func (w *Window) Masked(start, end uint32) string {
	start, end = w.clamp(start, end)
	out := make([]byte, end-start)
	copy(out, w.content[start:end])

	// Comments are sorted, so binary-search to the first one that can
	// overlap and stop at the first one past the range.
	first := sort.Search(len(w.comments), func(i int) bool {
		return w.comments[i].Span.End > start
	})
	for _, c := range w.comments[first:] {
		if c.Span.Start >= end {
			break
		}
		lo := max(c.Span.Start, start)
		hi := min(c.Span.End, end)
		for i := lo; i < hi; i++ {
			out[i-start] = ' '
		}
	}

	assertMaskedLen(len(out), int(end-start))
	return string(out)
}

func (w *Window) clamp(start, end uint32) (uint32, uint32) {
	n := uint32(len(w.content))
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}
