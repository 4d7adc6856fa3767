package source

import (
	"strings"
	"testing"
)

func comment(start, end uint32) Comment {
	return Comment{Span: Span{Start: start, End: end}, Block: true}
}

func TestMaskedReplacesCommentBytes(t *testing.T) {
	src := `import /* from */ "m";`
	w := NewWindow([]byte(src), []Comment{comment(7, 17)})

	got := w.Masked(0, uint32(len(src)))
	want := `import            "m";`
	if got != want {
		t.Fatalf("Masked mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestMaskedLengthMatchesRange(t *testing.T) {
	src := "import a from 'm'; // trailing\nexport {};"
	comments := []Comment{comment(19, 30)}
	w := NewWindow([]byte(src), comments)

	ranges := [][2]uint32{{0, 5}, {0, uint32(len(src))}, {15, 35}, {19, 30}, {30, 30}}
	for _, r := range ranges {
		got := w.Masked(r[0], r[1])
		if len(got) != int(r[1]-r[0]) {
			t.Fatalf("Masked(%d, %d) length = %d, want %d", r[0], r[1], len(got), r[1]-r[0])
		}
	}
}

func TestMaskedPartialOverlap(t *testing.T) {
	src := "abcdefghij"
	w := NewWindow([]byte(src), []Comment{comment(2, 6)})

	// Range starts inside the comment.
	if got, want := w.Masked(4, 8), "  gh"; got != want {
		t.Fatalf("Masked(4, 8):\nwant %q\ngot  %q", want, got)
	}
	// Range ends inside the comment.
	if got, want := w.Masked(0, 4), "ab  "; got != want {
		t.Fatalf("Masked(0, 4):\nwant %q\ngot  %q", want, got)
	}
}

func TestMaskedSkipsIrrelevantComments(t *testing.T) {
	src := strings.Repeat("x", 40)
	comments := []Comment{comment(0, 5), comment(30, 35)}
	w := NewWindow([]byte(src), comments)

	if got, want := w.Masked(10, 20), strings.Repeat("x", 10); got != want {
		t.Fatalf("comments outside range must not mask:\nwant %q\ngot  %q", want, got)
	}
}

func TestMaskedMultipleComments(t *testing.T) {
	src := "a /*1*/ b /*2*/ c"
	w := NewWindow([]byte(src), []Comment{comment(2, 7), comment(10, 15)})

	if got, want := w.Masked(0, uint32(len(src))), "a       b       c"; got != want {
		t.Fatalf("Masked:\nwant %q\ngot  %q", want, got)
	}
}

func TestMaskedClampsOutOfRange(t *testing.T) {
	w := NewWindow([]byte("abc"), nil)
	if got := w.Masked(1, 100); got != "bc" {
		t.Fatalf("Masked(1, 100) = %q, want %q", got, "bc")
	}
	if got := w.Masked(50, 100); got != "" {
		t.Fatalf("Masked(50, 100) = %q, want empty", got)
	}
}

func TestSlice(t *testing.T) {
	w := NewWindow([]byte("export {};"), []Comment{comment(0, 6)})
	// Slice never masks.
	if got, want := w.Slice(Span{Start: 0, End: 6}), "export"; got != want {
		t.Fatalf("Slice = %q, want %q", got, want)
	}
}
