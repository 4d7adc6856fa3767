package source

// Comment is a single comment range attached to a file, as reported by the
// upstream parser. Text carries the comment body without delimiters; Block
// distinguishes /* */ from // comments.
type Comment struct {
	Span  Span
	Text  string
	Block bool
}
