package format

import "fmt"

// TrailingComma controls trailing commas in broken specifier groups.
type TrailingComma uint8

const (
	// TrailingCommaES5 adds trailing commas where ES5 allowed them,
	// which includes import/export specifier lists.
	TrailingCommaES5 TrailingComma = iota
	// TrailingCommaAll adds trailing commas everywhere possible.
	TrailingCommaAll
	// TrailingCommaNone never adds trailing commas.
	TrailingCommaNone
)

// ParseTrailingComma converts the config spelling into a policy value.
func ParseTrailingComma(s string) (TrailingComma, error) {
	switch s {
	case "", "es5":
		return TrailingCommaES5, nil
	case "all":
		return TrailingCommaAll, nil
	case "none":
		return TrailingCommaNone, nil
	}
	return TrailingCommaES5, fmt.Errorf("format: unknown trailing comma policy %q", s)
}

func (t TrailingComma) String() string {
	switch t {
	case TrailingCommaAll:
		return "all"
	case TrailingCommaNone:
		return "none"
	}
	return "es5"
}

// Options is the configuration bundle for printing.
type Options struct {
	// Semi appends semicolons after declarations that take one.
	Semi bool
	// BracketSpacing inserts spaces just inside specifier braces.
	BracketSpacing bool
	// TrailingComma is the trailing comma policy for broken groups.
	TrailingComma TrailingComma
	// PrintWidth is the target line width.
	PrintWidth int
	// IndentWidth is spaces per indent level.
	IndentWidth int
	// UseTabs indents with tabs instead of spaces.
	UseTabs bool
}

// DefaultOptions returns the standard option set.
func DefaultOptions() Options {
	return Options{
		Semi:           true,
		BracketSpacing: true,
		TrailingComma:  TrailingCommaES5,
		PrintWidth:     80,
		IndentWidth:    2,
	}
}

func (o Options) withDefaults() Options {
	if o.PrintWidth == 0 {
		o.PrintWidth = 80
	}
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	return o
}
