//go:build esfmtdebug

package source

import "fmt"

func assertMaskedLen(got, want int) {
	if got != want {
		panic(fmt.Sprintf("source: masked scan length %d, want %d", got, want))
	}
}
