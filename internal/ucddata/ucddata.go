/*
Package ucddata holds excerpts of Unicode Character Database files.

Blocks.txt contains the block definitions of the Unicode scripts we care
about. It is an excerpt of the UCD file of the same name and may be
re-created with

   go run download.go
*/
package ucddata

import (
	"bytes"
	_ "embed"
	"io"
)

//go:generate go run download.go

//go:embed Blocks.txt
var blocks []byte

// UnicodeVersion is the UCD version the excerpts have been taken from.
const UnicodeVersion = "15.0.0"

// Blocks returns a reader for the Blocks.txt excerpt.
func Blocks() io.Reader {
	return bytes.NewReader(blocks)
}
