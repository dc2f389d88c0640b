package importer

import (
	"bufio"
	"io"
)

// sniffLen is how much of a statement is inspected to pick a parser.
const sniffLen = 512

// Format pairs a parser with a test on the opening bytes of a file.
type Format struct {
	Match  func(head []byte) bool
	Parser Importer
}

// Router hands a statement to the first format whose Match accepts its
// opening bytes, and to fallback otherwise.
type Router struct {
	formats  []Format
	fallback Importer
}

func NewRouter(fallback Importer, formats ...Format) *Router {
	return &Router{formats: formats, fallback: fallback}
}

func (r *Router) Parse(rd io.Reader) (*Statement, error) {
	br := bufio.NewReaderSize(rd, sniffLen)

	// A short file returns io.EOF with whatever it holds.
	head, _ := br.Peek(sniffLen)

	for _, f := range r.formats {
		if f.Match(head) {
			return f.Parser.Parse(br)
		}
	}

	return r.fallback.Parse(br)
}
