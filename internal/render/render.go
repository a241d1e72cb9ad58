// Package render writes a snapshot of a stack, top first, as plain text,
// a markdown table or HTML.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/samber/lo"

	"github.com/tedmax100/lifo/stack"
)

type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	HTML     Format = "html"
)

var Formats = []Format{Text, Markdown, HTML}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

// Render writes s to w in the given format without modifying s.
func Render[T comparable](w io.Writer, s *stack.Stack[T], f Format) error {
	switch f {
	case Text:
		return writeText(w, s)
	case Markdown:
		_, err := io.WriteString(w, markdownTable(s))
		return err
	case HTML:
		_, err := w.Write(markdown.ToHTML([]byte(markdownTable(s)), nil, nil))
		return err
	default:
		return fmt.Errorf("render: unknown format %q", f)
	}
}

func writeText[T comparable](w io.Writer, s *stack.Stack[T]) error {
	for i, v := range s.All() {
		if _, err := fmt.Fprintf(w, "%d: %v\n", i, v); err != nil {
			return err
		}
	}
	return nil
}

func markdownTable[T comparable](s *stack.Stack[T]) string {
	rows := lo.Map(s.ToSlice(), func(v T, i int) string {
		return fmt.Sprintf("| %d | %s |\n", i, cellEscaper.Replace(fmt.Sprint(v)))
	})

	var b bytes.Buffer
	b.WriteString("| index | value |\n")
	b.WriteString("| ---: | --- |\n")
	for _, row := range rows {
		b.WriteString(row)
	}
	return b.String()
}
