package main

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

const (
	bold  = "\x1b[1m"
	reset = "\x1b[0m"
)

// table prints rows in aligned columns. Widths are measured in cells so
// styled headers line up with plain rows.
type table struct {
	header []string
	rows   [][]string
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) add(cols ...string) {
	t.rows = append(t.rows, cols)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (t *table) write(w io.Writer) error {
	header := t.header
	if isTerminal(w) {
		header = make([]string, len(t.header))
		for i, h := range t.header {
			header[i] = bold + h + reset
		}
	}

	all := append([][]string{header}, t.rows...)
	widths := make([]int, len(t.header))
	for _, row := range all {
		for i, col := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], ansi.StringWidth(col))
			}
		}
	}

	var sb strings.Builder
	for _, row := range all {
		for i, col := range row {
			if i == len(row)-1 {
				sb.WriteString(col)
				break
			}
			sb.WriteString(col)
			sb.WriteString(strings.Repeat(" ", widths[i]-ansi.StringWidth(col)+2))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
