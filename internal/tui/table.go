package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// cellGap separates adjacent columns.
const cellGap = "  "

// MinCellWidth is the narrowest a truncated column may become.
const MinCellWidth = 4

// RenderTable writes headers and rows as left-aligned columns. Column widths
// follow the widest cell measured in terminal cells, so CJK and emoji values
// stay aligned. When the output is a terminal narrower than the table, the
// last column is truncated with "…".
func RenderTable(w io.Writer, styles *TableStyles, headers []string, rows [][]string) {
	widths := columnWidths(headers, rows)
	if limit := terminalWidth(w); limit > 0 {
		widths = fitToWidth(widths, limit)
	}

	_, _ = fmt.Fprintln(w, styles.Header.Render(formatRow(headers, widths)))
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, styles.Cell.Render(formatRow(row, widths)))
	}
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
		}
	}
	return widths
}

// fitToWidth shrinks the last column so the row fits in limit cells.
func fitToWidth(widths []int, limit int) []int {
	if len(widths) == 0 {
		return widths
	}
	total := 0
	for _, w := range widths {
		total += w
	}
	total += len(cellGap) * (len(widths) - 1)
	if total <= limit {
		return widths
	}

	fitted := append([]int(nil), widths...)
	last := len(fitted) - 1
	fitted[last] = max(MinCellWidth, fitted[last]-(total-limit))
	return fitted
}

func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, width := range widths {
		if i > 0 {
			b.WriteString(cellGap)
		}
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		value = runewidth.Truncate(value, width, "…")
		if i == len(widths)-1 {
			b.WriteString(value)
			continue
		}
		b.WriteString(runewidth.FillRight(value, width))
	}
	return b.String()
}

// terminalWidth returns the width of w when it is a terminal, otherwise 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) { //nolint:gosec // Fd fits in int on supported platforms
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
	if err != nil {
		return 0
	}
	return width
}
