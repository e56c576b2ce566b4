package util

import (
	"fmt"
	"io"
	"strings"
)

// PrintFields renders name/value pairs as a bordered two-column table.
func PrintFields(w io.Writer, rows [][2]string) {
	nameWidth, valueWidth := computeColumnWidths(rows)

	border := fmt.Sprintf("+%s+%s+",
		strings.Repeat("-", nameWidth+2),
		strings.Repeat("-", valueWidth+2))

	fmt.Fprintln(w, border)
	for _, row := range rows {
		// pad with spaces on the right rather than the left (left-justify the field)
		// an asterisk * in the format specifies that the padding size should be given as an argument
		fmt.Fprintf(w, "| %-*s | %-*s |\n", nameWidth, row[0], valueWidth, row[1])
	}
	fmt.Fprintln(w, border)
}

func computeColumnWidths(rows [][2]string) (int, int) {
	var nameWidth, valueWidth int
	for _, row := range rows {
		if l := len([]rune(row[0])); l > nameWidth {
			nameWidth = l
		}
		if l := len([]rune(row[1])); l > valueWidth {
			valueWidth = l
		}
	}
	return nameWidth, valueWidth
}
