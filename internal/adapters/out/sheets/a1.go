package sheets

import (
	"fmt"
	"strings"
)

// columnLetters converts a 0-based column index to its A1 letters:
// 0 is A, 25 is Z, 26 is AA.
func columnLetters(index int) string {
	var b []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}

// quoteSheet quotes a worksheet title for use in an A1 range.
func quoteSheet(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// cellRange returns the A1 range of one cell of a worksheet.
func cellRange(title string, column, row int) string {
	return fmt.Sprintf("%s!%s%d", quoteSheet(title), columnLetters(column), row)
}
