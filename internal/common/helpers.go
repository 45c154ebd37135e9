package common

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to values cut short by TruncateCells
const Ellipsis = "..."

// cells measures terminal display width. East-Asian ambiguous characters
// (box drawing included) count as one cell regardless of the locale.
var cells = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Width returns the number of terminal cells s occupies
func Width(s string) int {
	return cells.StringWidth(s)
}

// TruncateCells shortens s to fit into limit cells.
// Values that already fit are returned unchanged. Otherwise s is cut to
// limit-3 cells and Ellipsis is appended. When limit leaves no room for
// the ellipsis the result is empty.
// Example: TruncateCells("0x1234567890", 8) = "0x123..."
func TruncateCells(s string, limit int) string {
	if Width(s) <= limit {
		return s
	}
	if limit-Width(Ellipsis) < 0 {
		return ""
	}
	return cells.Truncate(s, limit, Ellipsis)
}

// Pad returns n spaces, or an empty string when n is not positive
func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
