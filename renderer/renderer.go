// Package renderer turns ledger state into human-facing output: markdown
// reports for the terminal and printable HTML receipts. It only reads the
// domain types; it never mutates them.
package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/ovz/kassa"
)

// RUB formats a whole-ruble amount for display.
func RUB(v int64) string {
	return money.New(v*100, money.RUB).Display()
}

// Signed formats a whole-ruble amount with an explicit sign, the way the
// journal marks sales (+) against expenses (-).
func Signed(v int64, positive bool) string {
	if positive {
		return "+" + RUB(v)
	}
	return "-" + RUB(v)
}

// mdRenderer accumulates a markdown document.
type mdRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the
// renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// itemsLine renders sale lines as the compact "name xqty" list used in
// journal rows.
func itemsLine(items []kassa.LineItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s x%d", item.Name, item.Quantity)
	}
	return strings.Join(parts, ", ")
}
