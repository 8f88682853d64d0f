// Package format renders report.Table values as fixed-width text tables:
// header, separator, rows, an optional totals footer, and the
// money/duration/missing-value rules this module's views require.
package format

import (
	"fmt"
	"io"
	"strings"
)

// Table is a fully-rendered, printable result of an aggregation view.
// Header, Rows, and Footer must all have the same column count. Note, if
// set, is printed alone in place of a table (the "no data" / empty-scope
// case) and the other fields are ignored.
type Table struct {
	Header []string
	Rows   [][]string
	Footer []string
	Note   string
}

// Print writes t to w using fixed-width columns sized to the widest
// value in each column across header, rows, and footer.
func Print(w io.Writer, t Table) {
	if t.Note != "" {
		fmt.Fprintln(w, t.Note)
		return
	}
	if len(t.Header) == 0 {
		fmt.Fprintln(w, "no data")
		return
	}

	widths := make([]int, len(t.Header))
	measure := func(row []string) {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	measure(t.Header)
	for _, row := range t.Rows {
		measure(row)
	}
	if len(t.Footer) > 0 {
		measure(t.Footer)
	}

	printRow := func(row []string) {
		parts := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				parts[i] = cell
				continue
			}
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
	}

	printRow(t.Header)

	total := 0
	for _, wd := range widths {
		total += wd + 1
	}
	fmt.Fprintln(w, strings.Repeat("-", total))

	if len(t.Rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
	}
	for _, row := range t.Rows {
		printRow(row)
	}
	if len(t.Footer) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", total))
		printRow(t.Footer)
	}
}

// Missing is the placeholder for an empty/missing numeric cell.
const Missing = "—"

// Money formats a value the way every monetary column in this module
// renders: a dollar sign and exactly four decimal places.
func Money(v float64) string {
	return fmt.Sprintf("$%.4f", v)
}

// MoneyPtr formats an optional monetary value, rendering Missing when nil.
// A present zero renders as "$0.0000", distinct from Missing.
func MoneyPtr(v *float64) string {
	if v == nil {
		return Missing
	}
	return Money(*v)
}

// Duration formats milliseconds the way every duration column renders:
// "{ms}ms" below one second, else "{sec:.2}s".
func Duration(ms uint64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.2fs", float64(ms)/1000.0)
}

// DurationPtr formats an optional duration in milliseconds, rendering
// Missing when nil.
func DurationPtr(ms *uint64) string {
	if ms == nil {
		return Missing
	}
	return Duration(*ms)
}

// UintPtr formats an optional unsigned count, rendering Missing when nil.
func UintPtr(v *uint64) string {
	if v == nil {
		return Missing
	}
	return fmt.Sprintf("%d", *v)
}

// TruncateError truncates an error message to 80 characters, the limit
// every view's error column enforces.
func TruncateError(msg string) string {
	const limit = 80
	runes := []rune(msg)
	if len(runes) <= limit {
		return msg
	}
	return string(runes[:limit])
}

// Signed formats a delta as an explicitly-signed integer, e.g. "+400" or
// "-12", used by the diff view's Δ columns.
func Signed(v int64) string {
	if v >= 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}

// SignedMoney formats a monetary delta as an explicitly-signed amount,
// e.g. "+$0.0100".
func SignedMoney(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+$%.4f", v)
	}
	return fmt.Sprintf("-$%.4f", -v)
}
