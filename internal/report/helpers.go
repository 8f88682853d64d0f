package report

import (
	"fmt"

	"github.com/cuemby/delegator/internal/report/format"
)

// Table is the renderable output of every view function in this package.
type Table = format.Table

func uitoa(v uint64) string { return fmt.Sprintf("%d", v) }

func money(v float64) string { return format.Money(v) }

func percent(rate float64) string { return fmt.Sprintf("%.1f%%", rate*100) }

func durationMs(ms uint64) string { return format.Duration(ms) }

func noData(msg string) Table {
	return Table{Note: msg}
}

func uitoaPtr(v *uint64) string { return format.UintPtr(v) }

func moneyPtr(v *float64) string { return format.MoneyPtr(v) }
