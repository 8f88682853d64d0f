package report

import "fmt"

// Daily, Hourly, Monthly, Quarterly, Weekly, Weekday, TimeOfDay, and
// DayOfMonth bucket completed delegations by their start timestamp (UTC),
// each sorted in calendar order rather than by count or cost.
func Daily(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return n.StartTime.Time().Format("2006-01-02"), true })
	sortByKeyAsc(g)
	return renderGrouped(g)
}

func Hourly(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return fmt.Sprintf("%02d", n.StartTime.Time().Hour()), true })
	sortByKeyAsc(g)
	return renderGrouped(g)
}

func Monthly(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return n.StartTime.Time().Format("2006-01"), true })
	sortByKeyAsc(g)
	return renderGrouped(g)
}

func Quarterly(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) {
		t := n.StartTime.Time()
		q := (int(t.Month())-1)/3 + 1
		return fmt.Sprintf("%d-Q%d", t.Year(), q), true
	})
	sortByKeyAsc(g)
	return renderGrouped(g)
}

func Weekly(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) {
		year, week := n.StartTime.Time().ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week), true
	})
	sortByKeyAsc(g)
	return renderGrouped(g)
}

var isoWeekdayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var isoWeekdayOrder = map[string]int{
	"Mon": 0, "Tue": 1, "Wed": 2, "Thu": 3, "Fri": 4, "Sat": 5, "Sun": 6,
}

func Weekday(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) {
		wd := int(n.StartTime.Time().Weekday()) // Sunday == 0
		iso := wd
		if iso == 0 {
			iso = 7
		}
		return isoWeekdayNames[iso-1], true
	})
	sortByFixedOrder(g, isoWeekdayOrder)
	return renderGrouped(g)
}

func DayOfMonth(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) {
		return fmt.Sprintf("%02d", n.StartTime.Time().Day()), true
	})
	sortByKeyAsc(g)
	return renderGrouped(g)
}

func timeOfDay(hour int) string {
	switch {
	case hour < 6:
		return "night"
	case hour < 12:
		return "morning"
	case hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

func TimeOfDay(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return timeOfDay(n.StartTime.Time().Hour()), true })
	order := map[string]int{"morning": 0, "afternoon": 1, "evening": 2, "night": 3}
	sortByFixedOrder(g, order)
	return renderGrouped(g)
}
