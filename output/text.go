package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"clockout/timesheet"
)

// WriteText writes the human-readable week summary used by the CLI: the
// per-day table, the aggregated messages, and the weekly totals.
func WriteText(w io.Writer, week timesheet.WeekResult, messages []timesheet.Message) error {
	table := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "DAY\tSTART\tEND\tLUNCH\tHOURS\t")
	for _, day := range week.Days {
		assumed := ""
		if day.AssumedFullDay {
			assumed = " (assumed)"
		}
		fmt.Fprintf(table, "%s\t%s\t%s\t%d\t%s%s\t\n",
			day.Day,
			timeCell(day.Start),
			timeCell(day.End),
			day.LunchMinutes,
			timesheet.FormatHours(day.HoursWorked),
			assumed,
		)
	}
	if err := table.Flush(); err != nil {
		return fmt.Errorf("flush summary table: %w", err)
	}

	if len(messages) > 0 {
		fmt.Fprintln(w)
		for _, message := range messages {
			fmt.Fprintf(w, "%s: %s\n", strings.ToUpper(message.Severity.String()), message.Text)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total hours worked: %s\n", timesheet.FormatHours(week.TotalHours))
	fmt.Fprintf(w, "Hours to 40: %s\n", timesheet.FormatHours(week.HoursTo40))
	if week.FridayClockOut != nil {
		fmt.Fprintf(w, "Friday clock out: %s\n", week.FridayClockOut)
	}

	return nil
}
