package calc

import (
	"sort"

	"clockout/timesheet"
)

// Aggregate merges every per-day and week-level message into one ordered
// sequence: errors first, then warnings, then infos; within a severity,
// Monday through Friday followed by week-level messages. Nothing is
// collapsed or dropped; any banner-per-severity folding is left to the
// presentation layer.
func Aggregate(week timesheet.WeekResult) []timesheet.Message {
	type ranked struct {
		message timesheet.Message
		order   int
	}

	const weekOrder = len(week.Days)

	merged := make([]ranked, 0, len(week.Overall)+8)
	for _, day := range week.Days {
		for _, message := range day.Messages {
			merged = append(merged, ranked{message: message, order: int(day.Day)})
		}
	}
	for _, message := range week.Overall {
		merged = append(merged, ranked{message: message, order: weekOrder})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].message.Severity != merged[j].message.Severity {
			return merged[i].message.Severity < merged[j].message.Severity
		}
		return merged[i].order < merged[j].order
	})

	out := make([]timesheet.Message, len(merged))
	for i, item := range merged {
		out[i] = item.message
	}
	return out
}

// BySeverity splits an aggregated message sequence into error, warning,
// and info buckets, preserving order within each.
func BySeverity(messages []timesheet.Message) (errors, warnings, infos []timesheet.Message) {
	for _, message := range messages {
		switch message.Severity {
		case timesheet.SeverityError:
			errors = append(errors, message)
		case timesheet.SeverityWarning:
			warnings = append(warnings, message)
		default:
			infos = append(infos, message)
		}
	}
	return errors, warnings, infos
}
