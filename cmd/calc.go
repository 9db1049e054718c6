package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	calcengine "clockout/calc"
	"clockout/config"
	"clockout/importer"
	"clockout/output"
	"clockout/timesheet"
)

var (
	calcInput        string
	calcFormat       string
	calcDays         []string
	calcOutput       string
	calcOutputFormat string
	calcStrict       bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate weekly hours from entered or imported day inputs",
	Long: `Validate five days of start/end/lunch input and print per-day hours,
the weekly total, the distance to the 40-hour target, and the projected
Friday clock-out time.

Days come from --day flags, from a CSV/Excel file, or both; a --day flag
overrides the file row for the same day. Days without input count as
assumed 8-hour days (Friday instead gets an assumed 8:00 AM start and a
clock-out projection).

A failing field never aborts the calculation: it contributes zero hours
and an error message while every other field is still processed.`,
	Example: `
  # Enter days directly: day=start,end,lunch (blank parts allowed)
  clockout calc --day "Monday=8:00,5pm,60" --day "Tuesday=8,4:30,"

  # Read the week from a file (format inferred from extension)
  clockout calc --input ./week.csv
  clockout calc --input ./week.xlsx --format excel

  # Write the summary to CSV or Excel as well
  clockout calc --input ./week.csv --output ./summary.xlsx

  # Exit non-zero when any field has an error
  clockout calc --input ./week.csv --strict
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		opts, err := cfg.CalcOptions()
		if err != nil {
			return err
		}

		inputs, err := resolveWeekInputs(calcInput, calcFormat, calcDays)
		if err != nil {
			return err
		}

		week := calcengine.New(opts).CalculateWeek(inputs)
		messages := calcengine.Aggregate(week)

		if err := output.WriteText(os.Stdout, week, messages); err != nil {
			return err
		}

		if calcOutput != "" {
			format, err := importer.InferFormat(calcOutput, calcOutputFormat)
			if err != nil {
				return err
			}
			writer, err := output.WriterForFormat(format)
			if err != nil {
				return err
			}
			if err := writer.Write(calcOutput, week); err != nil {
				return err
			}
			fmt.Printf("\nSummary written to %s\n", calcOutput)
		}

		if calcStrict {
			errorMessages, _, _ := calcengine.BySeverity(messages)
			if len(errorMessages) > 0 {
				return fmt.Errorf("calculation finished with %d error(s)", len(errorMessages))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringVarP(&calcInput, "input", "i", "", "Week input file (CSV or Excel)")
	calcCmd.Flags().StringVar(&calcFormat, "format", "", "Input format override: csv or excel (default: by extension)")
	calcCmd.Flags().StringArrayVar(&calcDays, "day", nil, `Day entry "Name=start,end,lunch"; repeatable`)
	calcCmd.Flags().StringVarP(&calcOutput, "output", "o", "", "Write the week summary to this file as well")
	calcCmd.Flags().StringVar(&calcOutputFormat, "output-format", "", "Output format override: csv or excel (default: by extension)")
	calcCmd.Flags().BoolVar(&calcStrict, "strict", false, "Exit non-zero when any field has an error")
}

// resolveWeekInputs merges file rows and --day flags into the five
// ordered day inputs. Flags win over file rows for the same day.
func resolveWeekInputs(inputPath, format string, dayFlags []string) ([5]timesheet.DayInput, error) {
	var week [5]timesheet.DayInput
	for _, day := range timesheet.Days() {
		week[day] = timesheet.DayInput{Day: day}
	}

	if strings.TrimSpace(inputPath) != "" {
		read, err := importer.ReadWeek(inputPath, format)
		if err != nil {
			return week, err
		}
		week = read
	}

	for _, flag := range dayFlags {
		day, input, err := parseDayFlag(flag)
		if err != nil {
			return week, err
		}
		week[day] = input
	}

	return week, nil
}

// parseDayFlag splits a --day value of the form "Monday=8:00,5pm,60".
// Trailing parts may be left blank or omitted.
func parseDayFlag(value string) (timesheet.Day, timesheet.DayInput, error) {
	name, rest, found := strings.Cut(value, "=")
	if !found {
		return 0, timesheet.DayInput{}, fmt.Errorf("invalid --day value %q (expected Name=start,end,lunch)", value)
	}

	day, err := timesheet.ParseDay(name)
	if err != nil {
		return 0, timesheet.DayInput{}, fmt.Errorf("invalid --day value %q: %w", value, err)
	}

	parts := strings.SplitN(rest, ",", 3)
	input := timesheet.DayInput{Day: day}
	if len(parts) > 0 {
		input.Start = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		input.End = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		input.Lunch = strings.TrimSpace(parts[2])
	}

	return day, input, nil
}
