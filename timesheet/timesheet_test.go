package timesheet

import "testing"

func TestTimeOfDayString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value TimeOfDay
		want  string
	}{
		{TimeOfDay{Hour: 8}, "8:00 AM"},
		{TimeOfDay{Hour: 16}, "4:00 PM"},
		{TimeOfDay{Hour: 0, Minute: 5}, "12:05 AM"},
		{TimeOfDay{Hour: 12}, "12:00 PM"},
		{TimeOfDay{Hour: 23, Minute: 59}, "11:59 PM"},
	}

	for _, tc := range tests {
		if got := tc.value.String(); got != tc.want {
			t.Errorf("String(%+v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFromMinutesWraps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		minutes int
		want    TimeOfDay
	}{
		{0, TimeOfDay{}},
		{510, TimeOfDay{Hour: 8, Minute: 30}},
		{1620, TimeOfDay{Hour: 3}},
		{-60, TimeOfDay{Hour: 23}},
	}

	for _, tc := range tests {
		if got := FromMinutes(tc.minutes); got != tc.want {
			t.Errorf("FromMinutes(%d) = %+v, want %+v", tc.minutes, got, tc.want)
		}
	}
}

func TestParseDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Day
		wantErr bool
	}{
		{input: "Monday", want: Monday},
		{input: "monday", want: Monday},
		{input: "FRIDAY", want: Friday},
		{input: "wed", want: Wednesday},
		{input: " Tue ", want: Tuesday},
		{input: "Sunday", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseDay(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDay(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDay(%q): unexpected error %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDay(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		want  string
	}{
		{8, "8"},
		{8.5, "8.5"},
		{8.25, "8.25"},
		{0, "0"},
		{32, "32"},
		{-1.5, "-1.5"},
	}

	for _, tc := range tests {
		if got := FormatHours(tc.value); got != tc.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
